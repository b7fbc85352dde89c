package usecase

import (
	"github.com/prasetya/catatan/internal/pkg/mailer"
	"github.com/prasetya/catatan/internal/pkg/models"
	"github.com/prasetya/catatan/services/auth"
)

// AuthUC orchestrates signup, login OTP issuance and OTP verification
type AuthUC struct {
	userRepo auth.UserRepo
	mailer   mailer.Mailer
	cfg      *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(userRepo auth.UserRepo, m mailer.Mailer, cfg *models.Config) *AuthUC {
	return &AuthUC{
		userRepo: userRepo,
		mailer:   m,
		cfg:      cfg,
	}
}
