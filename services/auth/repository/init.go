package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/prasetya/catatan/internal/pkg/database"
	"github.com/prasetya/catatan/internal/pkg/models"
)

// UserRepo persists user records in PostgreSQL and the volatile OTP pair
// in Redis
type UserRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
	cfg         *models.Config
}

// NewUserRepo creates a new user repository instance
func NewUserRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *UserRepo {
	return &UserRepo{
		db:          db,
		redisClient: redisClient,
		cfg:         cfg,
	}
}
