package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/prasetya/catatan/internal/pkg/models"
)

// NotesRepo persists notes in PostgreSQL
type NotesRepo struct {
	db  *sqlx.DB
	cfg *models.Config
}

// NewNotesRepo creates a new notes repository instance
func NewNotesRepo(cfg *models.Config, db *sqlx.DB) *NotesRepo {
	return &NotesRepo{
		db:  db,
		cfg: cfg,
	}
}
