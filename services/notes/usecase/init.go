package usecase

import (
	"github.com/prasetya/catatan/internal/pkg/models"
	"github.com/prasetya/catatan/services/notes"
)

// NotesUC implements the notes usecase operations
type NotesUC struct {
	notesRepo notes.NotesRepo
	cfg       *models.Config
}

// NewNotesUC creates a new notes usecase instance
func NewNotesUC(notesRepo notes.NotesRepo, cfg *models.Config) *NotesUC {
	return &NotesUC{
		notesRepo: notesRepo,
		cfg:       cfg,
	}
}
