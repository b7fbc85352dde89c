package notes

import (
	"context"

	"github.com/google/uuid"
	"github.com/prasetya/catatan/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/prasetya/catatan/services/notes NotesUC
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/prasetya/catatan/services/notes NotesRepo

// NotesUC defines the notes usecase operations. Every operation is
// scoped to the authenticated owner.
type NotesUC interface {
	ListNotes(ctx context.Context, userID uuid.UUID) ([]models.Note, error)
	CreateNote(ctx context.Context, userID uuid.UUID, req *models.CreateNoteRequest) (*models.Note, error)
	DeleteNote(ctx context.Context, userID uuid.UUID, noteID string) error
}

// NotesRepo defines the notes data access operations
type NotesRepo interface {
	GetNotesByUser(ctx context.Context, userID uuid.UUID) ([]models.Note, error)
	CreateNote(ctx context.Context, note *models.Note) error
	DeleteNote(ctx context.Context, noteID, userID uuid.UUID) error
}
