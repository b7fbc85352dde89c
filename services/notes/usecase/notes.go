package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/prasetya/catatan/internal/pkg/apperrors"
	"github.com/prasetya/catatan/internal/pkg/logger"
	"github.com/prasetya/catatan/internal/pkg/models"
)

// ListNotes returns the user's notes, newest first. Absence of notes is
// an empty list, never an error.
func (u *NotesUC) ListNotes(ctx context.Context, userID uuid.UUID) ([]models.Note, error) {
	userNotes, err := u.notesRepo.GetNotesByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewStore(err)
	}
	return userNotes, nil
}

// CreateNote stores a note for the user and returns it with its
// assigned identity.
func (u *NotesUC) CreateNote(ctx context.Context, userID uuid.UUID, req *models.CreateNoteRequest) (*models.Note, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.NewValidation("Note content cannot be empty.")
	}

	note := &models.Note{
		UserID:  userID,
		Content: req.Content,
	}
	if err := u.notesRepo.CreateNote(ctx, note); err != nil {
		return nil, apperrors.NewStore(err)
	}

	logger.Info("Note created",
		logger.String("note_id", note.ID.String()),
		logger.String("user_id", userID.String()))

	return note, nil
}

// DeleteNote removes the user's note. The operation is idempotent: an
// unknown id, or an id owned by someone else, still succeeds.
func (u *NotesUC) DeleteNote(ctx context.Context, userID uuid.UUID, noteID string) error {
	id, err := uuid.Parse(noteID)
	if err != nil {
		return apperrors.NewValidation("Invalid note id.")
	}

	if err := u.notesRepo.DeleteNote(ctx, id, userID); err != nil {
		return apperrors.NewStore(err)
	}

	logger.Info("Note deleted",
		logger.String("note_id", id.String()),
		logger.String("user_id", userID.String()))

	return nil
}
