package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prasetya/catatan/internal/pkg/models"
)

// GetNotesByUser retrieves all notes owned by the user, newest first
func (r *NotesRepo) GetNotesByUser(ctx context.Context, userID uuid.UUID) ([]models.Note, error) {
	query := `
		SELECT id, user_id, content, created_at
		FROM notes
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	notes := []models.Note{}
	if err := r.db.SelectContext(ctx, &notes, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return notes, nil
}

// CreateNote inserts a new note for its owner
func (r *NotesRepo) CreateNote(ctx context.Context, note *models.Note) error {
	note.ID = uuid.New()
	note.CreatedAt = time.Now()

	query := `
		INSERT INTO notes (id, user_id, content, created_at)
		VALUES (:id, :user_id, :content, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, note); err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}

	return nil
}

// DeleteNote removes a note scoped to its owner. Deleting a note that
// does not exist, or that belongs to another user, is not an error.
func (r *NotesRepo) DeleteNote(ctx context.Context, noteID, userID uuid.UUID) error {
	query := `DELETE FROM notes WHERE id = $1 AND user_id = $2`

	if _, err := r.db.ExecContext(ctx, query, noteID, userID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}
