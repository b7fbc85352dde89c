package models

import (
	"time"

	"github.com/google/uuid"
)

// Note represents a user-owned text note. Notes are immutable once
// created; the only mutations are create and delete.
type Note struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateNoteRequest represents a request to create a note
type CreateNoteRequest struct {
	Content string `json:"content" validate:"required"`
}
