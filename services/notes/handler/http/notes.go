package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prasetya/catatan/internal/pkg/logger"
	"github.com/prasetya/catatan/internal/pkg/middleware"
	"github.com/prasetya/catatan/internal/pkg/models"
	"github.com/prasetya/catatan/internal/utils"
	"github.com/prasetya/catatan/services/notes"
)

// NotesHandler handles HTTP requests for notes operations
type NotesHandler struct {
	notesUC notes.NotesUC
}

// NewNotesHandler creates a new notes handler
func NewNotesHandler(notesUC notes.NotesUC) *NotesHandler {
	return &NotesHandler{
		notesUC: notesUC,
	}
}

// ListNotes returns all notes owned by the authenticated user
func (h *NotesHandler) ListNotes(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	userNotes, err := h.notesUC.ListNotes(c.Request().Context(), userID)
	if err != nil {
		logger.Warn("List notes failed",
			logger.String("user_id", userID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, userNotes)
}

// CreateNote stores a new note for the authenticated user
func (h *NotesHandler) CreateNote(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var request models.CreateNoteRequest
	if err := c.Bind(&request); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	note, err := h.notesUC.CreateNote(c.Request().Context(), userID, &request)
	if err != nil {
		logger.Warn("Create note failed",
			logger.String("user_id", userID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, note)
}

// DeleteNote removes one of the authenticated user's notes
func (h *NotesHandler) DeleteNote(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	noteID := c.Param("id")
	if err := h.notesUC.DeleteNote(c.Request().Context(), userID, noteID); err != nil {
		logger.Warn("Delete note failed",
			logger.String("user_id", userID.String()),
			logger.String("note_id", noteID),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessMessage(c, http.StatusOK, "Note deleted successfully")
}
