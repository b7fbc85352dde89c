package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/prasetya/catatan/internal/pkg/middleware"
	"github.com/prasetya/catatan/internal/pkg/models"
	"github.com/prasetya/catatan/services/notes/handler/http"
)

// Handler coordinates the HTTP handlers for the notes service
type Handler struct {
	notesHandler *http.NotesHandler
	jwtConfig    models.JWTConfig
}

// NewHandler creates and initializes all notes handlers
func NewHandler(notesHandler *http.NotesHandler, jwtConfig models.JWTConfig) *Handler {
	return &Handler{
		notesHandler: notesHandler,
		jwtConfig:    jwtConfig,
	}
}

// RegisterRoutes registers the notes routes behind JWT authentication
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	notesGroup := e.Group("/api/notes")
	notesGroup.Use(middleware.JWTAuthMiddleware(h.jwtConfig))

	notesGroup.GET("", h.notesHandler.ListNotes)
	notesGroup.POST("", h.notesHandler.CreateNote)
	notesGroup.DELETE("/:id", h.notesHandler.DeleteNote)
}
