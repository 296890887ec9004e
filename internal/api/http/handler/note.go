package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dkarpov/notes-server/internal/logger"
	"github.com/dkarpov/notes-server/internal/model"
	"github.com/dkarpov/notes-server/internal/service"
)

// NoteService defines owner-scoped note operations.
type NoteService interface {
	Create(ctx context.Context, params service.CreateNoteParams) (model.Note, error)
	List(ctx context.Context, ownerID uuid.UUID, query service.ListQuery) (model.NotePage, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (model.Note, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, params service.UpdateNoteParams) (model.Note, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// Note handles HTTP endpoints for notes.
type Note struct {
	noteService    NoteService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewNote creates a new Note handler.
func NewNote(noteService NoteService, contextManager model.ContextManager, logger *logger.Logger) *Note {
	return &Note{
		noteService:    noteService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type noteRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

type noteResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type paginationResponse struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalNotes  int  `json:"totalNotes"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

type noteEnvelope struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Note    *noteResponse `json:"note,omitempty"`
}

type noteListEnvelope struct {
	Success    bool               `json:"success"`
	Notes      []noteResponse     `json:"notes"`
	Pagination paginationResponse `json:"pagination"`
}

// Create stores a new note for the authenticated user.
func (h *Note) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.contextManager.GetClaimsFromContext(r.Context())
	if !ok {
		handleError(w, model.ErrMissingToken)
		return
	}

	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, model.NewValidationError("invalid request body"))
		return
	}

	note, err := h.noteService.Create(r.Context(), service.CreateNoteParams{
		OwnerID: claims.UserID,
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		h.logger.Debug("Note handler: create failed", "error", err.Error())
		handleError(w, err)
		return
	}

	resp := toNoteResponse(note)
	writeJSON(w, http.StatusCreated, noteEnvelope{
		Success: true,
		Message: "Note created successfully.",
		Note:    &resp,
	})
}

// List returns a page of the authenticated user's notes with optional tag
// filtering: ?tag= matches a single exact tag, ?tags=a,b requires all of
// them; tag wins when both are present.
func (h *Note) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.contextManager.GetClaimsFromContext(r.Context())
	if !ok {
		handleError(w, model.ErrMissingToken)
		return
	}

	q := r.URL.Query()
	query := service.ListQuery{
		Tag:   q.Get("tag"),
		Page:  parseIntParam(q.Get("page")),
		Limit: parseIntParam(q.Get("limit")),
	}
	if tags := q.Get("tags"); tags != "" {
		query.Tags = strings.Split(tags, ",")
	}

	page, err := h.noteService.List(r.Context(), claims.UserID, query)
	if err != nil {
		h.logger.Debug("Note handler: list failed", "error", err.Error())
		handleError(w, err)
		return
	}

	notes := make([]noteResponse, 0, len(page.Notes))
	for _, note := range page.Notes {
		notes = append(notes, toNoteResponse(note))
	}

	writeJSON(w, http.StatusOK, noteListEnvelope{
		Success: true,
		Notes:   notes,
		Pagination: paginationResponse{
			CurrentPage: page.CurrentPage,
			TotalPages:  page.TotalPages,
			TotalNotes:  page.TotalNotes,
			HasNext:     page.HasNext,
			HasPrev:     page.HasPrev,
		},
	})
}

// Get returns one of the authenticated user's notes by id.
func (h *Note) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.contextManager.GetClaimsFromContext(r.Context())
	if !ok {
		handleError(w, model.ErrMissingToken)
		return
	}

	id, err := parseNoteID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	note, err := h.noteService.Get(r.Context(), claims.UserID, id)
	if err != nil {
		handleError(w, err)
		return
	}

	resp := toNoteResponse(note)
	writeJSON(w, http.StatusOK, noteEnvelope{Success: true, Note: &resp})
}

// Update applies a partial update to one of the authenticated user's notes.
func (h *Note) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.contextManager.GetClaimsFromContext(r.Context())
	if !ok {
		handleError(w, model.ErrMissingToken)
		return
	}

	id, err := parseNoteID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, model.NewValidationError("invalid request body"))
		return
	}

	note, err := h.noteService.Update(r.Context(), claims.UserID, id, service.UpdateNoteParams{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		h.logger.Debug("Note handler: update failed", "error", err.Error())
		handleError(w, err)
		return
	}

	resp := toNoteResponse(note)
	writeJSON(w, http.StatusOK, noteEnvelope{
		Success: true,
		Message: "Note updated successfully.",
		Note:    &resp,
	})
}

// Delete removes one of the authenticated user's notes.
func (h *Note) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := h.contextManager.GetClaimsFromContext(r.Context())
	if !ok {
		handleError(w, model.ErrMissingToken)
		return
	}

	id, err := parseNoteID(r)
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.noteService.Delete(r.Context(), claims.UserID, id); err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, noteEnvelope{Success: true, Message: "Note deleted successfully."})
}

// parseNoteID reads the id path segment. A malformed id behaves like a
// missing note so callers cannot probe id validity.
func parseNoteID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, model.ErrNotFound
	}
	return id, nil
}

func parseIntParam(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func toNoteResponse(note model.Note) noteResponse {
	return noteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		Tags:      note.Tags,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
