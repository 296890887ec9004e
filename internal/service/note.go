package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dkarpov/notes-server/internal/logger"
	"github.com/dkarpov/notes-server/internal/model"
)

const defaultPageLimit = 10

// Note provides owner-scoped note operations.
type Note struct {
	noteStore model.NoteStore
	logger    *logger.Logger
}

// NewNote creates a new Note service.
func NewNote(noteStore model.NoteStore, logger *logger.Logger) *Note {
	return &Note{
		noteStore: noteStore,
		logger:    logger,
	}
}

// CreateNoteParams contains parameters to create a note.
type CreateNoteParams struct {
	OwnerID uuid.UUID
	Title   string
	Content string
	Tags    []string
}

// UpdateNoteParams contains a partial note update. Empty Title or Content
// leave the stored values unchanged; a non-nil Tags slice replaces the tag
// list wholesale.
type UpdateNoteParams struct {
	Title   string
	Content string
	Tags    []string
}

// ListQuery contains filter and pagination inputs for a note listing.
type ListQuery struct {
	Tag   string
	Tags  []string
	Page  int
	Limit int
}

// Create validates, trims and stores a new note for the owner.
func (s *Note) Create(ctx context.Context, params CreateNoteParams) (model.Note, error) {
	title := strings.TrimSpace(params.Title)
	content := strings.TrimSpace(params.Content)
	if title == "" || content == "" {
		return model.Note{}, model.NewValidationError("title and content are required")
	}

	now := time.Now()
	note := model.Note{
		ID:        uuid.New(),
		OwnerID:   params.OwnerID,
		Title:     title,
		Content:   content,
		Tags:      cleanTags(params.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, err := s.noteStore.Create(ctx, note)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	s.logger.Debug("Note service: note created", "note_id", saved.ID, "owner_id", saved.OwnerID)

	return saved, nil
}

// List returns one page of the owner's notes, newest-created-first. The
// single Tag filter takes precedence over the Tags set; Tags requires every
// entry to be present on a note.
func (s *Note) List(ctx context.Context, ownerID uuid.UUID, query ListQuery) (model.NotePage, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	offset := (page - 1) * limit

	notes, total, err := s.noteStore.List(ctx, model.ListNotesParams{
		OwnerID: ownerID,
		Tag:     strings.TrimSpace(query.Tag),
		Tags:    cleanTags(query.Tags),
		Offset:  offset,
		Limit:   limit,
	})
	if err != nil {
		return model.NotePage{}, fmt.Errorf("failed to list notes: %w", err)
	}

	return model.NotePage{
		Notes:       notes,
		CurrentPage: page,
		TotalPages:  (total + limit - 1) / limit,
		TotalNotes:  total,
		HasNext:     offset+len(notes) < total,
		HasPrev:     page > 1,
	}, nil
}

// Get returns the owner's note or ErrNotFound, without revealing whether the
// id exists under another owner.
func (s *Note) Get(ctx context.Context, ownerID, id uuid.UUID) (model.Note, error) {
	note, err := s.noteStore.GetByID(ctx, id, ownerID)
	if err != nil {
		return model.Note{}, err
	}
	return note, nil
}

// Update applies a partial update to the owner's note.
func (s *Note) Update(ctx context.Context, ownerID, id uuid.UUID, params UpdateNoteParams) (model.Note, error) {
	note, err := s.noteStore.GetByID(ctx, id, ownerID)
	if err != nil {
		return model.Note{}, err
	}

	if title := strings.TrimSpace(params.Title); title != "" {
		note.Title = title
	}
	if content := strings.TrimSpace(params.Content); content != "" {
		note.Content = content
	}
	if params.Tags != nil {
		note.Tags = cleanTags(params.Tags)
	}
	note.UpdatedAt = time.Now()

	saved, err := s.noteStore.Update(ctx, note)
	if err != nil {
		return model.Note{}, err
	}

	return saved, nil
}

// Delete removes the owner's note. Deletion is immediate and irreversible.
func (s *Note) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.noteStore.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	s.logger.Debug("Note service: note deleted", "note_id", id, "owner_id", ownerID)

	return nil
}

// cleanTags trims entries and drops empty ones, preserving order and
// duplicates. The result is never nil.
func cleanTags(tags []string) []string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if t := strings.TrimSpace(tag); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	return cleaned
}
