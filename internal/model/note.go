package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// NoteStore defines persistence operations for notes. Every read, update and
// delete is scoped by (id, ownerID): a note belonging to another owner is
// indistinguishable from a missing one and yields ErrNotFound.
type NoteStore interface {
	Create(ctx context.Context, note Note) (Note, error)
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (Note, error)
	List(ctx context.Context, params ListNotesParams) (notes []Note, total int, err error)
	Update(ctx context.Context, note Note) (Note, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

// Note represents a stored note entity.
type Note struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Title     string
	Content   string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListNotesParams contains filter and pagination parameters for note listing.
// Tag filters on a single exact tag; Tags requires all entries to be present.
// Tag wins when both are set.
type ListNotesParams struct {
	OwnerID uuid.UUID
	Tag     string
	Tags    []string
	Offset  int
	Limit   int
}

// NotePage is one page of a note listing, newest-created-first.
type NotePage struct {
	Notes       []Note
	CurrentPage int
	TotalPages  int
	TotalNotes  int
	HasNext     bool
	HasPrev     bool
}
