package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dkarpov/notes-server/internal/model"
)

var _ model.NoteStore = (*NoteRepository)(nil)

type NoteRepository struct {
	db *Connection
}

func NewNoteRepository(db *Connection) *NoteRepository {
	return &NoteRepository{
		db: db,
	}
}

const noteColumns = `id, owner_id, title, content, tags, created_at, updated_at`

func (r *NoteRepository) Create(ctx context.Context, note model.Note) (model.Note, error) {
	query := `INSERT INTO notes (id, owner_id, title, content, tags, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + noteColumns

	savedNote, err := r.scanNote(r.db.QueryRow(ctx, query,
		note.ID, note.OwnerID, note.Title, note.Content, note.Tags,
		note.CreatedAt, note.UpdatedAt,
	))
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	return savedNote, nil
}

func (r *NoteRepository) GetByID(ctx context.Context, id, ownerID uuid.UUID) (model.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1 AND owner_id = $2`

	note, err := r.scanNote(r.db.QueryRow(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Note{}, model.ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to get note by id: %w", err)
	}

	return note, nil
}

func (r *NoteRepository) List(ctx context.Context, params model.ListNotesParams) ([]model.Note, int, error) {
	where := `owner_id = $1`
	args := []any{params.OwnerID}

	switch {
	case params.Tag != "":
		where += ` AND $2 = ANY (tags)`
		args = append(args, params.Tag)
	case len(params.Tags) > 0:
		where += ` AND tags @> $2`
		args = append(args, params.Tags)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM notes WHERE ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notes: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM notes WHERE %s ORDER BY created_at DESC OFFSET $%d LIMIT $%d`,
		noteColumns, where, len(args)+1, len(args)+2)
	args = append(args, params.Offset, params.Limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]model.Note, 0)
	for rows.Next() {
		note, err := r.scanNote(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read notes: %w", err)
	}

	return notes, total, nil
}

func (r *NoteRepository) Update(ctx context.Context, note model.Note) (model.Note, error) {
	query := `UPDATE notes SET title = $1, content = $2, tags = $3, updated_at = $4
			  WHERE id = $5 AND owner_id = $6
			  RETURNING ` + noteColumns

	savedNote, err := r.scanNote(r.db.QueryRow(ctx, query,
		note.Title, note.Content, note.Tags, note.UpdatedAt,
		note.ID, note.OwnerID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Note{}, model.ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to update note: %w", err)
	}

	return savedNote, nil
}

func (r *NoteRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	query := `DELETE FROM notes WHERE id = $1 AND owner_id = $2`

	tag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *NoteRepository) scanNote(row pgx.Row) (model.Note, error) {
	var note model.Note
	err := row.Scan(
		&note.ID, &note.OwnerID, &note.Title, &note.Content, &note.Tags,
		&note.CreatedAt, &note.UpdatedAt,
	)
	return note, err
}
