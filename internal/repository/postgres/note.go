package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/notekeeper/server/internal/model"
)

var _ model.NoteStore = (*NoteRepository)(nil)

// NoteRepository persists notes through the stored procedures installed by
// the migrations. Every procedure takes the author id, so ownership scoping
// is enforced inside the database, not trusted to the caller.
type NoteRepository struct {
	db *Connection
}

func NewNoteRepository(db *Connection) *NoteRepository {
	return &NoteRepository{
		db: db,
	}
}

const noteColumns = `note_id, title, description, tag, note_subject, note_timestamp, author_id`

func (r *NoteRepository) List(ctx context.Context, ownerID int64, limit, offset int) ([]model.Note, error) {
	query := fmt.Sprintf(`SELECT %s FROM find_all_notes($1, $2, $3)`, noteColumns)

	rows, err := r.db.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		var note model.Note
		err := rows.Scan(
			&note.ID, &note.Title, &note.Description, &note.Tag,
			&note.Subject, &note.Timestamp, &note.AuthorID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read notes: %w", err)
	}

	return notes, nil
}

func (r *NoteRepository) Count(ctx context.Context, ownerID int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT count_all_notes($1)`, ownerID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count notes: %w", err)
	}
	return total, nil
}

func (r *NoteRepository) GetByID(ctx context.Context, ownerID, noteID int64) (model.Note, error) {
	var note model.Note
	query := fmt.Sprintf(`SELECT %s FROM find_one_note($1, $2)`, noteColumns)

	err := r.db.QueryRow(ctx, query, ownerID, noteID).Scan(
		&note.ID, &note.Title, &note.Description, &note.Tag,
		&note.Subject, &note.Timestamp, &note.AuthorID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Note{}, model.ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to get note: %w", err)
	}

	return note, nil
}

func (r *NoteRepository) Create(ctx context.Context, ownerID int64, params model.NoteCreate) (model.Note, error) {
	var note model.Note
	query := fmt.Sprintf(`SELECT %s FROM create_note($1, $2, $3, $4, $5)`, noteColumns)

	err := r.db.QueryRow(ctx, query,
		params.Title, params.Description, params.Tag, params.Subject, ownerID,
	).Scan(
		&note.ID, &note.Title, &note.Description, &note.Tag,
		&note.Subject, &note.Timestamp, &note.AuthorID,
	)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	return note, nil
}

func (r *NoteRepository) Update(ctx context.Context, ownerID, noteID int64, params model.NoteUpdate) (model.Note, error) {
	var note model.Note
	query := fmt.Sprintf(`SELECT %s FROM update_note($1, $2, $3, $4, $5, $6)`, noteColumns)

	err := r.db.QueryRow(ctx, query,
		ownerID, noteID, params.Title, params.Description, params.Tag, params.Subject,
	).Scan(
		&note.ID, &note.Title, &note.Description, &note.Tag,
		&note.Subject, &note.Timestamp, &note.AuthorID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Note{}, model.ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to update note: %w", err)
	}

	return note, nil
}

func (r *NoteRepository) Delete(ctx context.Context, ownerID, noteID int64) error {
	var deleted int
	err := r.db.QueryRow(ctx, `SELECT delete_note($1, $2)`, ownerID, noteID).Scan(&deleted)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if deleted == 0 {
		return model.ErrNotFound
	}
	return nil
}
