package model

import (
	"context"
	"time"
)

// NoteStore defines persistence operations for notes. Every operation takes
// the owner id as a mandatory parameter: a note belonging to another owner
// behaves exactly like a missing note.
type NoteStore interface {
	List(ctx context.Context, ownerID int64, limit, offset int) ([]Note, error)
	Count(ctx context.Context, ownerID int64) (int64, error)
	GetByID(ctx context.Context, ownerID, noteID int64) (Note, error)
	Create(ctx context.Context, ownerID int64, params NoteCreate) (Note, error)
	Update(ctx context.Context, ownerID, noteID int64, params NoteUpdate) (Note, error)
	Delete(ctx context.Context, ownerID, noteID int64) error
}

// Note represents a stored note entity.
type Note struct {
	ID          int64
	Title       string
	Description string
	Tag         *string
	Subject     *string
	Timestamp   time.Time
	AuthorID    int64
}

// NoteCreate contains parameters to create a note.
type NoteCreate struct {
	Title       string
	Description string
	Tag         *string
	Subject     *string
}

// NoteUpdate describes a partial note update. Nil fields are left unchanged.
// A successful update refreshes the note timestamp.
type NoteUpdate struct {
	Title       *string
	Description *string
	Tag         *string
	Subject     *string
}
