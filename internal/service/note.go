package service

import (
	"context"
	"fmt"

	"github.com/notekeeper/server/internal/logger"
	"github.com/notekeeper/server/internal/model"
)

// Notes implements note operations. The owner id is mandatory on every call
// and is passed through to the store as the ownership filter.
type Notes struct {
	store  model.NoteStore
	logger *logger.Logger
}

// NewNotes creates a Notes service.
func NewNotes(store model.NoteStore, logger *logger.Logger) *Notes {
	return &Notes{store: store, logger: logger}
}

// List returns one page of the owner's notes, newest first, together with
// the owner's total note count. Page numbers and sizes start at 1.
func (s *Notes) List(ctx context.Context, ownerID int64, pageNo, pageSize int) ([]model.Note, int64, error) {
	if pageNo < 1 {
		return nil, 0, fmt.Errorf("page number must be >= 1: %w", model.ErrInvalidArgument)
	}
	if pageSize < 1 {
		return nil, 0, fmt.Errorf("page size must be >= 1: %w", model.ErrInvalidArgument)
	}

	offset := (pageNo - 1) * pageSize

	notes, err := s.store.List(ctx, ownerID, pageSize, offset)
	if err != nil {
		s.logger.Error("Note service: failed to list notes",
			"owner_id", ownerID,
			"error", err.Error())
		return nil, 0, fmt.Errorf("failed to list notes: %w", err)
	}

	total, err := s.store.Count(ctx, ownerID)
	if err != nil {
		s.logger.Error("Note service: failed to count notes",
			"owner_id", ownerID,
			"error", err.Error())
		return nil, 0, fmt.Errorf("failed to count notes: %w", err)
	}

	return notes, total, nil
}

// Get returns a single note owned by ownerID. A note owned by someone else
// is reported as not found.
func (s *Notes) Get(ctx context.Context, ownerID, noteID int64) (model.Note, error) {
	note, err := s.store.GetByID(ctx, ownerID, noteID)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to get note: %w", err)
	}
	return note, nil
}

// Create stores a new note owned by ownerID.
func (s *Notes) Create(ctx context.Context, ownerID int64, params model.NoteCreate) (model.Note, error) {
	note, err := s.store.Create(ctx, ownerID, params)
	if err != nil {
		s.logger.Error("Note service: failed to create note",
			"owner_id", ownerID,
			"error", err.Error())
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	s.logger.Info("Note service: note created",
		"owner_id", ownerID,
		"note_id", note.ID)

	return note, nil
}

// Update applies a partial update to a note owned by ownerID and refreshes
// its timestamp.
func (s *Notes) Update(ctx context.Context, ownerID, noteID int64, params model.NoteUpdate) (model.Note, error) {
	note, err := s.store.Update(ctx, ownerID, noteID, params)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to update note: %w", err)
	}

	s.logger.Info("Note service: note updated",
		"owner_id", ownerID,
		"note_id", noteID)

	return note, nil
}

// Delete removes a note owned by ownerID. Deleting a missing or foreign
// note fails with ErrNotFound.
func (s *Notes) Delete(ctx context.Context, ownerID, noteID int64) error {
	if err := s.store.Delete(ctx, ownerID, noteID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	s.logger.Info("Note service: note deleted",
		"owner_id", ownerID,
		"note_id", noteID)

	return nil
}
