// Package inmemory provides map-backed implementations of the store
// interfaces, used in tests and for running the server without a database.
package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/notekeeper/server/internal/model"
)

// Store holds users and notes in memory behind one lock. It mirrors the
// scoping semantics of the postgres repositories: note lookups filter by
// author id, so a foreign note is indistinguishable from a missing one.
type Store struct {
	mu         sync.RWMutex
	users      map[int64]model.User
	notes      map[int64]model.Note
	nextUserID int64
	nextNoteID int64
	now        func() time.Time
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		users: make(map[int64]model.User),
		notes: make(map[int64]model.Note),
		now:   time.Now,
	}
}

// Users returns the UserStore view of the store.
func (s *Store) Users() *UserRepository {
	return &UserRepository{store: s}
}

// Notes returns the NoteStore view of the store.
func (s *Store) Notes() *NoteRepository {
	return &NoteRepository{store: s}
}

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	store *Store
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if user.Email == email {
			return user, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return user, nil
}

func (r *UserRepository) Create(_ context.Context, name, email, passwordHash string) (model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if user.Email == email {
			return model.User{}, model.ErrEmailTaken
		}
	}

	r.store.nextUserID++
	user := model.User{
		ID:           r.store.nextUserID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
	r.store.users[user.ID] = user

	return user, nil
}

func (r *UserRepository) Update(_ context.Context, id int64, update model.UserUpdate) (model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}

	if update.Email != nil {
		for _, other := range r.store.users {
			if other.ID != id && other.Email == *update.Email {
				return model.User{}, model.ErrEmailTaken
			}
		}
		user.Email = *update.Email
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.PasswordHash != nil {
		user.PasswordHash = *update.PasswordHash
	}

	r.store.users[id] = user

	return user, nil
}

func (r *UserRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[id]; !ok {
		return model.ErrNotFound
	}
	delete(r.store.users, id)

	// Cascade, as the foreign key does in postgres.
	for noteID, note := range r.store.notes {
		if note.AuthorID == id {
			delete(r.store.notes, noteID)
		}
	}

	return nil
}

var _ model.NoteStore = (*NoteRepository)(nil)

type NoteRepository struct {
	store *Store
}

func (r *NoteRepository) List(_ context.Context, ownerID int64, limit, offset int) ([]model.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	owned := r.store.ownedNotes(ownerID)

	if offset >= len(owned) {
		return nil, nil
	}
	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}

	return owned[offset:end], nil
}

func (r *NoteRepository) Count(_ context.Context, ownerID int64) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return int64(len(r.store.ownedNotes(ownerID))), nil
}

func (r *NoteRepository) GetByID(_ context.Context, ownerID, noteID int64) (model.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	note, ok := r.store.notes[noteID]
	if !ok || note.AuthorID != ownerID {
		return model.Note{}, model.ErrNotFound
	}
	return note, nil
}

func (r *NoteRepository) Create(_ context.Context, ownerID int64, params model.NoteCreate) (model.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextNoteID++
	note := model.Note{
		ID:          r.store.nextNoteID,
		Title:       params.Title,
		Description: params.Description,
		Tag:         params.Tag,
		Subject:     params.Subject,
		Timestamp:   r.store.now(),
		AuthorID:    ownerID,
	}
	r.store.notes[note.ID] = note

	return note, nil
}

func (r *NoteRepository) Update(_ context.Context, ownerID, noteID int64, params model.NoteUpdate) (model.Note, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	note, ok := r.store.notes[noteID]
	if !ok || note.AuthorID != ownerID {
		return model.Note{}, model.ErrNotFound
	}

	if params.Title != nil {
		note.Title = *params.Title
	}
	if params.Description != nil {
		note.Description = *params.Description
	}
	if params.Tag != nil {
		note.Tag = params.Tag
	}
	if params.Subject != nil {
		note.Subject = params.Subject
	}
	note.Timestamp = r.store.now()

	r.store.notes[noteID] = note

	return note, nil
}

func (r *NoteRepository) Delete(_ context.Context, ownerID, noteID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	note, ok := r.store.notes[noteID]
	if !ok || note.AuthorID != ownerID {
		return model.ErrNotFound
	}
	delete(r.store.notes, noteID)

	return nil
}

// ownedNotes returns the owner's notes newest first, note id breaking ties.
// Callers must hold the lock.
func (s *Store) ownedNotes(ownerID int64) []model.Note {
	var owned []model.Note
	for _, note := range s.notes {
		if note.AuthorID == ownerID {
			owned = append(owned, note)
		}
	}

	sort.Slice(owned, func(i, j int) bool {
		if !owned[i].Timestamp.Equal(owned[j].Timestamp) {
			return owned[i].Timestamp.After(owned[j].Timestamp)
		}
		return owned[i].ID > owned[j].ID
	})

	return owned
}
