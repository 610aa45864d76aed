// Package mocks provides testify mocks for the store and token interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/notekeeper/server/internal/model"
)

type UserStore struct {
	mock.Mock
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Create(ctx context.Context, name, email, passwordHash string) (model.User, error) {
	args := m.Called(ctx, name, email, passwordHash)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Update(ctx context.Context, id int64, update model.UserUpdate) (model.User, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type NoteStore struct {
	mock.Mock
}

func (m *NoteStore) List(ctx context.Context, ownerID int64, limit, offset int) ([]model.Note, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	if notes := args.Get(0); notes != nil {
		return notes.([]model.Note), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NoteStore) Count(ctx context.Context, ownerID int64) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NoteStore) GetByID(ctx context.Context, ownerID, noteID int64) (model.Note, error) {
	args := m.Called(ctx, ownerID, noteID)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *NoteStore) Create(ctx context.Context, ownerID int64, params model.NoteCreate) (model.Note, error) {
	args := m.Called(ctx, ownerID, params)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *NoteStore) Update(ctx context.Context, ownerID, noteID int64, params model.NoteUpdate) (model.Note, error) {
	args := m.Called(ctx, ownerID, noteID, params)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *NoteStore) Delete(ctx context.Context, ownerID, noteID int64) error {
	args := m.Called(ctx, ownerID, noteID)
	return args.Error(0)
}

type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) Issue(subjectID int64) (string, error) {
	args := m.Called(subjectID)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) Validate(token string) (int64, error) {
	args := m.Called(token)
	return args.Get(0).(int64), args.Error(1)
}

type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(plaintext string) (string, error) {
	args := m.Called(plaintext)
	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Verify(plaintext, hash string) bool {
	args := m.Called(plaintext, hash)
	return args.Bool(0)
}
