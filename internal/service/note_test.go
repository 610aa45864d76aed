package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/notekeeper/server/internal/mocks"
	"github.com/notekeeper/server/internal/model"
	"github.com/notekeeper/server/internal/testutil"
)

func TestNotes_List_Success(t *testing.T) {
	ctx := context.Background()
	store := &servermocks.NoteStore{}

	notes := []model.Note{
		{ID: 2, Title: "newer", AuthorID: 1, Timestamp: time.Now()},
		{ID: 1, Title: "older", AuthorID: 1, Timestamp: time.Now().Add(-time.Hour)},
	}
	store.On("List", mock.Anything, int64(1), 10, 0).Return(notes, nil)
	store.On("Count", mock.Anything, int64(1)).Return(int64(2), nil)

	s := NewNotes(store, testutil.MakeNoopLogger())

	got, total, err := s.List(ctx, 1, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, notes, got)
}

func TestNotes_List_OffsetFromPageNumber(t *testing.T) {
	ctx := context.Background()
	store := &servermocks.NoteStore{}

	store.On("List", mock.Anything, int64(1), 25, 50).Return([]model.Note{}, nil)
	store.On("Count", mock.Anything, int64(1)).Return(int64(60), nil)

	s := NewNotes(store, testutil.MakeNoopLogger())

	_, _, err := s.List(ctx, 1, 3, 25)
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestNotes_List_InvalidPagination(t *testing.T) {
	s := NewNotes(&servermocks.NoteStore{}, testutil.MakeNoopLogger())

	_, _, err := s.List(context.Background(), 1, 0, 10)
	require.ErrorIs(t, err, model.ErrInvalidArgument)

	_, _, err = s.List(context.Background(), 1, 1, 0)
	require.ErrorIs(t, err, model.ErrInvalidArgument)

	_, _, err = s.List(context.Background(), 1, -3, -1)
	require.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestNotes_List_StoreError(t *testing.T) {
	store := &servermocks.NoteStore{}
	store.On("List", mock.Anything, int64(1), 10, 0).Return(nil, errors.New("connection refused"))

	s := NewNotes(store, testutil.MakeNoopLogger())

	_, _, err := s.List(context.Background(), 1, 1, 10)
	require.Error(t, err)
}

func TestNotes_Get_NotFound(t *testing.T) {
	store := &servermocks.NoteStore{}
	store.On("GetByID", mock.Anything, int64(1), int64(5)).Return(model.Note{}, model.ErrNotFound)

	s := NewNotes(store, testutil.MakeNoopLogger())

	_, err := s.Get(context.Background(), 1, 5)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestNotes_Create_Success(t *testing.T) {
	store := &servermocks.NoteStore{}
	params := model.NoteCreate{Title: "title", Description: "body"}
	store.On("Create", mock.Anything, int64(1), params).
		Return(model.Note{ID: 3, Title: "title", Description: "body", AuthorID: 1}, nil)

	s := NewNotes(store, testutil.MakeNoopLogger())

	note, err := s.Create(context.Background(), 1, params)
	require.NoError(t, err)
	assert.Equal(t, int64(3), note.ID)
	assert.Equal(t, int64(1), note.AuthorID)
}

func TestNotes_Update_NotFound(t *testing.T) {
	store := &servermocks.NoteStore{}
	title := "renamed"
	params := model.NoteUpdate{Title: &title}
	store.On("Update", mock.Anything, int64(1), int64(5), params).Return(model.Note{}, model.ErrNotFound)

	s := NewNotes(store, testutil.MakeNoopLogger())

	_, err := s.Update(context.Background(), 1, 5, params)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestNotes_Delete_Success(t *testing.T) {
	store := &servermocks.NoteStore{}
	store.On("Delete", mock.Anything, int64(1), int64(5)).Return(nil)

	s := NewNotes(store, testutil.MakeNoopLogger())

	require.NoError(t, s.Delete(context.Background(), 1, 5))
	store.AssertExpectations(t)
}

func TestNotes_Delete_NotFound(t *testing.T) {
	store := &servermocks.NoteStore{}
	store.On("Delete", mock.Anything, int64(1), int64(5)).Return(model.ErrNotFound)

	s := NewNotes(store, testutil.MakeNoopLogger())

	require.ErrorIs(t, s.Delete(context.Background(), 1, 5), model.ErrNotFound)
}
