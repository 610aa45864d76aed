package inmemory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notekeeper/server/internal/model"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()

	created, err := users.Create(ctx, "Alice", "a@b.c", "hash")
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	byEmail, err := users.GetByEmail(ctx, "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, created, byEmail)

	byID, err := users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, byID)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()

	_, err := users.Create(ctx, "Alice", "a@b.c", "hash")
	require.NoError(t, err)

	_, err = users.Create(ctx, "Impostor", "a@b.c", "other-hash")
	require.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestUserRepository_GetMissing(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()

	_, err := users.GetByEmail(ctx, "nobody@b.c")
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = users.GetByID(ctx, 404)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_Update(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()

	created, err := users.Create(ctx, "Alice", "a@b.c", "hash")
	require.NoError(t, err)

	name := "Alice Renamed"
	updated, err := users.Update(ctx, created.ID, model.UserUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, "a@b.c", updated.Email)
	assert.Equal(t, "hash", updated.PasswordHash)
}

func TestUserRepository_UpdateEmailTakenByOther(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()

	_, err := users.Create(ctx, "Alice", "a@b.c", "hash")
	require.NoError(t, err)
	bob, err := users.Create(ctx, "Bob", "b@b.c", "hash")
	require.NoError(t, err)

	taken := "a@b.c"
	_, err = users.Update(ctx, bob.ID, model.UserUpdate{Email: &taken})
	require.ErrorIs(t, err, model.ErrEmailTaken)

	// keeping your own email is not a conflict
	own := "b@b.c"
	_, err = users.Update(ctx, bob.ID, model.UserUpdate{Email: &own})
	require.NoError(t, err)
}

func TestUserRepository_DeleteCascadesNotes(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	users := store.Users()
	notes := store.Notes()

	alice, err := users.Create(ctx, "Alice", "a@b.c", "hash")
	require.NoError(t, err)
	bob, err := users.Create(ctx, "Bob", "b@b.c", "hash")
	require.NoError(t, err)

	_, err = notes.Create(ctx, alice.ID, model.NoteCreate{Title: "hers", Description: "d"})
	require.NoError(t, err)
	kept, err := notes.Create(ctx, bob.ID, model.NoteCreate{Title: "his", Description: "d"})
	require.NoError(t, err)

	require.NoError(t, users.Delete(ctx, alice.ID))

	_, err = users.GetByID(ctx, alice.ID)
	require.ErrorIs(t, err, model.ErrNotFound)

	count, err := notes.Count(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	still, err := notes.GetByID(ctx, bob.ID, kept.ID)
	require.NoError(t, err)
	assert.Equal(t, "his", still.Title)
}

func TestNoteRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := base
	store.now = func() time.Time { return clock }

	users := store.Users()
	notes := store.Notes()

	owner, err := users.Create(ctx, "Alice", "a@b.c", "hash")
	require.NoError(t, err)

	first, err := notes.Create(ctx, owner.ID, model.NoteCreate{Title: "first", Description: "d"})
	require.NoError(t, err)
	clock = base.Add(time.Minute)
	second, err := notes.Create(ctx, owner.ID, model.NoteCreate{Title: "second", Description: "d"})
	require.NoError(t, err)
	// same timestamp as second, higher id wins the tie
	third, err := notes.Create(ctx, owner.ID, model.NoteCreate{Title: "third", Description: "d"})
	require.NoError(t, err)

	listed, err := notes.List(ctx, owner.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, third.ID, listed[0].ID)
	assert.Equal(t, second.ID, listed[1].ID)
	assert.Equal(t, first.ID, listed[2].ID)
}

func TestNoteRepository_ListPagination(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	i := 0
	store.now = func() time.Time {
		i++
		return base.Add(time.Duration(i) * time.Second)
	}

	users := store.Users()
	notes := store.Notes()

	owner, err := users.Create(ctx, "Alice", "a@b.c", "hash")
	require.NoError(t, err)

	for n := 0; n < 25; n++ {
		_, err := notes.Create(ctx, owner.ID, model.NoteCreate{Title: "note", Description: "d"})
		require.NoError(t, err)
	}

	page, err := notes.List(ctx, owner.ID, 10, 10)
	require.NoError(t, err)
	require.Len(t, page, 10)
	// newest-first: page two of size ten holds ids 15 down to 6
	assert.Equal(t, int64(15), page[0].ID)
	assert.Equal(t, int64(6), page[9].ID)

	lastPage, err := notes.List(ctx, owner.ID, 10, 20)
	require.NoError(t, err)
	assert.Len(t, lastPage, 5)

	empty, err := notes.List(ctx, owner.ID, 10, 30)
	require.NoError(t, err)
	assert.Empty(t, empty)

	count, err := notes.Count(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(25), count)
}

func TestNoteRepository_OwnershipScoping(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	users := store.Users()
	notes := store.Notes()

	alice, err := users.Create(ctx, "Alice", "a@b.c", "hash")
	require.NoError(t, err)
	bob, err := users.Create(ctx, "Bob", "b@b.c", "hash")
	require.NoError(t, err)

	hers, err := notes.Create(ctx, alice.ID, model.NoteCreate{Title: "hers", Description: "d"})
	require.NoError(t, err)

	_, err = notes.GetByID(ctx, bob.ID, hers.ID)
	require.ErrorIs(t, err, model.ErrNotFound)

	title := "stolen"
	_, err = notes.Update(ctx, bob.ID, hers.ID, model.NoteUpdate{Title: &title})
	require.ErrorIs(t, err, model.ErrNotFound)

	err = notes.Delete(ctx, bob.ID, hers.ID)
	require.ErrorIs(t, err, model.ErrNotFound)

	// still intact for the owner
	got, err := notes.GetByID(ctx, alice.ID, hers.ID)
	require.NoError(t, err)
	assert.Equal(t, "hers", got.Title)

	listed, err := notes.List(ctx, bob.ID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestNoteRepository_UpdateRefreshesTimestamp(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := base
	store.now = func() time.Time { return clock }

	users := store.Users()
	notes := store.Notes()

	owner, err := users.Create(ctx, "Alice", "a@b.c", "hash")
	require.NoError(t, err)

	created, err := notes.Create(ctx, owner.ID, model.NoteCreate{Title: "before", Description: "d"})
	require.NoError(t, err)

	clock = base.Add(time.Hour)
	title := "after"
	updated, err := notes.Update(ctx, owner.ID, created.ID, model.NoteUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Title)
	assert.Equal(t, "d", updated.Description)
	assert.True(t, updated.Timestamp.After(created.Timestamp))
}

func TestNoteRepository_PartialUpdateKeepsOtherFields(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	users := store.Users()
	notes := store.Notes()

	owner, err := users.Create(ctx, "Alice", "a@b.c", "hash")
	require.NoError(t, err)

	tag := "work"
	subject := "planning"
	created, err := notes.Create(ctx, owner.ID, model.NoteCreate{
		Title:       "title",
		Description: "body",
		Tag:         &tag,
		Subject:     &subject,
	})
	require.NoError(t, err)

	newDescription := "rewritten"
	updated, err := notes.Update(ctx, owner.ID, created.ID, model.NoteUpdate{Description: &newDescription})
	require.NoError(t, err)
	assert.Equal(t, "title", updated.Title)
	assert.Equal(t, "rewritten", updated.Description)
	require.NotNil(t, updated.Tag)
	assert.Equal(t, "work", *updated.Tag)
	require.NotNil(t, updated.Subject)
	assert.Equal(t, "planning", *updated.Subject)
}

func TestNoteRepository_DeleteThenGet(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	users := store.Users()
	notes := store.Notes()

	owner, err := users.Create(ctx, "Alice", "a@b.c", "hash")
	require.NoError(t, err)

	created, err := notes.Create(ctx, owner.ID, model.NoteCreate{Title: "t", Description: "d"})
	require.NoError(t, err)

	require.NoError(t, notes.Delete(ctx, owner.ID, created.ID))

	_, err = notes.GetByID(ctx, owner.ID, created.ID)
	require.ErrorIs(t, err, model.ErrNotFound)

	require.ErrorIs(t, notes.Delete(ctx, owner.ID, created.ID), model.ErrNotFound)
}
