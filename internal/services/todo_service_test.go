package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/todo-api/internal/models"
	"github.com/yukikurage/todo-api/internal/repository"
	"github.com/yukikurage/todo-api/internal/testutil"
	"gorm.io/gorm"
)

func setupTodoService(t *testing.T) (*TodoService, *gorm.DB, uint64, uint64) {
	t.Helper()

	db := testutil.NewTestDB(t)
	owner := &models.User{Email: "owner@x.com", PasswordHash: "h"}
	other := &models.User{Email: "other@x.com", PasswordHash: "h"}
	require.NoError(t, db.Create(owner).Error)
	require.NoError(t, db.Create(other).Error)

	return NewTodoService(repository.NewTodoRepository(db)), db, owner.ID, other.ID
}

func TestTodoService_CreateThenGet(t *testing.T) {
	svc, _, owner, _ := setupTodoService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Buy milk", owner)
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got.Title)
	assert.False(t, got.Completed)
	assert.Equal(t, owner, got.UserID)
}

func TestTodoService_CreateRejectsBlankTitle(t *testing.T) {
	svc, _, owner, _ := setupTodoService(t)

	_, err := svc.Create(context.Background(), "   ", owner)
	assert.ErrorIs(t, err, ErrTitleRequired)
}

func TestTodoService_ForeignTodoLooksMissing(t *testing.T) {
	svc, _, owner, other := setupTodoService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Secret", owner)
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, created.ID, other)
	assert.ErrorIs(t, err, ErrTodoNotFound)

	_, err = svc.Update(ctx, created.ID, other, true)
	assert.ErrorIs(t, err, ErrTodoNotFound)

	deleted, err := svc.Delete(ctx, created.ID, other)
	require.NoError(t, err)
	assert.False(t, deleted)

	// Same answers as for an id that never existed.
	_, err = svc.GetByID(ctx, created.ID+1000, owner)
	assert.ErrorIs(t, err, ErrTodoNotFound)
}

func TestTodoService_UpdateAndDelete(t *testing.T) {
	svc, _, owner, _ := setupTodoService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Laundry", owner)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, owner, true)
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	deleted, err := svc.Delete(ctx, created.ID, owner)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.GetByID(ctx, created.ID, owner)
	assert.ErrorIs(t, err, ErrTodoNotFound)
}

func TestTodoService_Search(t *testing.T) {
	svc, _, owner, other := setupTodoService(t)
	ctx := context.Background()

	todos, total, err := svc.Search(ctx, owner, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, todos)

	for _, title := range []string{"a", "b", "c"} {
		_, err := svc.Create(ctx, title, owner)
		require.NoError(t, err)
	}
	_, err = svc.Create(ctx, "foreign", other)
	require.NoError(t, err)

	todos, total, err = svc.Search(ctx, owner, 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, todos, 1)
	assert.Equal(t, "c", todos[0].Title)
}
