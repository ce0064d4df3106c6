package memory

import (
	"context"
	"testing"

	"assistant-bot/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(t *testing.T, name string, phones ...string) model.Record {
	t.Helper()

	record, err := model.NewRecord(name)
	require.NoError(t, err)
	for _, phone := range phones {
		require.NoError(t, record.AddPhone(phone))
	}
	return *record
}

func names(records []model.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func TestRepository_SaveAssignsID(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	saved, err := repo.Save(ctx, newRecord(t, "Ann", "1234567890"))
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	got, err := repo.GetByName(ctx, "Ann")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, []string{"1234567890"}, got.PhoneValues())
}

func TestRepository_SaveKeepsExistingID(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	saved, err := repo.Save(ctx, newRecord(t, "Ann"))
	require.NoError(t, err)

	require.NoError(t, saved.AddPhone("1234567890"))
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)
}

func TestRepository_SaveEmptyName(t *testing.T) {
	_, err := NewRepository().Save(context.Background(), model.Record{})
	assert.ErrorIs(t, err, model.ErrInvalidName)
}

func TestRepository_GetByName_NotFound(t *testing.T) {
	_, err := NewRepository().GetByName(context.Background(), "Ghost")
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestRepository_GetByName_IsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.Save(ctx, newRecord(t, "Ann"))
	require.NoError(t, err)

	_, err = repo.GetByName(ctx, "ann")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.Save(ctx, newRecord(t, "Ann", "1111111111"))
	require.NoError(t, err)

	got, err := repo.GetByName(ctx, "Ann")
	require.NoError(t, err)
	require.NoError(t, got.AddPhone("2222222222"))

	again, err := repo.GetByName(ctx, "Ann")
	require.NoError(t, err)
	assert.Equal(t, []string{"1111111111"}, again.PhoneValues())
}

func TestRepository_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	for _, name := range []string{"Carl", "Ann", "Bob"} {
		_, err := repo.Save(ctx, newRecord(t, name))
		require.NoError(t, err)
	}

	// Перезапись не меняет позицию
	_, err := repo.Save(ctx, newRecord(t, "Carl", "1234567890"))
	require.NoError(t, err)

	records, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Carl", "Ann", "Bob"}, names(records))
	assert.Equal(t, []string{"1234567890"}, records[0].PhoneValues())
}

func TestRepository_DeleteThenAddMovesToEnd(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	for _, name := range []string{"Ann", "Bob"} {
		_, err := repo.Save(ctx, newRecord(t, name))
		require.NoError(t, err)
	}

	require.NoError(t, repo.Delete(ctx, "Ann"))
	_, err := repo.Save(ctx, newRecord(t, "Ann"))
	require.NoError(t, err)

	records, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob", "Ann"}, names(records))
}

func TestRepository_Delete_NotFound(t *testing.T) {
	err := NewRepository().Delete(context.Background(), "Ghost")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRepository_ListEmpty(t *testing.T) {
	records, err := NewRepository().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}
