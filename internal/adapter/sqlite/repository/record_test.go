package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obruchev/user_intake_service/internal/core/domain"
)

const migrationsDir = "../migrations"

func openTestStore(t *testing.T) *SQLiteRecordStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "intake.db")
	store, err := Open(path, migrationsDir)
	require.NoError(t, err)

	t.Cleanup(func() {
		store.Close()
	})

	return store
}

func sampleRecord() *domain.Record {
	return &domain.Record{
		Name:      "Ana Lopez",
		Email:     "ana@example.com",
		BirthDate: "1990-05-12",
		Address:   "Calle 1, City",
		Password:  "secret1",
	}
}

func TestInsertFetchAllRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	record := sampleRecord()
	id, err := store.Insert(ctx, record)
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.Equal(t, id, record.ID)

	records, err := store.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	stored := records[0]
	assert.Equal(t, id, stored.ID)
	assert.Equal(t, "Ana Lopez", stored.Name)
	assert.Equal(t, "ana@example.com", stored.Email)
	assert.Equal(t, "1990-05-12", stored.BirthDate)
	assert.Equal(t, "Calle 1, City", stored.Address)
	assert.Equal(t, "secret1", stored.Password)
}

func TestInsertRejectsPersistedRecord(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	record := sampleRecord()
	record.ID = 42

	_, err := store.Insert(ctx, record)
	assert.Error(t, err)
}

func TestReopenPreservesRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intake.db")
	ctx := context.Background()

	store, err := Open(path, migrationsDir)
	require.NoError(t, err)

	_, err = store.Insert(ctx, sampleRecord())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(path, migrationsDir)
	require.NoError(t, err)
	defer reopened.Close()

	records, err := reopened.FetchAll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestFetchAllReturnsInsertionOrder(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	names := []string{"Ana Lopez", "Bruno Silva", "Carla Gomez"}
	for _, name := range names {
		record := sampleRecord()
		record.Name = name
		_, err := store.Insert(ctx, record)
		require.NoError(t, err)
	}

	records, err := store.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)

	for i, name := range names {
		assert.Equal(t, name, records[i].Name)
	}
}

func TestOperationsAfterCloseFail(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Close())

	_, err := store.Insert(ctx, sampleRecord())
	assert.ErrorIs(t, err, domain.ErrStorageClosed)

	_, err = store.FetchAll(ctx)
	assert.ErrorIs(t, err, domain.ErrStorageClosed)

	// Close is safe to call again.
	assert.NoError(t, store.Close())
}

func TestOpenFailsOnInaccessiblePath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "nested", "intake.db"), migrationsDir)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestDuplicateInsertsAllowed(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first, err := store.Insert(ctx, sampleRecord())
	require.NoError(t, err)
	second, err := store.Insert(ctx, sampleRecord())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	records, err := store.FetchAll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
