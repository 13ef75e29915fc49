package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func emptyRecords() []record {
	return []record{}
}

func TestCollection_DefaultOnFirstLoad(t *testing.T) {
	ctx := context.Background()
	coll := NewCollection(NewMemoryBackend(), "records", emptyRecords)

	records, err := coll.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCollection_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	coll := NewCollection(NewMemoryBackend(), "records", emptyRecords)

	require.NoError(t, coll.Save(ctx, []record{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}))

	records, err := coll.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].Name)
	assert.Equal(t, "b", records[1].Name)
}

func TestCollection_UpdateIsLoadMutateSave(t *testing.T) {
	ctx := context.Background()
	coll := NewCollection(NewMemoryBackend(), "records", emptyRecords)

	saved, err := coll.Update(ctx, func(records []record) ([]record, error) {
		return append(records, record{ID: "1"}), nil
	})
	require.NoError(t, err)
	assert.Len(t, saved, 1)

	saved, err = coll.Update(ctx, func(records []record) ([]record, error) {
		return append(records, record{ID: "2"}), nil
	})
	require.NoError(t, err)
	assert.Len(t, saved, 2)
}

func TestCollection_UpdateErrorPersistsNothing(t *testing.T) {
	ctx := context.Background()
	coll := NewCollection(NewMemoryBackend(), "records", emptyRecords)

	require.NoError(t, coll.Save(ctx, []record{{ID: "1"}}))

	_, err := coll.Update(ctx, func(records []record) ([]record, error) {
		return nil, errors.New("mutation rejected")
	})
	require.Error(t, err)

	records, err := coll.Load(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0].ID)
}

func TestFileBackend_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	backend, err := NewFileBackend(dir)
	require.NoError(t, err)

	_, ok, err := backend.Load(ctx, "users")
	require.NoError(t, err)
	assert.False(t, ok, "unwritten collection must read as absent")

	require.NoError(t, backend.Save(ctx, "users", []byte(`[{"id":"1"}]`)))

	data, ok, err := backend.Load(ctx, "users")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"1"}]`, string(data))

	// The save went through a rename; no temp files survive.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "users.json", entries[0].Name())
}

func TestFileBackend_CollectionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	backend, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, backend.Save(ctx, "users", []byte(`["u"]`)))
	require.NoError(t, backend.Save(ctx, "payments", []byte(`["p"]`)))

	data, ok, err := backend.Load(ctx, "users")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `["u"]`, string(data))
}

func TestFileBackend_FilesAreIndented(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	backend, err := NewFileBackend(dir)
	require.NoError(t, err)

	coll := NewCollection(backend, "records", emptyRecords)
	require.NoError(t, coll.Save(ctx, []record{{ID: "1", Name: "a"}}))

	raw, err := os.ReadFile(filepath.Join(dir, "records.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  ")
}

func TestMemoryBackend_CopiesData(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()

	payload := []byte(`["a"]`)
	require.NoError(t, backend.Save(ctx, "records", payload))
	payload[2] = 'b'

	data, ok, err := backend.Load(ctx, "records")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `["a"]`, string(data))
}
