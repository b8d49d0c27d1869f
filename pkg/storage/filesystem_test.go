package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	rel, err := store.Save("id-cards/job-1.pdf", []byte("%PDF-1.3"))
	require.NoError(t, err)
	require.Equal(t, "id-cards/job-1.pdf", rel)

	data, err := store.Read(rel)
	require.NoError(t, err)
	require.Equal(t, "%PDF-1.3", string(data))

	deleted, err := store.CleanupOlderThan(-time.Minute)
	require.NoError(t, err)
	require.Len(t, deleted, 1)

	_, err = store.Read(rel)
	require.Error(t, err)
	require.NoError(t, store.Delete(rel))
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save("../escape.pdf", []byte("x"))
	require.ErrorIs(t, err, ErrOutsideBase)
	_, err = store.Read("/etc/passwd")
	require.ErrorIs(t, err, ErrOutsideBase)
}
