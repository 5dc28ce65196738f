package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwerty0999999/payment-projek/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestLoadMissingDocument(t *testing.T) {
	store := newTestStore(t)

	var users []models.User
	store.Load(DocUsers, &users)
	assert.Empty(t, users)
}

func TestLoadCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	err = os.WriteFile(filepath.Join(dir, "users.json"), []byte("{bukan json"), 0644)
	require.NoError(t, err)

	var users []models.User
	store.Load(DocUsers, &users)
	assert.Empty(t, users)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	in := []models.Product{
		{ID: 1, Name: "Paket A", Price: 150000, Stock: 50, Icon: models.DefaultIcon},
		{ID: 2, Name: "Paket B", Price: 250000, Stock: 10, Icon: models.DefaultIcon},
	}
	require.NoError(t, store.Save(DocProducts, in))

	var out []models.Product
	store.Load(DocProducts, &out)
	assert.Equal(t, in, out)
}

func TestUpdateAppliesMutation(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(DocUsers, models.DefaultUsers()))

	var users []models.User
	err := store.Update(DocUsers, &users, func() (any, error) {
		users = append(users, models.User{Username: "budi", Password: "123", Role: models.RoleAdmin})
		return users, nil
	})
	require.NoError(t, err)

	var out []models.User
	store.Load(DocUsers, &out)
	require.Len(t, out, 3)
	assert.Equal(t, "budi", out[2].Username)
}

func TestUpdateAbortsWithoutWriting(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(DocUsers, models.DefaultUsers()))

	var users []models.User
	err := store.Update(DocUsers, &users, func() (any, error) {
		return nil, assert.AnError
	})
	require.Error(t, err)

	var out []models.User
	store.Load(DocUsers, &out)
	assert.Equal(t, models.DefaultUsers(), out)
}

func TestExists(t *testing.T) {
	store := newTestStore(t)

	assert.False(t, store.Exists(DocProducts))
	require.NoError(t, store.Save(DocProducts, models.DefaultCatalog()))
	assert.True(t, store.Exists(DocProducts))
}
