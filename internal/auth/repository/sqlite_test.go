package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labela/labela-control/internal/model"
)

func newSQLiteRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "nested", "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db)
}

func TestSQLiteRepository_EmptyLoad(t *testing.T) {
	repo := newSQLiteRepo(t)

	s, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestSQLiteRepository_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	require.NoError(t, repo.Save(ctx, &model.Session{
		Credential: "tok-1",
		User:       &model.User{ID: 1, Name: "Ana", Email: "ana@labela.com"},
	}))
	require.NoError(t, repo.Save(ctx, &model.Session{
		Credential: "tok-2",
		User:       &model.User{ID: 2, Name: "Bia", Email: "bia@labela.com"},
	}))

	s, err := repo.Load(ctx)
	require.NoError(t, err)
	require.True(t, s.Complete())
	assert.Equal(t, "tok-2", s.Credential)
	assert.Equal(t, model.User{ID: 2, Name: "Bia", Email: "bia@labela.com"}, *s.User)

	require.NoError(t, repo.Clear(ctx))
	s, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestSQLiteRepository_PartialSession(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	require.NoError(t, repo.Save(ctx, &model.Session{Credential: "tok"}))

	s, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", s.Credential)
	assert.Nil(t, s.User)
	assert.False(t, s.Complete())
}
