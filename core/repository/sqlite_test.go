package repository

import (
	"context"
	"testing"

	"bulk-seeder/core/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func databaseConfig(driver string) database.Config {
	return database.Config{Driver: driver, Name: ":memory:"}
}

func TestOpen_SQLite(t *testing.T) {
	backend, err := Open(databaseConfig(database.DriverSQLite))
	require.NoError(t, err)
	defer backend.Close(context.Background())

	gb, ok := backend.(*GormBackend)
	require.True(t, ok)
	require.NoError(t, gb.DB().Exec("CREATE TABLE orgs (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT NOT NULL, meta TEXT)").Error)

	h, err := backend.Handle(context.Background(), "orgs")
	require.NoError(t, err)

	first, err := h.InsertOne(context.Background(), map[string]any{"name": "acme", "meta": map[string]any{"tier": "gold"}})
	require.NoError(t, err)
	second, err := h.InsertOne(context.Background(), map[string]any{"name": "globex"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)

	var meta string
	require.NoError(t, gb.DB().Raw("SELECT meta FROM orgs WHERE id = 1").Scan(&meta).Error)
	assert.JSONEq(t, `{"tier":"gold"}`, meta)

	_, err = h.InsertOne(context.Background(), map[string]any{"meta": "no name"})
	assert.Error(t, err)
}

func TestOpenAll(t *testing.T) {
	reg, failed := OpenAll(context.Background(), map[string]database.Config{
		"default": databaseConfig(database.DriverSQLite),
		"legacy":  databaseConfig("oracle"),
	})
	defer reg.Close(context.Background())

	assert.Equal(t, []string{"default"}, reg.Connections())
	assert.Contains(t, failed, "legacy")

	_, err := reg.Handle(context.Background(), "users", "legacy")
	assert.ErrorIs(t, err, ErrUnavailable)
}
