package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	database, err := Reset(path, "", zerolog.Nop())
	require.NoError(t, err)

	var tables []string
	err = database.Raw("SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'").
		Scan(&tables).Error
	require.NoError(t, err)
	for _, table := range Tables() {
		assert.Contains(t, tables, table)
	}
}

func TestResetDeletesPreviousFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	database, err := Reset(path, "", zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, database.Exec(
		`INSERT INTO genres (id, age_range, description) VALUES (1, '7+', 'Books in the poetry genre')`).Error)

	database, err = Reset(path, "", zerolog.Nop())
	require.NoError(t, err)

	var rows int
	require.NoError(t, database.Raw("SELECT COUNT(*) FROM genres").Scan(&rows).Error)
	assert.Zero(t, rows, "a reset must start from an empty database")
}

func TestResetWithExternalSchema(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.sql")
	ddl := `CREATE TABLE IF NOT EXISTS probe (id INTEGER PRIMARY KEY);`
	require.NoError(t, os.WriteFile(schemaPath, []byte(ddl), 0o644))

	database, err := Reset(filepath.Join(dir, "test.db"), schemaPath, zerolog.Nop())
	require.NoError(t, err)
	assert.NoError(t, database.Exec("INSERT INTO probe (id) VALUES (1)").Error)
}

func TestResetWithMissingSchemaFile(t *testing.T) {
	dir := t.TempDir()
	_, err := Reset(filepath.Join(dir, "test.db"), filepath.Join(dir, "absent.sql"), zerolog.Nop())
	assert.ErrorIs(t, err, ErrSchemaApply)
}

func TestForeignKeysEnforced(t *testing.T) {
	database, err := Reset(filepath.Join(t.TempDir(), "test.db"), "", zerolog.Nop())
	require.NoError(t, err)

	err = database.Exec(
		`INSERT INTO publications (isbn, title, price, stock, genre_id)
		 VALUES (1000000000001, 'Orphan', 10.0, 5, 99)`).Error
	assert.Error(t, err, "publication with an unknown genre must be rejected")
}

func TestColumns(t *testing.T) {
	columns, ok := Columns("publications")
	require.True(t, ok)
	assert.Equal(t, []string{"isbn", "title", "price", "stock", "genre_id"}, columns)

	_, ok = Columns("users")
	assert.False(t, ok)

	assert.Len(t, Tables(), 12)
}
