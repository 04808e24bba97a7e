package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func writeAll(t *testing.T, dir string) {
	t.Helper()
	writeFile(t, dir, "first_names.txt", "Anna\nNikos\n")
	writeFile(t, dir, "last_names.txt", "Papadopoulos\nOikonomou\n")
	writeFile(t, dir, "categories.txt", "Fantasy\nPoetry\n")
	writeFile(t, dir, "locations.txt", "Athens\nVolos\n")
	writeFile(t, dir, "book_titles.txt", "The Silent Harbor\n")
}

func TestLoad(t *testing.T) {
	t.Run("all files present", func(t *testing.T) {
		dir := t.TempDir()
		writeAll(t, dir)

		ref, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"Anna", "Nikos"}, ref.FirstNames)
		assert.Equal(t, []string{"Fantasy", "Poetry"}, ref.Categories)
		assert.Equal(t, []string{"The Silent Harbor"}, ref.BookTitles)
	})

	t.Run("blank lines skipped", func(t *testing.T) {
		dir := t.TempDir()
		writeAll(t, dir)
		writeFile(t, dir, "locations.txt", "\nAthens\n\n  \nVolos\n")

		ref, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"Athens", "Volos"}, ref.Locations)
	})

	t.Run("missing file", func(t *testing.T) {
		dir := t.TempDir()
		writeAll(t, dir)
		require.NoError(t, os.Remove(filepath.Join(dir, "book_titles.txt")))

		_, err := Load(dir)
		assert.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("empty file", func(t *testing.T) {
		dir := t.TempDir()
		writeAll(t, dir)
		writeFile(t, dir, "categories.txt", "\n\n")

		_, err := Load(dir)
		assert.ErrorIs(t, err, ErrConfiguration)
	})
}
