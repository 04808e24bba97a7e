package db

import (
	"errors"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ErrSchemaApply marks a DDL failure. The database file is left in an
// undefined state and the run must be restarted from the top.
var ErrSchemaApply = errors.New("schema apply failed")

// Open connects to the SQLite database at path with foreign keys enforced.
func Open(path string) (*gorm.DB, error) {
	database, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := database.Exec("PRAGMA foreign_keys = ON;").Error; err != nil {
		return nil, err
	}
	return database, nil
}

// Reset deletes any previous database file and creates a fresh one from the
// schema. A missing previous file is not an error.
func Reset(path, schemaPath string, log zerolog.Logger) (*gorm.DB, error) {
	switch err := os.Remove(path); {
	case err == nil:
		log.Info().Str("path", path).Msg("previous database file deleted")
	case errors.Is(err, fs.ErrNotExist):
		log.Info().Str("path", path).Msg("no previous database file")
	default:
		return nil, err
	}

	database, err := Open(path)
	if err != nil {
		return nil, err
	}
	if err := applySchema(database, schemaPath); err != nil {
		return nil, err
	}
	log.Info().Msg("schema applied")
	return database, nil
}
