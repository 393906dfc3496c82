package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/karanvs/studybuddy/internal/models"
)

// ErrInvalidInput marks writes rejected at the boundary (negative durations,
// difficulty out of range, empty owner). Rejected rows never reach the
// statistics engine.
var ErrInvalidInput = errors.New("invalid input")

// Store owns a single long-lived SQLite connection. It is opened once per
// process and injected into the statistics engine and the commands, instead
// of each caller opening its own connection.
type Store struct {
	db *gorm.DB
}

// Open connects to the SQLite database at path and runs migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := &Store{db: gdb}
	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// DefaultPath returns the database location under the user's home directory.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".studybuddy", "studybuddy.db"), nil
}

func (s *Store) migrate() error {
	return s.db.AutoMigrate(
		&models.StudySession{},
		&models.Timer{},
		&models.Task{},
		&models.Exam{},
		&models.Flashcard{},
		&models.Summary{},
		&models.Feedback{},
	)
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
