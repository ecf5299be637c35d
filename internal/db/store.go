package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store provides read-only access to the MacWhisper SQLite database.
type Store struct {
	db *sql.DB
}

// DefaultDBPath returns the default database path.
func DefaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "Library", "Application Support", "MacWhisper", "Database", "main.sqlite")
}

// Open opens the database in read-only mode. The file must already exist;
// opening a missing path is an error rather than an implicit empty database.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("database not found at %s: %w", path, err)
	}

	dsn := fmt.Sprintf("file:%s?mode=ro", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Verify connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Sessions returns all transcription sessions, ordered by creation date so
// export runs over the same data always see records in the same order.
func (s *Store) Sessions() ([]Session, error) {
	rows, err := s.db.Query(`
		SELECT
			hex(id),
			dateCreated,
			dateUpdated,
			userChosenTitle,
			aiTitle,
			aiSummaryShort,
			aiSummary,
			fullText,
			playbackDuration,
			detectedLanguage,
			originalFilename
		FROM session
		ORDER BY dateCreated, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var dateCreated, dateUpdated sql.NullString
		var userChosenTitle, aiTitle, aiSummaryShort sql.NullString
		var aiSummary, fullText sql.NullString
		var playbackDuration sql.NullFloat64
		var detectedLanguage, originalFilename sql.NullString

		if err := rows.Scan(&sess.ID, &dateCreated, &dateUpdated,
			&userChosenTitle, &aiTitle, &aiSummaryShort, &aiSummary,
			&fullText, &playbackDuration, &detectedLanguage,
			&originalFilename); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}

		sess.DateCreated = dateCreated.String
		sess.DateUpdated = dateUpdated.String
		sess.UserChosenTitle = stringPtr(userChosenTitle)
		sess.AITitle = stringPtr(aiTitle)
		sess.AISummaryShort = stringPtr(aiSummaryShort)
		sess.AISummary = stringPtr(aiSummary)
		sess.FullText = stringPtr(fullText)
		sess.DetectedLanguage = stringPtr(detectedLanguage)
		sess.OriginalFilename = stringPtr(originalFilename)
		if playbackDuration.Valid {
			d := playbackDuration.Float64
			sess.PlaybackDuration = &d
		}

		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
