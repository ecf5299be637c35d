// Package db provides read-only SQLite access to the MacWhisper database.
package db

// Session represents one transcription session row.
//
// The id column is a BLOB in MacWhisper's schema; it is read hex-encoded
// so it can key the export state and appear in note metadata. Optional
// columns are pointers; nil means NULL in the database.
type Session struct {
	ID               string
	DateCreated      string
	DateUpdated      string
	UserChosenTitle  *string
	AITitle          *string
	AISummaryShort   *string
	AISummary        *string
	FullText         *string
	PlaybackDuration *float64
	DetectedLanguage *string
	OriginalFilename *string
}
