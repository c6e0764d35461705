package db

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
)

// InsertURL parses and inserts a URL, returning the url_id.
// If the URL already exists, returns the existing url_id.
func (db *DB) InsertURL(rawURL string) (int64, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return 0, fmt.Errorf("failed to parse URL: %w", err)
	}

	urlID, err := db.GetURLID(rawURL)
	if err == nil {
		return urlID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to check existing URL: %w", err)
	}

	// Canonical URL is scheme + host + path, no query/fragment
	canonicalURL := fmt.Sprintf("%s://%s%s", parsed.Scheme, parsed.Host, parsed.Path)

	result, err := db.Exec(`
		INSERT INTO urls (original_url, canonical_url, scheme, domain, path)
		VALUES (?, ?, ?, ?, ?)
	`, rawURL, canonicalURL, parsed.Scheme, parsed.Host, parsed.Path)
	if err != nil {
		return 0, fmt.Errorf("failed to insert URL: %w", err)
	}

	urlID, err = result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get URL ID: %w", err)
	}
	return urlID, nil
}

// GetURLID returns the url_id for originalURL, or sql.ErrNoRows.
func (db *DB) GetURLID(originalURL string) (int64, error) {
	var urlID int64
	err := db.QueryRow("SELECT url_id FROM urls WHERE original_url = ?", originalURL).Scan(&urlID)
	if err != nil {
		return 0, err
	}
	return urlID, nil
}

// SetURLClassification stores the detector's URL-based guesses.
func (db *DB) SetURLClassification(urlID int64, domainType, country string) error {
	_, err := db.Exec(`
		UPDATE urls SET domain_type = ?, country = ? WHERE url_id = ?
	`, NewNullString(domainType), NewNullString(country), urlID)
	if err != nil {
		return fmt.Errorf("failed to classify URL: %w", err)
	}
	return nil
}

// NewNullString maps an empty string to NULL.
func NewNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// NewNullFloat64 maps zero to NULL.
func NewNullFloat64(f float64) sql.NullFloat64 {
	if f == 0 {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: f, Valid: true}
}
