package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// VectorRecord is a stored feature vector with the page metadata captured
// alongside it.
type VectorRecord struct {
	VectorID           int64
	RunID              int64 // 0 when stored outside a run
	URL                string
	PageURL            string
	CapturedAt         time.Time
	Source             string
	Geometry           bool
	ContentHash        string
	Bits               string
	Positives          int
	Language           string
	LanguageConfidence float64
	Title              string
	SiteName           string
}

// VectorFilter narrows ListVectors. Zero values match everything.
type VectorFilter struct {
	RunID  int64
	Domain string
	Limit  int
}

// InsertVector stores a vector, inserting its URL if needed, and returns the
// vector_id.
func (db *DB) InsertVector(v VectorRecord) (int64, error) {
	urlID, err := db.InsertURL(v.URL)
	if err != nil {
		return 0, err
	}
	pageURL := v.PageURL
	if pageURL == "" {
		pageURL = v.URL
	}
	runID := sql.NullInt64{Int64: v.RunID, Valid: v.RunID != 0}

	result, err := db.Exec(`
		INSERT INTO vectors (run_id, url_id, page_url, captured_at, source, geometry, content_hash,
		                     bits, positives, language, language_confidence, title, site_name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, runID, urlID, pageURL, v.CapturedAt.UTC(), v.Source, v.Geometry, v.ContentHash,
		v.Bits, strings.Count(v.Bits, "1"), NewNullString(v.Language), NewNullFloat64(v.LanguageConfidence),
		NewNullString(v.Title), NewNullString(v.SiteName))
	if err != nil {
		return 0, fmt.Errorf("failed to insert vector: %w", err)
	}
	return result.LastInsertId()
}

const vectorColumns = `
	v.vector_id, v.run_id, u.original_url, v.page_url, v.captured_at, v.source, v.geometry,
	v.content_hash, v.bits, v.positives, v.language, v.language_confidence, v.title, v.site_name`

// GetVectorByID retrieves one stored vector.
func (db *DB) GetVectorByID(vectorID int64) (*VectorRecord, error) {
	row := db.QueryRow(`SELECT `+vectorColumns+`
		FROM vectors v
		JOIN urls u ON u.url_id = v.url_id
		WHERE v.vector_id = ?
	`, vectorID)
	v, err := scanVector(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("vector %d not found", vectorID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vector: %w", err)
	}
	return v, nil
}

// ListVectors retrieves stored vectors, most recent first.
func (db *DB) ListVectors(f VectorFilter) ([]VectorRecord, error) {
	query := `SELECT ` + vectorColumns + `
		FROM vectors v
		JOIN urls u ON u.url_id = v.url_id
		WHERE 1=1`
	var args []any
	if f.RunID != 0 {
		query += " AND v.run_id = ?"
		args = append(args, f.RunID)
	}
	if f.Domain != "" {
		query += " AND u.domain LIKE ?"
		args = append(args, "%"+f.Domain+"%")
	}
	query += " ORDER BY v.vector_id DESC"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list vectors: %w", err)
	}
	defer rows.Close()

	var out []VectorRecord
	for rows.Next() {
		v, err := scanVector(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vector: %w", err)
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVector(row rowScanner) (*VectorRecord, error) {
	var v VectorRecord
	var runID sql.NullInt64
	var language, title, siteName sql.NullString
	var confidence sql.NullFloat64
	err := row.Scan(&v.VectorID, &runID, &v.URL, &v.PageURL, &v.CapturedAt, &v.Source, &v.Geometry,
		&v.ContentHash, &v.Bits, &v.Positives, &language, &confidence, &title, &siteName)
	if err != nil {
		return nil, err
	}
	v.RunID = runID.Int64
	v.Language = language.String
	v.LanguageConfidence = confidence.Float64
	v.Title = title.String
	v.SiteName = siteName.String
	return &v, nil
}
