// Package store persists detection runs to SQLite.
//
// Each call to the detector can be recorded as a run (image path,
// dimensions, shape count) together with every classified shape. Runs are
// keyed by UUID so results from different invocations never collide, and
// the schema is created on open so a fresh database file just works.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/lvrreddy-3122005/shape-detector-solution/internal/detection"
)

// Store wraps the SQLite database holding recorded detection runs.
type Store struct {
	*sql.DB
}

// Open opens (or creates) the SQLite database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			run_id             TEXT PRIMARY KEY,
			image_path         TEXT,
			image_width        BIGINT,
			image_height       BIGINT,
			shape_count        BIGINT,
			truncated_contours BIGINT,
			created_at         TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS shapes (
			run_id     TEXT,
			idx        BIGINT,
			type       TEXT,
			confidence DOUBLE,
			x1         DOUBLE,
			y1         DOUBLE,
			x2         DOUBLE,
			y2         DOUBLE,
			center_x   DOUBLE,
			center_y   DOUBLE,
			area       DOUBLE,
			FOREIGN KEY(run_id) REFERENCES runs(run_id)
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db}, nil
}

// Run is one recorded detection pass over an image.
type Run struct {
	ID                string    `json:"run_id"`
	ImagePath         string    `json:"image_path"`
	ImageWidth        int       `json:"image_width"`
	ImageHeight       int       `json:"image_height"`
	ShapeCount        int       `json:"shape_count"`
	TruncatedContours int       `json:"truncated_contours"`
	CreatedAt         time.Time `json:"created_at"`
}

// RecordRun stores a detection result and its shapes, returning the new
// run's ID.
func (s *Store) RecordRun(imagePath string, result *detection.Result) (string, error) {
	runID := uuid.NewString()

	tx, err := s.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO runs (run_id, image_path, image_width, image_height, shape_count, truncated_contours)
		VALUES (?, ?, ?, ?, ?, ?)`,
		runID, imagePath, result.ImageWidth, result.ImageHeight,
		result.Count, result.TruncatedContours)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	for i, shape := range result.Shapes {
		_, err = tx.Exec(`
			INSERT INTO shapes (run_id, idx, type, confidence, x1, y1, x2, y2, center_x, center_y, area)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, i, string(shape.Type), shape.Confidence,
			shape.Bounds.X1, shape.Bounds.Y1, shape.Bounds.X2, shape.Bounds.Y2,
			shape.Center.X, shape.Center.Y, shape.Area)
		if err != nil {
			return "", fmt.Errorf("failed to insert shape %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}

	return runID, nil
}

// ListRuns returns the most recent runs, newest first, up to limit.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	rows, err := s.Query(`
		SELECT run_id, image_path, image_width, image_height, shape_count, truncated_contours, created_at
		FROM runs ORDER BY created_at DESC, run_id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.ImagePath, &r.ImageWidth, &r.ImageHeight,
			&r.ShapeCount, &r.TruncatedContours, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun returns one run by ID, or sql.ErrNoRows if it does not exist.
func (s *Store) GetRun(runID string) (*Run, error) {
	var r Run
	err := s.QueryRow(`
		SELECT run_id, image_path, image_width, image_height, shape_count, truncated_contours, created_at
		FROM runs WHERE run_id = ?`, runID).
		Scan(&r.ID, &r.ImagePath, &r.ImageWidth, &r.ImageHeight,
			&r.ShapeCount, &r.TruncatedContours, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// RunShapes returns the shapes recorded for a run, in detection order.
func (s *Store) RunShapes(runID string) ([]detection.Shape, error) {
	rows, err := s.Query(`
		SELECT type, confidence, x1, y1, x2, y2, center_x, center_y, area
		FROM shapes WHERE run_id = ? ORDER BY idx`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shapes: %w", err)
	}
	defer rows.Close()

	var shapes []detection.Shape
	for rows.Next() {
		var shape detection.Shape
		var shapeType string
		if err := rows.Scan(&shapeType, &shape.Confidence,
			&shape.Bounds.X1, &shape.Bounds.Y1, &shape.Bounds.X2, &shape.Bounds.Y2,
			&shape.Center.X, &shape.Center.Y, &shape.Area); err != nil {
			return nil, fmt.Errorf("failed to scan shape: %w", err)
		}
		shape.Type = detection.ShapeType(shapeType)
		shapes = append(shapes, shape)
	}
	return shapes, rows.Err()
}
