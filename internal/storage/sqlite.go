// Package storage provides SQLite-based persistence for the map catalog.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tileforge/internal/tilemap"
)

// Store manages the SQLite database connection for the map catalog.
type Store struct {
	db *sql.DB
}

// MapEntry is one cataloged TMX file.
type MapEntry struct {
	ID         int64
	Path       string
	LayerCount int
	ScannedAt  time.Time
}

// LayerEntry is one cataloged layer together with the path of its map.
type LayerEntry struct {
	ID          int64
	MapID       int64
	MapPath     string
	Name        string
	Width       int
	Height      int
	Encoding    string
	Compression string
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS maps (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL UNIQUE,
			scanned_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_maps_path ON maps(path);

		CREATE TABLE IF NOT EXISTS layers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			map_id INTEGER NOT NULL REFERENCES maps(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			width INTEGER NOT NULL DEFAULT 0,
			height INTEGER NOT NULL DEFAULT 0,
			encoding TEXT NOT NULL DEFAULT '',
			compression TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_layers_map_id ON layers(map_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordMap inserts or refreshes the catalog entry for a scanned map.
// Rescanning a path replaces its layer rows and bumps scanned_at.
// Returns the map's catalog ID.
func (s *Store) RecordMap(info *tilemap.MapInfo) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	var mapID int64
	err = tx.QueryRow("SELECT id FROM maps WHERE path = ?", info.Path).Scan(&mapID)
	switch {
	case err == sql.ErrNoRows:
		res, err := tx.Exec("INSERT INTO maps (path) VALUES (?)", info.Path)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot insert map: %w", err)
		}
		mapID, err = res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
		}
	case err != nil:
		return 0, fmt.Errorf("storage: cannot look up map: %w", err)
	default:
		if _, err := tx.Exec(
			"UPDATE maps SET scanned_at = CURRENT_TIMESTAMP WHERE id = ?", mapID,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot refresh map: %w", err)
		}
		if _, err := tx.Exec("DELETE FROM layers WHERE map_id = ?", mapID); err != nil {
			return 0, fmt.Errorf("storage: cannot clear layers: %w", err)
		}
	}

	for _, l := range info.Layers {
		if _, err := tx.Exec(
			`INSERT INTO layers (map_id, name, width, height, encoding, compression)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			mapID, l.Name, l.Width, l.Height, l.Encoding, l.Compression,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot insert layer: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit: %w", err)
	}
	return mapID, nil
}

// Maps retrieves every cataloged map ordered by path.
func (s *Store) Maps() ([]MapEntry, error) {
	rows, err := s.db.Query(
		`SELECT m.id, m.path, COUNT(l.id), m.scanned_at
		 FROM maps m
		 LEFT JOIN layers l ON l.map_id = m.id
		 GROUP BY m.id
		 ORDER BY m.path`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query maps: %w", err)
	}
	defer rows.Close()

	var entries []MapEntry
	for rows.Next() {
		var e MapEntry
		var scannedAt any
		if err := rows.Scan(&e.ID, &e.Path, &e.LayerCount, &scannedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := scannedAt.(type) {
		case time.Time:
			e.ScannedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.ScannedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// MapByPath retrieves a single cataloged map, or nil if the path is not
// cataloged.
func (s *Store) MapByPath(path string) (*MapEntry, error) {
	var e MapEntry
	var scannedAt any

	err := s.db.QueryRow(
		`SELECT m.id, m.path, COUNT(l.id), m.scanned_at
		 FROM maps m
		 LEFT JOIN layers l ON l.map_id = m.id
		 WHERE m.path = ?
		 GROUP BY m.id`,
		path,
	).Scan(&e.ID, &e.Path, &e.LayerCount, &scannedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query map: %w", err)
	}

	switch v := scannedAt.(type) {
	case time.Time:
		e.ScannedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.ScannedAt = parsed
		}
	}

	return &e, nil
}

// LayersFor retrieves the layers of one cataloged map.
func (s *Store) LayersFor(mapID int64) ([]LayerEntry, error) {
	return s.queryLayers("WHERE l.map_id = ?", mapID)
}

// AllLayers retrieves every cataloged layer across all maps, ordered by
// map path then layer name.
func (s *Store) AllLayers() ([]LayerEntry, error) {
	return s.queryLayers("")
}

func (s *Store) queryLayers(where string, args ...any) ([]LayerEntry, error) {
	rows, err := s.db.Query(
		`SELECT l.id, l.map_id, m.path, l.name, l.width, l.height, l.encoding, l.compression
		 FROM layers l
		 JOIN maps m ON m.id = l.map_id `+where+`
		 ORDER BY m.path, l.name`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query layers: %w", err)
	}
	defer rows.Close()

	var entries []LayerEntry
	for rows.Next() {
		var e LayerEntry
		if err := rows.Scan(
			&e.ID, &e.MapID, &e.MapPath, &e.Name,
			&e.Width, &e.Height, &e.Encoding, &e.Compression,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RemoveMap deletes a cataloged map and its layers. Removing a path that
// was never cataloged is not an error.
func (s *Store) RemoveMap(path string) error {
	var mapID int64
	err := s.db.QueryRow("SELECT id FROM maps WHERE path = ?", path).Scan(&mapID)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("storage: cannot look up map: %w", err)
	}

	if _, err := s.db.Exec("DELETE FROM layers WHERE map_id = ?", mapID); err != nil {
		return fmt.Errorf("storage: cannot delete layers: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM maps WHERE id = ?", mapID); err != nil {
		return fmt.Errorf("storage: cannot delete map: %w", err)
	}
	return nil
}
