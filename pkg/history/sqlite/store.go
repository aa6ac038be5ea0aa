// Package sqlite provides the SQLite implementation of the history store.
//
// SQLite is the default backend: file-based, no server, suitable for a
// single-host deployment of the assistant.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/agentforgood/sahayak-go/pkg/domain"
	"github.com/agentforgood/sahayak-go/pkg/history"
)

// Record aliases the shared history record type.
type Record = history.Record

// Store implements history.Store using SQLite as the backend.
type Store struct {
	// db is the SQLite database connection.
	db *sql.DB

	// tableName is the name of the table storing records.
	tableName string
}

// Config contains configuration for creating a SQLite history store.
type Config struct {
	// DBPath is the path to the SQLite database file.
	DBPath string

	// TableName is the name of the table to use. Defaults to "query_history".
	TableName string
}

// NewStore creates a new SQLite history store.
//
// Parameters:
//   - cfg: Configuration containing the database path and table name
//
// Returns:
//   - *Store: The SQLite store instance
//   - error: Error if database connection or table creation fails
func NewStore(cfg *Config) (*Store, error) {
	// Create parent directory if it doesn't exist
	dbDir := filepath.Dir(cfg.DBPath)
	if dbDir != "" && dbDir != "." {
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return nil, fmt.Errorf("NewSQLiteStore: failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_foreign_keys=1&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("NewSQLiteStore: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("NewSQLiteStore: %w", err)
	}

	tableName := cfg.TableName
	if tableName == "" {
		tableName = "query_history"
	}

	store := &Store{
		db:        db,
		tableName: tableName,
	}

	if err := store.initTables(context.Background()); err != nil {
		return nil, err
	}

	return store, nil
}

// initTables initializes the database table structure.
func (s *Store) initTables(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id INTEGER PRIMARY KEY,
			user_id TEXT NOT NULL,
			query TEXT NOT NULL,
			domain TEXT NOT NULL,
			answer TEXT NOT NULL,
			model TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`, s.tableName)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("initTables: %w", err)
	}

	indexQuery := fmt.Sprintf(`
		CREATE INDEX IF NOT EXISTS idx_%s_user ON %s(user_id, created_at)
	`, s.tableName, s.tableName)
	if _, err := s.db.ExecContext(ctx, indexQuery); err != nil {
		return fmt.Errorf("initTables: %w", err)
	}

	return nil
}

// Save persists one record.
func (s *Store) Save(ctx context.Context, rec *Record) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, query, domain, answer, model, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, s.tableName)

	_, err := s.db.ExecContext(ctx, query,
		rec.ID, rec.UserID, rec.Query, rec.Domain.String(), rec.Answer, rec.Model, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	return nil
}

// RecentByUser returns the most recent records for a user, newest first.
func (s *Store) RecentByUser(ctx context.Context, userID string, limit int) ([]*Record, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, query, domain, answer, model, created_at
		FROM %s
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, s.tableName)

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("RecentByUser: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("RecentByUser: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("RecentByUser: %w", err)
	}
	return records, nil
}

// CountByDomain returns the number of stored records per domain tag.
func (s *Store) CountByDomain(ctx context.Context) (map[domain.Domain]int, error) {
	query := fmt.Sprintf(`SELECT domain, COUNT(*) FROM %s GROUP BY domain`, s.tableName)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("CountByDomain: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.Domain]int)
	for rows.Next() {
		var tag string
		var n int
		if err := rows.Scan(&tag, &n); err != nil {
			return nil, fmt.Errorf("CountByDomain: %w", err)
		}
		d, _ := domain.Parse(tag)
		counts[d] += n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("CountByDomain: %w", err)
	}
	return counts, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// scanRecord scans the current row into a Record.
func scanRecord(rows *sql.Rows) (*Record, error) {
	var rec Record
	var tag string
	var model sql.NullString
	if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Query, &tag, &rec.Answer, &model, &rec.CreatedAt); err != nil {
		return nil, err
	}
	rec.Domain, _ = domain.Parse(tag)
	rec.Model = model.String
	return &rec, nil
}
