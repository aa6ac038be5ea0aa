// Package mysql provides the MySQL implementation of the history store.
package mysql

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"github.com/agentforgood/sahayak-go/pkg/domain"
	"github.com/agentforgood/sahayak-go/pkg/history"
)

// Store implements history.Store using MySQL as the backend.
type Store struct {
	db        *sql.DB
	tableName string
}

// Config contains configuration for creating a MySQL history store.
type Config struct {
	// Host is the database host.
	Host string

	// Port is the database port.
	Port int

	// User is the database user.
	User string

	// Password is the database password.
	Password string

	// DBName is the database name.
	DBName string

	// TableName is the name of the table to use. Defaults to "query_history".
	TableName string
}

// NewStore creates a new MySQL history store.
//
// Parameters:
//   - cfg: Configuration containing connection settings and table name
//
// Returns:
//   - *Store: The MySQL store instance
//   - error: Error if database connection or table creation fails
func NewStore(cfg *Config) (*Store, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("NewMySQLStore: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("NewMySQLStore: %w", err)
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
			id BIGINT PRIMARY KEY,
			user_id VARCHAR(255) NOT NULL,
			query TEXT NOT NULL,
			domain VARCHAR(64) NOT NULL,
			answer MEDIUMTEXT NOT NULL,
			model VARCHAR(255),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_user (user_id, created_at)
		)
	`, s.tableName)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("initTables: %w", err)
	}

	return nil
}

// Save persists one record.
func (s *Store) Save(ctx context.Context, rec *history.Record) error {
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
func (s *Store) RecentByUser(ctx context.Context, userID string, limit int) ([]*history.Record, error) {
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

	var records []*history.Record
	for rows.Next() {
		var rec history.Record
		var tag string
		var model sql.NullString
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Query, &tag, &rec.Answer, &model, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("RecentByUser: %w", err)
		}
		rec.Domain, _ = domain.Parse(tag)
		rec.Model = model.String
		records = append(records, &rec)
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
