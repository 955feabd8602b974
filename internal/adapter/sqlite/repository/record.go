package repository

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose"

	"github.com/obruchev/user_intake_service/internal/core/domain"
	"github.com/obruchev/user_intake_service/internal/core/ports"
)

var _ ports.RecordStore = (*SQLiteRecordStore)(nil)

// SQLiteRecordStore owns the single local database file holding the users
// table. It is append-only: rows are inserted and listed, never updated or
// deleted. Passwords are stored in plaintext for parity with the captured
// form values; this is a known security gap, not an oversight.
type SQLiteRecordStore struct {
	db     *sql.DB
	closed bool
}

// Open creates or opens the database file at path and applies the goose
// migrations from migrationsDir. Reopening an existing file is safe: the
// schema is created only once and existing rows are preserved.
func Open(path string, migrationsDir string) (*SQLiteRecordStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	// SQLite allows one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	return &SQLiteRecordStore{db: db}, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// Insert appends one record and returns the id assigned by the
// AUTOINCREMENT key. The input record must not carry an id.
func (s *SQLiteRecordStore) Insert(ctx context.Context, record *domain.Record) (int64, error) {
	if s.closed {
		return 0, domain.ErrStorageClosed
	}
	if record.Persisted() {
		return 0, fmt.Errorf("record already has id %d", record.ID)
	}

	query := `INSERT INTO users (name, email, birthDate, address, password)
	VALUES (?, ?, ?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query,
		record.Name, record.Email, record.BirthDate, record.Address, record.Password)
	if err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}

	record.ID = id
	return id, nil
}

// FetchAll returns a snapshot of every stored record. No ORDER BY is
// applied; the rowid scan order of an append-only table is insertion order.
func (s *SQLiteRecordStore) FetchAll(ctx context.Context) ([]domain.Record, error) {
	if s.closed {
		return nil, domain.ErrStorageClosed
	}

	query := `SELECT id, name, email, birthDate, address, password FROM users`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch records: %w", err)
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		var r domain.Record
		if err := rows.Scan(&r.ID, &r.Name, &r.Email, &r.BirthDate, &r.Address, &r.Password); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch records: %w", err)
	}

	return records, nil
}

// Close releases the connection. Insert and FetchAll fail with
// domain.ErrStorageClosed afterwards.
func (s *SQLiteRecordStore) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
