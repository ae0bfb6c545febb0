package transcript

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Entry is one evaluated input and its printed result.
type Entry struct {
	ID        int64
	Session   string
	Input     string
	Output    string
	IsError   bool
	CreatedAt time.Time
}

type dialect struct {
	createTable string
	numbered    bool // $1, $2 ... instead of ?
}

var dialects = map[string]dialect{
	"sqlite3": {
		createTable: `CREATE TABLE IF NOT EXISTS transcript (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session TEXT NOT NULL,
			input TEXT NOT NULL,
			output TEXT NOT NULL,
			is_error BOOLEAN NOT NULL,
			created_at BIGINT NOT NULL)`,
	},
	"mysql": {
		createTable: `CREATE TABLE IF NOT EXISTS transcript (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			session VARCHAR(64) NOT NULL,
			input TEXT NOT NULL,
			output TEXT NOT NULL,
			is_error BOOLEAN NOT NULL,
			created_at BIGINT NOT NULL)`,
	},
	"postgres": {
		createTable: `CREATE TABLE IF NOT EXISTS transcript (
			id BIGSERIAL PRIMARY KEY,
			session TEXT NOT NULL,
			input TEXT NOT NULL,
			output TEXT NOT NULL,
			is_error BOOLEAN NOT NULL,
			created_at BIGINT NOT NULL)`,
		numbered: true,
	},
}

// Store persists REPL transcripts through database/sql.
type Store struct {
	db      *sql.DB
	dialect dialect
}

// Open connects to dsn with the named driver (sqlite3, mysql or postgres)
// and creates the transcript table when it is missing.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported transcript driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection: %w", err)
	}
	if driver == "sqlite3" {
		// every pooled connection to ":memory:" would otherwise see its own database
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, d.createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create transcript table: %w", err)
	}

	slog.Info("transcript store opened", slog.String("driver", driver))
	return &Store{db: db, dialect: d}, nil
}

// Record appends e. A zero CreatedAt is replaced by the current time.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	query := s.rebind(`INSERT INTO transcript (session, input, output, is_error, created_at)
		VALUES (?, ?, ?, ?, ?)`)
	_, err := s.db.ExecContext(ctx, query,
		e.Session, e.Input, e.Output, e.IsError, e.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to record transcript entry: %w", err)
	}
	return nil
}

// Recent returns up to limit of the latest entries, oldest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	query := s.rebind(`SELECT id, session, input, output, is_error, created_at
		FROM transcript ORDER BY id DESC LIMIT ?`)
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transcript: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var created int64
		if err := rows.Scan(&e.ID, &e.Session, &e.Input, &e.Output, &e.IsError, &created); err != nil {
			return nil, fmt.Errorf("failed to scan transcript row: %w", err)
		}
		e.CreatedAt = time.UnixMilli(created)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transcript rows: %w", err)
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// rebind rewrites ? placeholders for drivers that number their parameters.
func (s *Store) rebind(query string) string {
	if !s.dialect.numbered {
		return query
	}

	var out strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			out.WriteByte('$')
			out.WriteString(strconv.Itoa(n))
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}
