package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	// Registers the "sqlite" driver (pure Go).
	_ "modernc.org/sqlite"

	"github.com/Ricardo071106/Zelar-IA-sub000/internal/domain"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteRepo implements Repo using an embedded SQLite database.
type SQLiteRepo struct{ db *sql.DB }

// OpenSQLite opens (or creates) the SQLite database at the given path,
// applies PRAGMAs, runs migrations, and returns a repository.
func OpenSQLite(ctx context.Context, path string) (*SQLiteRepo, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Single-writer engine; one connection avoids SQLITE_BUSY churn.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := applyPragmas(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return &SQLiteRepo{db: db}, nil
}

func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA foreign_keys=ON;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// runMigrations executes the embedded SQL files in name order, each in
// its own transaction.
func runMigrations(ctx context.Context, db *sql.DB) error {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		sqlBytes, err := fs.ReadFile(migrationsFS, "migrations/"+e.Name())
		if err != nil {
			return err
		}
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("%s: %w", e.Name(), err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying database resources.
func (r *SQLiteRepo) Close() error { return r.db.Close() }

// CreateEvent inserts a new event and fills in its generated ID.
func (r *SQLiteRepo) CreateEvent(ctx context.Context, e *domain.Event) error {
	if e == nil {
		return errors.New("nil event")
	}
	created := e.CreatedAt.UTC().Unix()
	if e.CreatedAt.IsZero() {
		created = time.Now().UTC().Unix()
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO events (user_id, chat_id, title, starts_at, tz, reminded_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.UserID, e.ChatID, e.Title, e.StartsAt.UTC().Unix(), e.TZ,
		toNullInt64(e.RemindedAt), created,
	)
	if err != nil {
		return err
	}
	e.ID, err = res.LastInsertId()
	return err
}

const eventColumns = `id, user_id, chat_id, title, starts_at, tz, reminded_at, created_at`

// ListUpcoming returns up to `limit` future events for a user, soonest
// first.
func (r *SQLiteRepo) ListUpcoming(ctx context.Context, userID string, now time.Time, limit int) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE user_id = ? AND starts_at > ?
		ORDER BY starts_at ASC
		LIMIT ?`,
		userID, now.UTC().Unix(), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

// ListReminderDue returns up to `limit` events whose reminder window has
// opened: not yet reminded, starting within `lead`, not yet started.
func (r *SQLiteRepo) ListReminderDue(ctx context.Context, now time.Time, lead time.Duration, limit int) ([]domain.Event, error) {
	from := now.UTC().Unix()
	to := now.Add(lead).UTC().Unix()
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE reminded_at IS NULL
		  AND starts_at > ?
		  AND starts_at <= ?
		ORDER BY starts_at ASC
		LIMIT ?`,
		from, to, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

// MarkReminded records that the reminder for an event went out.
func (r *SQLiteRepo) MarkReminded(ctx context.Context, id int64, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE events SET reminded_at = ? WHERE id = ?`,
		at.UTC().Unix(), id,
	)
	return err
}

// Timezone returns a user's stored zone preference, if any.
func (r *SQLiteRepo) Timezone(ctx context.Context, userID string) (string, bool) {
	var zone string
	err := r.db.QueryRowContext(ctx, `
		SELECT tz FROM user_prefs WHERE user_id = ?`, userID,
	).Scan(&zone)
	if err != nil {
		return "", false
	}
	return zone, true
}

// SetTimezone stores a user's zone preference. Validation is the
// tz.Resolver's job; the repo persists what it is given.
func (r *SQLiteRepo) SetTimezone(ctx context.Context, userID, zone string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_prefs (user_id, tz, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			tz         = excluded.tz,
			updated_at = excluded.updated_at`,
		userID, zone, time.Now().UTC().Unix(),
	)
	return err
}

func scanEvents(rows *sql.Rows) ([]domain.Event, error) {
	var res []domain.Event
	for rows.Next() {
		var (
			e         domain.Event
			startsAt  int64
			createdAt int64
			remindNS  sql.NullInt64
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.ChatID, &e.Title,
			&startsAt, &e.TZ, &remindNS, &createdAt); err != nil {
			return nil, err
		}
		e.StartsAt = time.Unix(startsAt, 0).UTC()
		e.RemindedAt = fromNullInt64(remindNS)
		e.CreatedAt = time.Unix(createdAt, 0).UTC()
		res = append(res, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
