package sqlite

import (
	"context"
	"database/sql"
	"time"

	"taskflow/internal/errors"
	"taskflow/internal/logging"
	"taskflow/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the durable key-value slot store backing session
// and snapshot persistence. Slots hold opaque serialized blobs keyed
// by a fixed name; the repository never interprets their contents.
type Repository interface {
	// PutSlot writes data under the named slot, replacing any
	// previous contents.
	PutSlot(ctx context.Context, name string, data []byte) error

	// GetSlot reads the named slot. Returns a not-found error when
	// the slot has never been written or has been deleted.
	GetSlot(ctx context.Context, name string) ([]byte, error)

	// DeleteSlot removes the named slot. Deleting an absent slot is
	// a no-op; callers rely on idempotent clears.
	DeleteSlot(ctx context.Context, name string) error

	// Close releases the underlying database handle.
	Close() error
}

// SQLiteRepository implements the Repository interface over a SQLite
// database file.
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance at the given path,
// running any pending migrations. Use ":memory:" for tests.
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	logging.Debugf("opened slot store at %s\n", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// PutSlot writes data under the named slot, replacing any previous
// contents.
func (r *SQLiteRepository) PutSlot(ctx context.Context, name string, data []byte) error {
	query := `
	INSERT INTO slots (name, data, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := r.db.ExecContext(ctx, query, name, data, now); err != nil {
		return errors.NewStorageError("write slot", err)
	}
	return nil
}

// GetSlot reads the named slot's contents.
func (r *SQLiteRepository) GetSlot(ctx context.Context, name string) ([]byte, error) {
	query := `SELECT data FROM slots WHERE name = ?`

	var data []byte
	err := r.db.QueryRowContext(ctx, query, name).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("slot", name)
	}
	if err != nil {
		return nil, errors.NewStorageError("read slot", err)
	}
	return data, nil
}

// DeleteSlot removes the named slot if it exists.
func (r *SQLiteRepository) DeleteSlot(ctx context.Context, name string) error {
	query := `DELETE FROM slots WHERE name = ?`

	if _, err := r.db.ExecContext(ctx, query, name); err != nil {
		return errors.NewStorageError("delete slot", err)
	}
	return nil
}
