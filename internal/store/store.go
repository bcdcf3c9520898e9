package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/prepwise/backend/ent"
	"github.com/prepwise/backend/ent/attempt"
	"github.com/prepwise/backend/ent/constructstate"
	"github.com/prepwise/backend/ent/plancycle"
	"github.com/prepwise/backend/ent/plantask"
	"github.com/prepwise/backend/ent/skillstate"
	"github.com/prepwise/backend/ent/userprofile"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db, client: client}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Repos returns repositories bound to the store's own client, outside any
// transaction.
func (s *Store) Repos() *Repos {
	return newRepos(s.client)
}

// WithTx runs fn inside one transaction. Every repository access through
// the passed Repos shares that transaction, so a submission's attempt
// insert and state upserts commit or roll back as a unit.
func (s *Store) WithTx(ctx context.Context, fn func(r *Repos) error) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()

	if err := fn(newRepos(tx.Client())); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rollback failed: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// DeleteUserData removes every row belonging to userID across all tables,
// in one transaction. Returns the number of rows deleted.
func (s *Store) DeleteUserData(ctx context.Context, userID string) (int, error) {
	entTx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}

	var total int
	err = func() error {
		tx := entTx.Client()

		n, err := tx.PlanTask.Delete().Where(plantask.UserIDEQ(userID)).Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete plan tasks: %w", err)
		}
		total += n

		n, err = tx.PlanCycle.Delete().Where(plancycle.UserIDEQ(userID)).Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete plan cycles: %w", err)
		}
		total += n

		n, err = tx.Attempt.Delete().Where(attempt.UserIDEQ(userID)).Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete attempts: %w", err)
		}
		total += n

		n, err = tx.SkillState.Delete().Where(skillstate.UserIDEQ(userID)).Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete skill states: %w", err)
		}
		total += n

		n, err = tx.ConstructState.Delete().Where(constructstate.UserIDEQ(userID)).Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete construct states: %w", err)
		}
		total += n

		n, err = tx.UserProfile.Delete().Where(userprofile.UserIDEQ(userID)).Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete profile: %w", err)
		}
		total += n
		return nil
	}()
	if err != nil {
		if rerr := entTx.Rollback(); rerr != nil {
			return 0, fmt.Errorf("%w: rollback failed: %v", err, rerr)
		}
		return 0, err
	}
	if err := entTx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	return total, nil
}

// applyPragmas configures SQLite. WAL plus a busy timeout lets the single
// writer at a time proceed without spurious SQLITE_BUSY failures.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. PREPWISE_DB environment variable
// 2. $XDG_DATA_HOME/prepwise/prepwise.db
// 3. ~/.local/share/prepwise/prepwise.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("PREPWISE_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "prepwise", "prepwise.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
