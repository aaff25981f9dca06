package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/khangai-labs/khuvaari-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/khangai-labs/khuvaari-cli/internal/core/domain"
	"github.com/khangai-labs/khuvaari-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.SnapshotStore = (*Store)(nil)

// Store is a SQLite-backed snapshot store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (and migrates) the database at dbPath, creating the
// parent directory as needed. An empty path defaults to
// ~/.khuvaari/data/timetable.db.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".khuvaari", "data", "timetable.db")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	// WAL keeps concurrent readers cheap while an export runs.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SaveTimetable stores one normalised document wholesale, replacing
// any previous snapshot of the same kind. Only non-empty entries are
// written; the grids are reconstructed from the document axes.
func (s *Store) SaveTimetable(ctx context.Context, t *domain.Timetable) error {
	if t == nil {
		return domain.ErrInvalidInput
	}

	days, err := json.Marshal(t.Days)
	if err != nil {
		return fmt.Errorf("encoding days: %w", err)
	}
	periods, err := json.Marshal(t.Periods)
	if err != nil {
		return fmt.Errorf("encoding periods: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	// Replace semantics: cascade clears sections and entries.
	if _, err := tx.ExecContext(ctx, "DELETE FROM documents WHERE kind = ?", string(t.Kind)); err != nil {
		return fmt.Errorf("clearing previous snapshot: %w", err)
	}

	docID := uuid.New().String()
	_, err = tx.ExecContext(ctx,
		"INSERT INTO documents (id, kind, days, periods, loaded_at) VALUES (?, ?, ?, ?, ?)",
		docID, string(t.Kind), string(days), string(periods), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("inserting document: %w", err)
	}

	for _, name := range t.SectionNames {
		sectionID := uuid.New().String()
		var school any
		if t.Kind == domain.KindClasses {
			school = domain.SchoolPrefix(name)
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO sections (id, document_id, name, school) VALUES (?, ?, ?, ?)",
			sectionID, docID, name, school)
		if err != nil {
			return fmt.Errorf("inserting section %q: %w", name, err)
		}

		if err := insertEntries(ctx, tx, sectionID, domain.WeekOdd, t, t.Odd[name]); err != nil {
			return err
		}
		if err := insertEntries(ctx, tx, sectionID, domain.WeekEven, t, t.Even[name]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

func insertEntries(ctx context.Context, tx *sql.Tx, sectionID string, week domain.Week, t *domain.Timetable, matrix [][]domain.Entry) error {
	for r, row := range matrix {
		for c, entry := range row {
			if entry.IsEmpty() || r >= len(t.Periods) || c >= len(t.Days) {
				continue
			}
			extra, err := json.Marshal(entry.Extra)
			if err != nil {
				return fmt.Errorf("encoding extra lines: %w", err)
			}
			_, err = tx.ExecContext(ctx,
				`INSERT INTO entries (id, section_id, week, day, period, subject, secondary, tertiary, extra)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				uuid.New().String(), sectionID, string(week),
				t.Days[c], t.Periods[r],
				entry.Subject, entry.Secondary, entry.Tertiary, string(extra))
			if err != nil {
				return fmt.Errorf("inserting entry: %w", err)
			}
		}
	}
	return nil
}

// SectionNames lists the stored section names of one document kind,
// sorted.
func (s *Store) SectionNames(ctx context.Context, kind domain.DocumentKind) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT sections.name FROM sections
		 JOIN documents ON documents.id = sections.document_id
		 WHERE documents.kind = ?`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("querying sections: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning section name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sections: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// EntryCount returns the number of stored entries for one section and
// week. Used by the export command's summary output.
func (s *Store) EntryCount(ctx context.Context, section string, week domain.Week) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM entries
		 JOIN sections ON sections.id = entries.section_id
		 WHERE sections.name = ? AND entries.week = ?`,
		section, string(week)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return count, nil
}

// migrate applies any pending .up.sql migration files in order.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}
		if version <= currentVersion {
			continue
		}

		script, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(script)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
