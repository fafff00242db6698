package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"playtally/internal/classify"
	"playtally/internal/config"
	"playtally/internal/logging"
)

// Store manages snapshot persistence backed by SQLite.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// Open initializes or connects to the snapshot database inside the stats
// directory and applies the schema.
func Open(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	dbPath := cfg.SnapshotDBPath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, logger: logger.With(slog.String(logging.FieldComponent, "snapshot-store"))}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get fetches the snapshot for a playlist path. A missing record returns
// (nil, nil); a malformed record is logged and also reported as absent so a
// corrupt store never aborts the caller.
func (s *Store) Get(ctx context.Context, filePath string) (*Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT file_path, m3u8, mp4, other, updated_at, sample_links FROM snapshots WHERE file_path = ?`,
		filePath,
	)

	var (
		path       string
		m3u8Count  int
		mp4Count   int
		otherCount int
		updatedAt  string
		linksJSON  string
	)
	err := row.Scan(&path, &m3u8Count, &mp4Count, &otherCount, &updatedAt, &linksJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		s.logger.Warn("unreadable snapshot treated as absent", slog.String(logging.FieldFile, filePath), slog.String("error", err.Error()))
		return nil, nil
	}

	timestamp, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		s.logger.Warn("malformed snapshot timestamp treated as absent", slog.String(logging.FieldFile, filePath), slog.String("error", err.Error()))
		return nil, nil
	}

	var links sampleLinks
	if err := json.Unmarshal([]byte(linksJSON), &links); err != nil {
		s.logger.Warn("malformed snapshot samples treated as absent", slog.String(logging.FieldFile, filePath), slog.String("error", err.Error()))
		return nil, nil
	}

	return &Snapshot{
		FilePath: path,
		Counts: classify.Counts{
			classify.CategoryM3U8:  m3u8Count,
			classify.CategoryMP4:   mp4Count,
			classify.CategoryOther: otherCount,
		},
		UpdatedAt: timestamp,
		Samples:   links.toSamples(),
	}, nil
}

// Put persists a snapshot, unconditionally overwriting any prior record for
// the same file path. The write is a single upsert statement, so a crash
// cannot leave a record that parses as valid but holds mixed-run data.
func (s *Store) Put(ctx context.Context, snap *Snapshot) error {
	if snap == nil {
		return errors.New("snapshot is nil")
	}
	if snap.FilePath == "" {
		return errors.New("snapshot file path is empty")
	}

	linksJSON, err := json.Marshal(samplesToLinks(snap.Samples))
	if err != nil {
		return fmt.Errorf("marshal sample links: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (file_path, m3u8, mp4, other, updated_at, sample_links)
         VALUES (?, ?, ?, ?, ?, ?)
         ON CONFLICT(file_path) DO UPDATE SET
             m3u8 = excluded.m3u8,
             mp4 = excluded.mp4,
             other = excluded.other,
             updated_at = excluded.updated_at,
             sample_links = excluded.sample_links`,
		snap.FilePath,
		snap.Counts[classify.CategoryM3U8],
		snap.Counts[classify.CategoryMP4],
		snap.Counts[classify.CategoryOther],
		snap.UpdatedAt.Format(time.RFC3339),
		string(linksJSON),
	)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

// List returns every stored snapshot ordered by file path.
func (s *Store) List(ctx context.Context) ([]*Snapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT file_path FROM snapshots ORDER BY file_path`,
	)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, fmt.Errorf("scan snapshot path: %w", err)
		}
		paths = append(paths, path)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	snapshots := make([]*Snapshot, 0, len(paths))
	for _, path := range paths {
		snap, err := s.Get(ctx, path)
		if err != nil {
			return nil, err
		}
		if snap != nil {
			snapshots = append(snapshots, snap)
		}
	}
	return snapshots, nil
}
