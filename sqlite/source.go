package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/docwatch"
)

// Compile-time interface verification.
var _ docwatch.SourceService = (*SourceService)(nil)

// SourceService implements docwatch.SourceService using SQLite.
// Registration order is the order sources are fetched and snapshotted in.
type SourceService struct {
	db *DB
}

// NewSourceService creates a new SourceService.
func NewSourceService(db *DB) *SourceService {
	return &SourceService{db: db}
}

// CreateSource registers a new source.
func (s *SourceService) CreateSource(ctx context.Context, src *docwatch.Source) error {
	if err := src.Validate(); err != nil {
		return err
	}

	src.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sources (id, kind, url, created_at)
		VALUES (?, ?, ?, ?)
	`, src.ID, string(src.Kind), src.URL, src.CreatedAt.Format(time.RFC3339))

	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return docwatch.Errorf(docwatch.EINVALID, "source %q already exists", src.ID)
	}
	return err
}

// FindSourceByID retrieves a source by ID.
func (s *SourceService) FindSourceByID(ctx context.Context, id string) (*docwatch.Source, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, kind, url, created_at
		FROM sources
		WHERE id = ?
	`, id)

	src, err := scanSource(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, docwatch.Errorf(docwatch.ENOTFOUND, "source %q not found", id)
	}
	return src, err
}

// FindSources retrieves all registered sources in registration order.
func (s *SourceService) FindSources(ctx context.Context) ([]*docwatch.Source, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, url, created_at
		FROM sources
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []*docwatch.Source
	for rows.Next() {
		src, err := scanSource(rows.Scan)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, rows.Err()
}

// DeleteSource permanently removes a source.
func (s *SourceService) DeleteSource(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sources WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return docwatch.Errorf(docwatch.ENOTFOUND, "source %q not found", id)
	}
	return nil
}

func scanSource(scan func(dest ...any) error) (*docwatch.Source, error) {
	var src docwatch.Source
	var kind, createdAt string

	if err := scan(&src.ID, &kind, &src.URL, &createdAt); err != nil {
		return nil, err
	}

	src.Kind = docwatch.Kind(kind)

	var err error
	src.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &src, nil
}
