package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/clipmd"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ clipmd.ClipService = (*ClipService)(nil)

// ClipService implements clipmd.ClipService using SQLite.
type ClipService struct {
	db *DB
}

// NewClipService creates a new ClipService.
func NewClipService(db *DB) *ClipService {
	return &ClipService{db: db}
}

// CreateClip records a new clip. When the newest clip of the same source
// has the same content hash, no row is inserted and clip is filled from it.
func (s *ClipService) CreateClip(ctx context.Context, clip *clipmd.Clip) error {
	if err := clip.Validate(); err != nil {
		return err
	}

	hash := hashContent(clip.Content)

	latest, err := scanClip(s.db.QueryRowContext(ctx, `
		SELECT id, source, title, content, content_hash, created_at
		FROM clips
		WHERE source = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`, clip.Source))
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	if latest != nil && latest.ContentHash == hash {
		*clip = *latest
		return nil
	}

	clip.ID = uuid.New().String()
	clip.CreatedAt = time.Now().UTC()
	clip.ContentHash = hash

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO clips (id, source, title, content, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, clip.ID, clip.Source, clip.Title, clip.Content, clip.ContentHash, formatTime(clip.CreatedAt))

	return err
}

// FindClipByID retrieves a clip by ID.
func (s *ClipService) FindClipByID(ctx context.Context, id string) (*clipmd.Clip, error) {
	clip, err := scanClip(s.db.QueryRowContext(ctx, `
		SELECT id, source, title, content, content_hash, created_at
		FROM clips
		WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, clipmd.Errorf(clipmd.ENOTFOUND, "clip not found")
	}
	if err != nil {
		return nil, err
	}
	return clip, nil
}

// FindClips retrieves clips matching the filter, newest first.
func (s *ClipService) FindClips(ctx context.Context, filter clipmd.ClipFilter) ([]*clipmd.Clip, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source, title, content, content_hash, created_at FROM clips WHERE 1=1")

	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clips []*clipmd.Clip
	for rows.Next() {
		clip, err := scanClip(rows)
		if err != nil {
			return nil, err
		}
		clips = append(clips, clip)
	}

	return clips, rows.Err()
}

// DeleteClip permanently removes a clip.
func (s *ClipService) DeleteClip(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM clips WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return clipmd.Errorf(clipmd.ENOTFOUND, "clip not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanClip(row scanner) (*clipmd.Clip, error) {
	var clip clipmd.Clip
	var createdAt string

	if err := row.Scan(&clip.ID, &clip.Source, &clip.Title, &clip.Content, &clip.ContentHash, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if clip.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &clip, nil
}
