package clipmd

import (
	"context"
	"time"
)

// Clip is a recorded clipboard write.
type Clip struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the clip contains invalid fields.
func (c *Clip) Validate() error {
	if c.Source == "" {
		return Errorf(EINVALID, "clip source required")
	}
	if c.Content == "" {
		return Errorf(EINVALID, "clip content required")
	}
	return nil
}

// ClipService represents a service for managing clip history.
type ClipService interface {
	// CreateClip records a new clip.
	CreateClip(ctx context.Context, clip *Clip) error

	// FindClipByID retrieves a clip by ID.
	// Returns ENOTFOUND if the clip does not exist.
	FindClipByID(ctx context.Context, id string) (*Clip, error)

	// FindClips retrieves clips matching the filter, newest first.
	FindClips(ctx context.Context, filter ClipFilter) ([]*Clip, error)

	// DeleteClip permanently removes a clip.
	// Returns ENOTFOUND if the clip does not exist.
	DeleteClip(ctx context.Context, id string) error
}

// ClipFilter represents a filter for FindClips.
type ClipFilter struct {
	Source *string `json:"source"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
