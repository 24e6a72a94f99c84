package application

import (
	"context"
	"io"

	"github.com/sportsconnect/sportsconnect-api/internal/domain/entity"
	"github.com/sportsconnect/sportsconnect-api/pkg/mailer"
)

// Session is the server-side half of a login, keyed by user id.
type Session struct {
	UserID    string
	SessionID string
	Email     string
}

// SessionStore persists one live session per user.
type SessionStore interface {
	Save(ctx context.Context, s Session) error
	// Get returns nil, nil when the user has no session.
	Get(ctx context.Context, userID string) (*Session, error)
	Delete(ctx context.Context, userID string) error
}

// ObjectStorage holds uploaded files and serves them by public URL.
type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

type Mailer interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// UniversityIndex is the full-text index over the university directory.
type UniversityIndex interface {
	Index(ctx context.Context, u entity.University) error
	Remove(ctx context.Context, id int64) error
	// Search returns matching university ids, best match first.
	Search(ctx context.Context, q string, size int) ([]int64, error)
}

// LinkCache caches the name -> display URL map of universities.
type LinkCache interface {
	// Get reports ok=false on a miss.
	Get(ctx context.Context) (links map[string]string, ok bool, err error)
	Set(ctx context.Context, links map[string]string) error
	Invalidate(ctx context.Context) error
}
