package storage

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidName = errors.New("storage: invalid object name")

// AudioStore persists generated audio and returns a URL the client can fetch.
type AudioStore interface {
	Save(ctx context.Context, name string, data []byte, contentType string) (string, error)
}

// Cleaner removes generated objects older than the cutoff and reports how many
// were removed.
type Cleaner interface {
	Cleanup(ctx context.Context, olderThan time.Duration) (int, error)
}
