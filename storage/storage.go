package storage

import (
	"context"
	"io"
)

// Storage persists uploaded media bytes under a caller-chosen unique name and
// returns the public path or URL the file will be served from.
type Storage interface {
	Save(ctx context.Context, name string, file io.Reader) (string, error)
}
