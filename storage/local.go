package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage writes files to a directory served as static content.
type LocalStorage struct {
	dir          string
	publicPrefix string
}

func NewLocalStorage(dir, publicPrefix string) *LocalStorage {
	return &LocalStorage{dir: dir, publicPrefix: publicPrefix}
}

func (s *LocalStorage) Save(ctx context.Context, name string, file io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	out, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return "", err
	}

	return s.publicPrefix + "/" + name, nil
}
