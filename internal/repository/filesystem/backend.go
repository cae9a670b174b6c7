package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"eventr/internal/domain"
)

var keyRegexp = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

type backend struct {
	dir string
}

// NewBackend returns a Backend that keeps each key in <dir>/<key>.json.
// The directory is created if missing.
func NewBackend(dir string) (domain.Backend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &backend{dir: dir}, nil
}

func (b *backend) path(key string) (string, error) {
	if !keyRegexp.MatchString(key) {
		return "", fmt.Errorf("invalid collection key %q", key)
	}
	return filepath.Join(b.dir, key+".json"), nil
}

func (b *backend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	p, err := b.path(key)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Put writes to a temporary file in the same directory and renames it over
// the target, so readers see either the old or the new collection.
func (b *backend) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := b.path(key)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(b.dir, key+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, p); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
