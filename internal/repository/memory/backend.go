package memory

import (
	"context"
	"sync"

	"eventr/internal/domain"
)

type backend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewBackend returns an in-process Backend. Its contents are lost when the
// process exits.
func NewBackend() domain.Backend {
	return &backend{data: make(map[string][]byte)}
}

func (b *backend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (b *backend) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	v := make([]byte, len(data))
	copy(v, data)
	b.mu.Lock()
	b.data[key] = v
	b.mu.Unlock()
	return nil
}
