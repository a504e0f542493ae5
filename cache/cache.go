package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type NoopCache struct{}

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (n *NoopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (n *NoopCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Key joins a namespace with free-form parts. The parts are hashed so that
// user supplied values never leak separators or unbounded length into keys.
func Key(namespace string, parts ...string) string {
	if len(parts) == 0 {
		return namespace
	}
	return fmt.Sprintf("%s:%016x", namespace, xxhash.Sum64String(strings.Join(parts, "\x00")))
}
