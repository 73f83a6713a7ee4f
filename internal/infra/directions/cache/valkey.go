// Package cache memoizes directions results in valkey.
package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/valkey-io/valkey-go"
)

// ErrMiss is returned by a Store when the key is absent
var ErrMiss = errors.New("cache miss")

// Store is a byte-oriented key/value store with expiry
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close()
}

// valkeyStore implements Store on a valkey (Redis compatible) server
type valkeyStore struct {
	client valkey.Client
}

// NewValkeyStore connects to the valkey server at addr
func NewValkeyStore(addr string) (Store, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{addr},
	})
	if err != nil {
		return nil, errors.Wrap(err, "valkey connect")
	}

	return &valkeyStore{client: client}, nil
}

func (s *valkeyStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Do(ctx, s.client.B().Get().Key(key).Build()).AsBytes()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, ErrMiss
		}

		return nil, errors.WithStack(err)
	}

	return b, nil
}

func (s *valkeyStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	cmd := s.client.B().Set().Key(key).Value(string(value)).Ex(ttl).Build()

	return errors.WithStack(s.client.Do(ctx, cmd).Error())
}

func (s *valkeyStore) Close() {
	s.client.Close()
}
