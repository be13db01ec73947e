package kvstore

import (
	"context"
	"fmt"
	"time"
)

// Marker records that a piece of work has been claimed, so redelivered
// messages are skipped. Keys live under "lager:marker:<namespace>:".
type Marker struct {
	client    *RedisClient
	namespace string
}

func NewMarker(client *RedisClient, namespace string) *Marker {
	return &Marker{client: client, namespace: namespace}
}

func (m *Marker) key(id string) string {
	return fmt.Sprintf("lager:marker:%s:%s", m.namespace, id)
}

// Claim sets the marker for id if it is not set yet. It reports false when
// another caller already holds it.
func (m *Marker) Claim(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	ok, err := m.client.Client().SetNX(ctx, m.key(id), time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim marker %s: %w", id, err)
	}
	return ok, nil
}

// Release drops the marker so the work can be retried.
func (m *Marker) Release(ctx context.Context, id string) error {
	if err := m.client.Client().Del(ctx, m.key(id)).Err(); err != nil {
		return fmt.Errorf("release marker %s: %w", id, err)
	}
	return nil
}
