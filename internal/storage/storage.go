// Package storage provides durable key-value persistence for store snapshots.
// Each state container owns one key and writes its full JSON snapshot on every
// mutation, reading it back once at construction to rehydrate.
package storage

import "context"

// Snapshot keys, one per state container.
const (
	ProductKey = "vinc-product-storage"
	CartKey    = "vinc-cart-storage"
	AuthKey    = "vinc-auth-storage"
)

// KV is the persistence strategy injected into the state containers.
// Load returns (nil, false, nil) when the key has never been written.
type KV interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
}
