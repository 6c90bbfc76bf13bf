package repository

import "context"

// ICache defines a byte-oriented key-value store with a fixed expiry window.
// Get fails soft: unknown, expired or unreachable entries are reported as absent.
type ICache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}
