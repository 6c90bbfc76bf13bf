package cache

import (
	"context"

	"channel-gateway/domain/repository"
)

// TieredCache reads L1 then L2 and writes both.
// An L2 hit is not copied into L1: that would restart the entry's age.
type TieredCache struct {
	l1 repository.ICache
	l2 repository.ICache
}

// NewTieredCache returns l1 unchanged when l2 is nil.
func NewTieredCache(l1, l2 repository.ICache) repository.ICache {
	if l2 == nil {
		return l1
	}
	return &TieredCache{l1: l1, l2: l2}
}

func (t *TieredCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if v, ok := t.l1.Get(ctx, key); ok {
		return v, true
	}
	return t.l2.Get(ctx, key)
}

func (t *TieredCache) Set(ctx context.Context, key string, value []byte) {
	t.l1.Set(ctx, key, value)
	t.l2.Set(ctx, key, value)
}
