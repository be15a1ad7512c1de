package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// Tier is a named TTL and capacity pair.
type Tier struct {
	Name string
	TTL  time.Duration
	Size int
}

var (
	// Short suits fast-moving chain state such as the latest block height.
	Short = Tier{Name: "short", TTL: 2 * time.Second, Size: 1000}
	// Medium suits data that changes every few blocks such as token lists.
	Medium = Tier{Name: "medium", TTL: 15 * time.Second, Size: 5000}
	// Long suits data that is effectively immutable once observed.
	Long = Tier{Name: "long", TTL: time.Hour, Size: 10000}
)

// TTL is a bounded cache whose entries expire a fixed time after they were
// stored. Nothing invalidates an entry early.
type TTL[K comparable, V any] struct {
	tier  Tier
	lru   *expirable.LRU[K, V]
	group singleflight.Group
}

func New[K comparable, V any](tier Tier) *TTL[K, V] {
	return &TTL[K, V]{
		tier: tier,
		lru:  expirable.NewLRU[K, V](tier.Size, nil, tier.TTL),
	}
}

func (c *TTL[K, V]) Get(key K) (V, bool) {
	return c.lru.Get(key)
}

func (c *TTL[K, V]) Set(key K, value V) {
	c.lru.Add(key, value)
}

func (c *TTL[K, V]) Len() int {
	return c.lru.Len()
}

func (c *TTL[K, V]) Purge() {
	c.lru.Purge()
}

func (c *TTL[K, V]) Tier() Tier {
	return c.tier
}

// GetOrLoad returns the cached value for key, calling load on a miss.
// Concurrent misses for the same key share one load, which is detached from
// the cancellation of whichever caller started it. Failed loads are not
// stored.
func (c *TTL[K, V]) GetOrLoad(ctx context.Context, key K, load func(ctx context.Context) (V, error)) (V, error) {
	if value, ok := c.lru.Get(key); ok {
		return value, nil
	}

	ch := c.group.DoChan(fmt.Sprint(key), func() (any, error) {
		if value, ok := c.lru.Get(key); ok {
			return value, nil
		}
		value, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return value, err
		}
		c.lru.Add(key, value)
		return value, nil
	})

	var zero V
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(V), nil
	}
}
