package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"walletview/internal/cache"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TTL", func() {
	var (
		ttl   *cache.TTL[string, uint64]
		ctx   context.Context
		loads atomic.Int32
	)

	BeforeEach(func() {
		ttl = cache.New[string, uint64](cache.Tier{Name: "test", TTL: 50 * time.Millisecond, Size: 10})
		ctx = context.Background()
		loads.Store(0)
	})

	load := func(value uint64) func(context.Context) (uint64, error) {
		return func(context.Context) (uint64, error) {
			loads.Add(1)
			return value, nil
		}
	}

	Describe("GetOrLoad", func() {
		It("should load once and serve later reads from the cache", func() {
			first, err := ttl.GetOrLoad(ctx, "height", load(10))
			Expect(err).NotTo(HaveOccurred())
			second, err := ttl.GetOrLoad(ctx, "height", load(11))
			Expect(err).NotTo(HaveOccurred())

			Expect(first).To(Equal(uint64(10)))
			Expect(second).To(Equal(uint64(10)))
			Expect(loads.Load()).To(Equal(int32(1)))
		})

		It("should reload after the entry expires", func() {
			_, err := ttl.GetOrLoad(ctx, "height", load(10))
			Expect(err).NotTo(HaveOccurred())

			Eventually(func() bool {
				_, ok := ttl.Get("height")
				return ok
			}).WithTimeout(time.Second).WithPolling(10 * time.Millisecond).Should(BeFalse())

			value, err := ttl.GetOrLoad(ctx, "height", load(12))
			Expect(err).NotTo(HaveOccurred())
			Expect(value).To(Equal(uint64(12)))
			Expect(loads.Load()).To(Equal(int32(2)))
		})

		It("should not cache failures", func() {
			loadErr := errors.New("node down")
			_, err := ttl.GetOrLoad(ctx, "height", func(context.Context) (uint64, error) {
				return 0, loadErr
			})
			Expect(err).To(MatchError(loadErr))
			Expect(ttl.Len()).To(BeZero())

			value, err := ttl.GetOrLoad(ctx, "height", load(7))
			Expect(err).NotTo(HaveOccurred())
			Expect(value).To(Equal(uint64(7)))
		})

		It("should share one load between concurrent callers", func() {
			release := make(chan struct{})
			slow := func(context.Context) (uint64, error) {
				loads.Add(1)
				<-release
				return 99, nil
			}

			var wg sync.WaitGroup
			results := make([]uint64, 5)
			for i := range results {
				wg.Add(1)
				go func(i int) {
					defer GinkgoRecover()
					defer wg.Done()
					v, err := ttl.GetOrLoad(ctx, "height", slow)
					Expect(err).NotTo(HaveOccurred())
					results[i] = v
				}(i)
			}

			Eventually(loads.Load).Should(Equal(int32(1)))
			close(release)
			wg.Wait()

			Expect(results).To(HaveEach(uint64(99)))
			Expect(loads.Load()).To(Equal(int32(1)))
		})

		It("should honour caller cancellation", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			block := make(chan struct{})
			defer close(block)

			_, err := ttl.GetOrLoad(cctx, "height", func(context.Context) (uint64, error) {
				<-block
				return 1, nil
			})
			Expect(err).To(MatchError(context.Canceled))
		})
	})

	Describe("tiers", func() {
		It("should match the configured lifetimes", func() {
			Expect(cache.Short.TTL).To(Equal(2 * time.Second))
			Expect(cache.Short.Size).To(Equal(1000))
			Expect(cache.Medium.TTL).To(Equal(15 * time.Second))
			Expect(cache.Medium.Size).To(Equal(5000))
			Expect(cache.Long.TTL).To(Equal(time.Hour))
			Expect(cache.Long.Size).To(Equal(10000))
		})
	})
})
