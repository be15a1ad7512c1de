package retry_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"syscall"
	"time"

	"walletview/internal/retry"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Policy", func() {
	var (
		policy    retry.Policy
		ctx       context.Context
		calls     int
		retried   []int
		transport error
	)

	BeforeEach(func() {
		ctx = context.Background()
		calls = 0
		retried = nil
		transport = &url.Error{Op: "Post", URL: "http://node", Err: syscall.ECONNREFUSED}
		policy = retry.Policy{
			MaxAttempts: 3,
			Delay:       time.Millisecond,
			Retryable:   retry.Transient,
			Logger:      zap.NewNop().Sugar(),
			OnRetry: func(op string, attempt int, err error) {
				retried = append(retried, attempt)
			},
		}
	})

	Describe("Do", func() {
		When("the first attempt succeeds", func() {
			It("should call the operation once", func() {
				err := policy.Do(ctx, "balances", func(context.Context) error {
					calls++
					return nil
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(calls).To(Equal(1))
				Expect(retried).To(BeEmpty())
			})
		})

		When("a transport failure clears on the second attempt", func() {
			It("should retry once and succeed", func() {
				err := policy.Do(ctx, "balances", func(context.Context) error {
					calls++
					if calls == 1 {
						return transport
					}
					return nil
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(calls).To(Equal(2))
				Expect(retried).To(Equal([]int{1}))
			})
		})

		When("every attempt fails with a transport error", func() {
			It("should give up after three attempts", func() {
				err := policy.Do(ctx, "balances", func(context.Context) error {
					calls++
					return transport
				})
				Expect(calls).To(Equal(3))
				Expect(retried).To(Equal([]int{1, 2}))
				Expect(err).To(MatchError(retry.ErrExhausted))
				Expect(errors.Is(err, syscall.ECONNREFUSED)).To(BeTrue())
				Expect(err.Error()).To(ContainSubstring("after 3 attempts"))
			})
		})

		When("the error is not retryable", func() {
			It("should return it immediately", func() {
				statusErr := errors.New("node answered 500")
				err := policy.Do(ctx, "balances", func(context.Context) error {
					calls++
					return statusErr
				})
				Expect(err).To(Equal(statusErr))
				Expect(calls).To(Equal(1))
			})
		})

		When("the request can never be sent", func() {
			It("should not retry a bad scheme", func() {
				badScheme := &url.Error{Op: "Post", URL: "ftp://node", Err: errors.New(`unsupported protocol scheme "ftp"`)}
				err := policy.Do(ctx, "balances", func(context.Context) error {
					calls++
					return badScheme
				})
				Expect(err).To(Equal(badScheme))
				Expect(calls).To(Equal(1))
				Expect(retried).To(BeEmpty())
			})
		})

		When("the context is cancelled", func() {
			It("should stop without another attempt", func() {
				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(ctx)
				err := policy.Do(ctx, "balances", func(context.Context) error {
					calls++
					cancel()
					return transport
				})
				Expect(err).To(HaveOccurred())
				Expect(calls).To(Equal(1))
			})
		})

		When("the context is cancelled during the delay", func() {
			BeforeEach(func() {
				policy.Delay = time.Hour
			})

			It("should return promptly", func() {
				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(ctx)
				policy.OnRetry = func(string, int, error) { cancel() }

				err := policy.Do(ctx, "balances", func(context.Context) error {
					calls++
					return transport
				})
				Expect(err).To(MatchError(context.Canceled))
				Expect(calls).To(Equal(1))
			})
		})

		When("max attempts is zero", func() {
			BeforeEach(func() {
				policy.MaxAttempts = 0
			})

			It("should still try once", func() {
				err := policy.Do(ctx, "balances", func(context.Context) error {
					calls++
					return transport
				})
				Expect(err).To(MatchError(retry.ErrExhausted))
				Expect(calls).To(Equal(1))
			})
		})
	})

	Describe("Value", func() {
		It("should return the value of the successful attempt", func() {
			height, err := retry.Value(ctx, policy, "height", func(context.Context) (uint64, error) {
				calls++
				if calls < 3 {
					return 0, transport
				}
				return 42, nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(height).To(Equal(uint64(42)))
			Expect(calls).To(Equal(3))
		})
	})

	Describe("Default", func() {
		It("should use three attempts with a fixed half second delay", func() {
			p := retry.Default(zap.NewNop().Sugar())
			Expect(p.MaxAttempts).To(Equal(3))
			Expect(p.Delay).To(Equal(500 * time.Millisecond))
		})
	})
})

var _ = Describe("Transient", func() {
	DescribeTable("classifies errors",
		func(err error, expected bool) {
			Expect(retry.Transient(err)).To(Equal(expected))
		},
		Entry("nil", nil, false),
		Entry("plain error", errors.New("bad request"), false),
		Entry("url error around a dial failure", &url.Error{Op: "Get", URL: "http://node", Err: &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}}, true),
		Entry("url error around a timeout", &url.Error{Op: "Get", URL: "http://node", Err: context.DeadlineExceeded}, true),
		Entry("url error around a reset body", &url.Error{Op: "Get", URL: "http://node", Err: io.ErrUnexpectedEOF}, true),
		Entry("url error with a bad scheme", &url.Error{Op: "Get", URL: "ftp://node", Err: errors.New(`unsupported protocol scheme "ftp"`)}, false),
		Entry("url error with a malformed url", &url.Error{Op: "parse", URL: "http://[::1", Err: errors.New("missing ']' in host")}, false),
		Entry("wrapped refused connection", fmt.Errorf("get height: %w", syscall.ECONNREFUSED), true),
		Entry("reset connection", syscall.ECONNRESET, true),
		Entry("truncated body", fmt.Errorf("decode: %w", io.ErrUnexpectedEOF), true),
	)
})
