package ledger_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"walletview/internal/ledger"
	"walletview/internal/ledger/fake"
	"walletview/internal/retry"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func respond(code int, body string) *http.Response {
	return &http.Response{
		StatusCode: code,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func counterValue(reg *prometheus.Registry, name string, labels map[string]string) float64 {
	families, err := reg.Gather()
	Expect(err).NotTo(HaveOccurred())

	var total float64
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
	metrics:
		for _, metric := range family.GetMetric() {
			for _, pair := range metric.GetLabel() {
				if want, ok := labels[pair.GetName()]; ok && want != pair.GetValue() {
					continue metrics
				}
			}
			total += metric.GetCounter().GetValue()
		}
	}
	return total
}

var _ = Describe("Gateway", func() {
	var (
		doer      *fake.HTTPDoer
		gateway   *ledger.Gateway
		registry  *prometheus.Registry
		ctx       context.Context
		transport error
	)

	BeforeEach(func() {
		doer = new(fake.HTTPDoer)
		registry = prometheus.NewRegistry()
		ctx = context.Background()
		transport = &url.Error{Op: "Post", URL: "http://node.local", Err: syscall.ECONNREFUSED}

		client, err := ledger.NewClient("http://node.local", "", doer)
		Expect(err).NotTo(HaveOccurred())

		policy := retry.Policy{
			MaxAttempts: 3,
			Delay:       time.Millisecond,
			Retryable:   retry.Transient,
			Logger:      zap.NewNop().Sugar(),
		}
		gateway = ledger.NewGateway(zap.NewNop().Sugar(), client, policy, ledger.NewMetrics(registry))
	})

	Describe("page reads", func() {
		When("the node is briefly unreachable", func() {
			BeforeEach(func() {
				doer.DoReturnsOnCall(0, nil, transport)
				doer.DoReturnsOnCall(1, nil, transport)
				doer.DoReturnsOnCall(2, respond(http.StatusOK, `{"list": [], "totalElements": 3}`), nil)
			})

			It("should retry until the third attempt succeeds", func() {
				page, err := gateway.MemTransfers(ctx, ledger.PageRequest{PageSize: 10})
				Expect(err).NotTo(HaveOccurred())
				Expect(page.Total()).To(Equal(int64(3)))
				Expect(doer.DoCallCount()).To(Equal(3))
				Expect(counterValue(registry, "walletview_node_retries_total", map[string]string{"endpoint": "mem_transfers"})).To(Equal(2.0))
				Expect(counterValue(registry, "walletview_node_calls_total", map[string]string{"outcome": "ok"})).To(Equal(1.0))
			})
		})

		When("the node stays unreachable", func() {
			BeforeEach(func() {
				doer.DoReturns(nil, transport)
			})

			It("should give up after three attempts", func() {
				_, err := gateway.Transfers(ctx, ledger.PageRequest{PageSize: 10})
				Expect(err).To(MatchError(retry.ErrExhausted))
				Expect(errors.Is(err, syscall.ECONNREFUSED)).To(BeTrue())
				Expect(doer.DoCallCount()).To(Equal(3))
				Expect(counterValue(registry, "walletview_node_calls_total", map[string]string{"endpoint": "transfers", "outcome": "error"})).To(Equal(1.0))
			})
		})

		When("the node answers with an error status", func() {
			BeforeEach(func() {
				doer.DoStub = func(*http.Request) (*http.Response, error) {
					return respond(http.StatusInternalServerError, "boom"), nil
				}
			})

			It("should not retry", func() {
				_, err := gateway.AccountBalances(ctx, ledger.PageRequest{PageSize: 100})
				var statusErr *ledger.StatusError
				Expect(errors.As(err, &statusErr)).To(BeTrue())
				Expect(statusErr.Code).To(Equal(http.StatusInternalServerError))
				Expect(doer.DoCallCount()).To(Equal(1))
			})
		})

		When("the body is cut short", func() {
			BeforeEach(func() {
				doer.DoReturnsOnCall(0, &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(io.MultiReader(strings.NewReader(`{"list": [`), errReader{io.ErrUnexpectedEOF})),
				}, nil)
				doer.DoReturnsOnCall(1, respond(http.StatusOK, `{"list": [], "totalElements": 0}`), nil)
			})

			It("should treat it as a transport failure", func() {
				_, err := gateway.AccountBalances(ctx, ledger.PageRequest{PageSize: 100})
				Expect(err).NotTo(HaveOccurred())
				Expect(doer.DoCallCount()).To(Equal(2))
			})
		})

		It("should never cache pages", func() {
			doer.DoStub = func(*http.Request) (*http.Response, error) {
				return respond(http.StatusOK, `{"list": [], "totalElements": 1}`), nil
			}
			for range 3 {
				_, err := gateway.MemTransfers(ctx, ledger.PageRequest{PageSize: 10})
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(doer.DoCallCount()).To(Equal(3))
		})
	})

	Describe("LatestBlockHeight", func() {
		BeforeEach(func() {
			doer.DoStub = func(*http.Request) (*http.Response, error) {
				return respond(http.StatusOK, "500"), nil
			}
		})

		It("should be served from the short lived cache", func() {
			first, err := gateway.LatestBlockHeight(ctx)
			Expect(err).NotTo(HaveOccurred())
			second, err := gateway.LatestBlockHeight(ctx)
			Expect(err).NotTo(HaveOccurred())

			Expect(first).To(Equal(uint64(500)))
			Expect(second).To(Equal(uint64(500)))
			Expect(doer.DoCallCount()).To(Equal(1))
		})
	})

	Describe("Token", func() {
		BeforeEach(func() {
			doer.DoStub = func(*http.Request) (*http.Response, error) {
				return respond(http.StatusOK, `{"address": "0x00000000000000000000000000000000000000bb", "name": "Gold"}`), nil
			}
		})

		It("should cache by lower-cased address", func() {
			_, err := gateway.Token(ctx, "0x00000000000000000000000000000000000000BB")
			Expect(err).NotTo(HaveOccurred())
			token, err := gateway.Token(ctx, "0x00000000000000000000000000000000000000bb")
			Expect(err).NotTo(HaveOccurred())

			Expect(token.Name).To(Equal("Gold"))
			Expect(doer.DoCallCount()).To(Equal(1))
			Expect(doer.DoArgsForCall(0).URL.Path).To(Equal("/api/v1/token/0x00000000000000000000000000000000000000bb"))
		})
	})

	Describe("AccountSummary", func() {
		It("should not be cached", func() {
			doer.DoStub = func(*http.Request) (*http.Response, error) {
				return respond(http.StatusOK, `{"nextNonce": 3}`), nil
			}
			_, err := gateway.AccountSummary(ctx, "0xaa")
			Expect(err).NotTo(HaveOccurred())
			_, err = gateway.AccountSummary(ctx, "0xaa")
			Expect(err).NotTo(HaveOccurred())
			Expect(doer.DoCallCount()).To(Equal(2))
		})
	})

	Describe("SubmitTransaction", func() {
		When("the connection fails", func() {
			BeforeEach(func() {
				doer.DoReturns(nil, transport)
			})

			It("should not retry", func() {
				_, err := gateway.SubmitTransaction(ctx, ledger.SubmitRequest{RawTxDataInHex: "0x01"})
				Expect(err).To(HaveOccurred())
				Expect(errors.Is(err, retry.ErrExhausted)).To(BeFalse())
				Expect(doer.DoCallCount()).To(Equal(1))
				Expect(counterValue(registry, "walletview_node_retries_total", nil)).To(BeZero())
			})
		})

		When("the node accepts it", func() {
			BeforeEach(func() {
				doer.DoReturns(respond(http.StatusOK, `{"result": "QUEUED", "txHash": "0x02"}`), nil)
			})

			It("should return the node's verdict", func() {
				resp, err := gateway.SubmitTransaction(ctx, ledger.SubmitRequest{RawTxDataInHex: "0x01"})
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.Result).To(Equal("QUEUED"))
			})
		})
	})
})

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }
