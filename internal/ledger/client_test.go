package ledger_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"

	"walletview/internal/ledger"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Client", func() {
	var (
		server   *httptest.Server
		client   *ledger.Client
		ctx      context.Context
		handler  http.HandlerFunc
		received *http.Request
		reqBody  []byte
	)

	BeforeEach(func() {
		ctx = context.Background()
		received = nil
		reqBody = nil
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			received = r
			reqBody, _ = io.ReadAll(r.Body)
			handler(w, r)
		}))
		DeferCleanup(server.Close)

		var err error
		client, err = ledger.NewClient(server.URL+"/", "api-key", server.Client())
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("NewClient", func() {
		It("should reject a relative url", func() {
			_, err := ledger.NewClient("node.local", "", http.DefaultClient)
			Expect(err).To(MatchError(ContainSubstring("must be absolute")))
		})
	})

	Describe("AccountBalances", func() {
		var (
			page *ledger.Page[ledger.AccountBalance]
			err  error
			req  ledger.PageRequest
		)

		BeforeEach(func() {
			req = ledger.PageRequest{
				PageNumber:     2,
				PageSize:       100,
				Addresses:      []string{"0x00000000000000000000000000000000000000aa"},
				TokenAddresses: []string{},
			}
		})

		JustBeforeEach(func() {
			page, err = client.AccountBalances(ctx, req)
		})

		When("the node returns a page", func() {
			BeforeEach(func() {
				handler = func(w http.ResponseWriter, r *http.Request) {
					w.Header().Set("Content-Type", "application/json")
					_, _ = io.WriteString(w, `{
						"list": [{
							"address": "0x00000000000000000000000000000000000000aa",
							"tokenAddress": null,
							"balance": "1000000000000000000000",
							"updatedAtBlockHeight": 77,
							"updatedAtTimestamp": "2024-05-01T10:00:00Z"
						}],
						"totalElements": 1
					}`)
				}
			})

			It("should post the filter and decode the page", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(received.Method).To(Equal(http.MethodPost))
				Expect(received.URL.Path).To(Equal("/api/v1/account-balance/page/bulk"))
				Expect(received.Header.Get("X-API-Key")).To(Equal("api-key"))
				Expect(received.Header.Get("Content-Type")).To(Equal("application/json"))
				Expect(received.Header.Get("User-Agent")).NotTo(BeEmpty())

				var sent map[string]any
				Expect(json.Unmarshal(reqBody, &sent)).To(Succeed())
				Expect(sent).To(HaveKeyWithValue("pageNumber", BeNumerically("==", 2)))
				Expect(sent).To(HaveKeyWithValue("pageSize", BeNumerically("==", 100)))
				Expect(sent).To(HaveKeyWithValue("tokenAddresses", BeEmpty()))
				Expect(sent).NotTo(HaveKey("transferType"))

				Expect(page.Total()).To(Equal(int64(1)))
				Expect(page.Items()).To(HaveLen(1))
				Expect(page.Items()[0].Balance).To(Equal(ledger.Quantity("1000000000000000000000")))
				Expect(page.Items()[0].TokenAddress).To(BeNil())
				Expect(page.Items()[0].UpdatedAtBlockHeight).To(Equal(uint64(77)))
			})
		})

		When("the node returns null", func() {
			BeforeEach(func() {
				handler = func(w http.ResponseWriter, r *http.Request) {
					_, _ = io.WriteString(w, "null")
				}
			})

			It("should return a nil page that reads as empty", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(page).To(BeNil())
				Expect(page.Items()).To(BeEmpty())
				Expect(page.Total()).To(BeZero())
			})
		})

		When("the node returns an empty body", func() {
			It("should return a nil page", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(page).To(BeNil())
			})
		})

		When("the node returns a page with a null list", func() {
			BeforeEach(func() {
				handler = func(w http.ResponseWriter, r *http.Request) {
					_, _ = io.WriteString(w, `{"list": null, "totalElements": 0}`)
				}
			})

			It("should return an empty page", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(page.Items()).To(BeEmpty())
			})
		})

		When("the node answers with an error status", func() {
			BeforeEach(func() {
				handler = func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusServiceUnavailable)
					_, _ = io.WriteString(w, `{"message":"syncing"}`)
				}
			})

			It("should return a status error", func() {
				var statusErr *ledger.StatusError
				Expect(errors.As(err, &statusErr)).To(BeTrue())
				Expect(statusErr.Code).To(Equal(http.StatusServiceUnavailable))
				Expect(statusErr.Body).To(ContainSubstring("syncing"))
			})
		})

		When("the body is not json", func() {
			BeforeEach(func() {
				handler = func(w http.ResponseWriter, r *http.Request) {
					_, _ = io.WriteString(w, "<html>")
				}
			})

			It("should return a decode error", func() {
				Expect(err).To(MatchError(ContainSubstring("decode")))
			})
		})
	})

	Describe("MemTransfers", func() {
		It("should send the transfer type and direction", func() {
			transferType := "TRANSFER"
			handler = func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"list": [{"hash": "0x01", "type": "TRANSFER", "amount": 30, "fee": "2", "nonce": 4}], "totalElements": 9}`)
			}

			page, err := client.MemTransfers(ctx, ledger.PageRequest{
				PageSize:     10,
				TransferType: &transferType,
				Direction:    ledger.DirectionDesc,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(received.URL.Path).To(Equal("/api/v1/mem-transfer/page/bulk"))

			var sent map[string]any
			Expect(json.Unmarshal(reqBody, &sent)).To(Succeed())
			Expect(sent).To(HaveKeyWithValue("transferType", "TRANSFER"))
			Expect(sent).To(HaveKeyWithValue("direction", "DESC"))

			Expect(page.Total()).To(Equal(int64(9)))
			Expect(page.Items()[0].Amount).To(Equal(ledger.Quantity("30")))
			Expect(page.Items()[0].Fee).To(Equal(ledger.Quantity("2")))
		})
	})

	Describe("LatestBlockHeight", func() {
		It("should parse a bare number", func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, "1234\n")
			}
			height, err := client.LatestBlockHeight(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(height).To(Equal(uint64(1234)))
			Expect(received.Method).To(Equal(http.MethodGet))
			Expect(received.URL.Path).To(Equal("/api/v1/blockchain/latest-block-height"))
		})

		It("should fail on an empty body", func() {
			_, err := client.LatestBlockHeight(ctx)
			Expect(err).To(MatchError(ledger.ErrEmptyResponse))
		})
	})

	Describe("Token", func() {
		It("should request the token by address", func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"address": "0x00000000000000000000000000000000000000bb", "name": "Gold", "numberOfDecimals": 8}`)
			}
			token, err := client.Token(ctx, "0x00000000000000000000000000000000000000bb")
			Expect(err).NotTo(HaveOccurred())
			Expect(received.URL.Path).To(Equal("/api/v1/token/0x00000000000000000000000000000000000000bb"))
			Expect(token.Name).To(Equal("Gold"))
			Expect(token.NumberOfDecimals).To(Equal(8))
		})
	})

	Describe("AccountSummary", func() {
		It("should decode the next nonce", func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"address": "0xaa", "nonce": 4, "nextNonce": 5}`)
			}
			summary, err := client.AccountSummary(ctx, "0xaa")
			Expect(err).NotTo(HaveOccurred())
			Expect(received.URL.Path).To(Equal("/api/v1/account/0xaa/summary"))
			Expect(summary.NextNonce).To(Equal(uint64(5)))
		})
	})

	Describe("SubmitTransaction", func() {
		It("should post the raw transaction", func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"result": "SUCCESS", "txHash": "0xfeed"}`)
			}
			resp, err := client.SubmitTransaction(ctx, ledger.SubmitRequest{RawTxDataInHex: "0xdeadbeef"})
			Expect(err).NotTo(HaveOccurred())
			Expect(received.Method).To(Equal(http.MethodPost))
			Expect(received.URL.Path).To(Equal("/api/v1/mempool/submit"))
			Expect(string(reqBody)).To(MatchJSON(`{"rawTxDataInHex": "0xdeadbeef"}`))
			Expect(resp.Result).To(Equal("SUCCESS"))
			Expect(resp.TxHash).To(Equal("0xfeed"))
		})
	})
})

var _ = Describe("Quantity", func() {
	DescribeTable("decoding",
		func(input string, expected ledger.Quantity) {
			var q ledger.Quantity
			Expect(json.Unmarshal([]byte(input), &q)).To(Succeed())
			Expect(q).To(Equal(expected))
		},
		Entry("quoted", `"123456789012345678901234567890"`, ledger.Quantity("123456789012345678901234567890")),
		Entry("bare number", `42`, ledger.Quantity("42")),
		Entry("null", `null`, ledger.Quantity("")),
	)

	It("should reject a boolean", func() {
		var q ledger.Quantity
		Expect(json.Unmarshal([]byte(`true`), &q)).NotTo(Succeed())
	})
})
