package payload_test

import (
	"net/http/httptest"
	"net/url"
	"strings"

	"walletview/internal/core"
	"walletview/internal/http/payload"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	alice = "0x00000000000000000000000000000000000000a1"
	bob   = "0x00000000000000000000000000000000000000b2"
	gold  = "0x00000000000000000000000000000000000000c3"
)

var _ = Describe("QuerySet", func() {
	It("accepts repeated and comma separated values", func() {
		values, err := url.ParseQuery("addresses=" + alice + "," + bob + "&addresses=" + gold + "&addresses=")
		Expect(err).NotTo(HaveOccurred())
		Expect(payload.QuerySet(values, "addresses")).To(Equal([]string{alice, bob, gold}))
	})

	It("returns nil when the key is missing", func() {
		Expect(payload.QuerySet(url.Values{}, "addresses")).To(BeNil())
	})
})

var _ = Describe("QueryInt", func() {
	It("falls back when absent", func() {
		n, err := payload.QueryInt(url.Values{}, "pageSize", 20)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(20))
	})

	It("rejects non-integers", func() {
		_, err := payload.QueryInt(url.Values{"pageSize": {"ten"}}, "pageSize", 20)
		Expect(err).To(MatchError(ContainSubstring("pageSize")))
	})
})

var _ = Describe("BalancesRequest", func() {
	It("accepts well-formed addresses", func() {
		req := payload.BalancesRequest{Addresses: []string{alice}, TokenAddresses: []string{gold}}
		Expect(req.Validate()).To(Succeed())

		addresses, tokens := req.ToCore()
		Expect(addresses).To(Equal([]common.Address{common.HexToAddress(alice)}))
		Expect(tokens).To(Equal([]common.Address{common.HexToAddress(gold)}))
	})

	It("requires at least one address", func() {
		Expect(payload.BalancesRequest{}.Validate()).To(MatchError(ContainSubstring("Addresses")))
	})

	It("rejects malformed addresses", func() {
		req := payload.BalancesRequest{Addresses: []string{"0x1234"}}
		Expect(req.Validate()).NotTo(Succeed())
	})

	It("rejects more than the address limit", func() {
		many := make([]string, payload.MaxAddresses+1)
		for i := range many {
			many[i] = alice
		}
		Expect(payload.BalancesRequest{Addresses: many}.Validate()).NotTo(Succeed())
	})

	It("drops duplicate addresses", func() {
		addresses, tokens := payload.BalancesRequest{Addresses: []string{alice, "0x" + strings.ToUpper(alice[2:]), bob}}.ToCore()
		Expect(addresses).To(HaveLen(2))
		Expect(tokens).To(BeEmpty())
	})
})

var _ = Describe("TransfersRequest", func() {
	var values url.Values

	BeforeEach(func() {
		values = url.Values{"addresses": {alice}}
	})

	It("applies the default page window", func() {
		req, err := payload.NewTransfersRequest(values)
		Expect(err).NotTo(HaveOccurred())
		Expect(req.PageNumber).To(Equal(0))
		Expect(req.PageSize).To(Equal(payload.DefaultPageSize))
		Expect(req.Validate()).To(Succeed())

		q := req.ToCore()
		Expect(q.TransferType).To(BeNil())
		Expect(q.Addresses).To(ConsistOf(common.HexToAddress(alice)))
	})

	It("maps the transfer type", func() {
		values.Set("transferType", "MINT")
		req, err := payload.NewTransfersRequest(values)
		Expect(err).NotTo(HaveOccurred())
		Expect(req.Validate()).To(Succeed())

		q := req.ToCore()
		Expect(q.TransferType).NotTo(BeNil())
		Expect(*q.TransferType).To(Equal(core.TransferTypeMint))
	})

	DescribeTable("rejects out of range input",
		func(key, value string) {
			values.Set(key, value)
			req, err := payload.NewTransfersRequest(values)
			Expect(err).NotTo(HaveOccurred())
			Expect(req.Validate()).NotTo(Succeed())
		},
		Entry("negative page number", "pageNumber", "-1"),
		Entry("zero page size", "pageSize", "0"),
		Entry("oversized page", "pageSize", "101"),
		Entry("unknown transfer type", "transferType", "SWAP"),
		Entry("malformed token", "tokenAddresses", "gold"),
	)

	It("fails on a non-numeric page number", func() {
		values.Set("pageNumber", "first")
		_, err := payload.NewTransfersRequest(values)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("SubmitTxRequest", func() {
	It("decodes valid hex", func() {
		req := payload.SubmitTxRequest{HexData: "0xdeadbeef"}
		Expect(req.Validate()).To(Succeed())
		raw, err := req.RawTx()
		Expect(err).NotTo(HaveOccurred())
		Expect(raw).To(Equal([]byte{0xde, 0xad, 0xbe, 0xef}))
	})

	DescribeTable("rejects bad hex",
		func(hexData string) {
			Expect(payload.SubmitTxRequest{HexData: hexData}.Validate()).NotTo(Succeed())
		},
		Entry("empty", ""),
		Entry("no prefix", "deadbeef"),
		Entry("odd length", "0xabc"),
		Entry("prefix only", "0x"),
		Entry("not hex", "0xzz"),
	)
})

var _ = Describe("Decoder", func() {
	It("decodes and validates the body", func() {
		r := httptest.NewRequest("POST", "/submit-tx", strings.NewReader(`{"hexData":"0x01"}`))
		var req payload.SubmitTxRequest
		Expect(payload.Decoder{}.DecodeJSONPayload(r, &req)).To(Succeed())
		Expect(req.HexData).To(Equal("0x01"))
	})

	It("rejects unknown fields", func() {
		r := httptest.NewRequest("POST", "/submit-tx", strings.NewReader(`{"hexData":"0x01","extra":1}`))
		var req payload.SubmitTxRequest
		Expect(payload.Decoder{}.DecodeJSONPayload(r, &req)).To(MatchError(ContainSubstring("decoding json payload")))
	})

	It("reports validation failures", func() {
		r := httptest.NewRequest("POST", "/submit-tx", strings.NewReader(`{"hexData":"nothex"}`))
		var req payload.SubmitTxRequest
		Expect(payload.Decoder{}.DecodeJSONPayload(r, &req)).To(MatchError(ContainSubstring("validating payload")))
	})
})
