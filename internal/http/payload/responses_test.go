package payload_test

import (
	"encoding/json"
	"math/big"
	"time"

	"walletview/internal/core"
	"walletview/internal/http/payload"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TransferView", func() {
	var fields core.TransferFields

	BeforeEach(func() {
		from := common.HexToAddress(alice)
		fields = core.TransferFields{
			Hash:      common.HexToHash("0x01"),
			Type:      core.TransferTypeTransfer,
			From:      &from,
			Amount:    big.NewInt(1500),
			Fee:       big.NewInt(7),
			Nonce:     3,
			Timestamp: time.Unix(1700000000, 0).UTC(),
		}
	})

	It("omits block fields for pending records", func() {
		raw, err := json.Marshal(payload.NewTransferView(core.PendingRecord{TransferFields: fields}))
		Expect(err).NotTo(HaveOccurred())

		var decoded map[string]any
		Expect(json.Unmarshal(raw, &decoded)).To(Succeed())
		Expect(decoded).To(HaveKeyWithValue("status", "PENDING"))
		Expect(decoded).To(HaveKeyWithValue("amount", "1500"))
		Expect(decoded).To(HaveKeyWithValue("from", alice))
		Expect(decoded).NotTo(HaveKey("to"))
		Expect(decoded).NotTo(HaveKey("blockHeight"))
		Expect(decoded).NotTo(HaveKey("blockHash"))
		Expect(decoded).NotTo(HaveKey("confirmations"))
	})

	It("carries block fields for confirmed records", func() {
		view := payload.NewTransferView(core.ConfirmedRecord{
			TransferFields: fields,
			BlockHeight:    90,
			BlockHash:      common.HexToHash("0xff"),
			Confirmations:  11,
		})

		Expect(view.Status).To(Equal("CONFIRMED"))
		Expect(view.BlockHeight).To(HaveValue(BeEquivalentTo(90)))
		Expect(view.Confirmations).To(HaveValue(BeEquivalentTo(11)))
		Expect(view.BlockHash).To(HaveValue(Equal(common.HexToHash("0xff").Hex())))
		Expect(view.TokenAddress).To(Equal("0x0000000000000000000000000000000000000000"))
	})
})

var _ = Describe("page and scalar views", func() {
	It("keeps page metadata and item order", func() {
		view := payload.NewTransferPageView(core.TransferPage{
			Items: []core.TransferRecord{
				core.PendingRecord{TransferFields: core.TransferFields{Hash: common.HexToHash("0x01")}},
				core.ConfirmedRecord{TransferFields: core.TransferFields{Hash: common.HexToHash("0x02")}},
			},
			PageNumber:    1,
			PageSize:      2,
			TotalElements: 5,
			TotalPages:    3,
		})
		Expect(view.Items).To(HaveLen(2))
		Expect(view.Items[0].Hash).To(Equal(common.HexToHash("0x01").Hex()))
		Expect(view.TotalPages).To(BeEquivalentTo(3))
	})

	It("renders an empty page as an empty list", func() {
		raw, err := json.Marshal(payload.NewTransferPageView(core.TransferPage{}))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(raw)).To(ContainSubstring(`"items":[]`))
	})

	It("exposes the pending and confirmed split", func() {
		raw, err := json.Marshal(payload.NewTransferPageView(core.TransferPage{
			PageSize:       10,
			TotalElements:  45,
			TotalPages:     5,
			PendingCount:   15,
			ConfirmedCount: 30,
		}))
		Expect(err).NotTo(HaveOccurred())

		var decoded map[string]any
		Expect(json.Unmarshal(raw, &decoded)).To(Succeed())
		Expect(decoded).To(HaveKeyWithValue("pendingCount", BeNumerically("==", 15)))
		Expect(decoded).To(HaveKeyWithValue("confirmedCount", BeNumerically("==", 30)))
		Expect(decoded).To(HaveKeyWithValue("totalElements", BeNumerically("==", 45)))
	})

	It("writes nil amounts as zero", func() {
		views := payload.NewBalanceViews([]core.AccountBalance{{Address: common.HexToAddress(alice)}})
		Expect(views).To(HaveLen(1))
		Expect(views[0].Balance).To(Equal("0"))
		Expect(views[0].Address).To(Equal(alice))
	})

	It("omits the hash of a rejected submission", func() {
		view := payload.NewSubmitView(core.SubmitResult{Status: "REJECTED", Message: "nonce too low"})
		Expect(view.TxHash).To(BeNil())
		Expect(view.Message).To(Equal("nonce too low"))
	})
})
