package payload

import (
	"math/big"
	"strings"
	"time"
	"walletview/internal/core"

	"github.com/ethereum/go-ethereum/common"
)

type BalanceView struct {
	Address              string    `json:"address"`
	TokenAddress         string    `json:"tokenAddress"`
	Balance              string    `json:"balance"`
	UpdatedAtBlockHeight uint64    `json:"updatedAtBlockHeight"`
	UpdatedAtTimestamp   time.Time `json:"updatedAtTimestamp"`
}

func NewBalanceViews(balances []core.AccountBalance) []BalanceView {
	views := make([]BalanceView, 0, len(balances))
	for _, b := range balances {
		views = append(views, BalanceView{
			Address:              hexAddress(b.Address),
			TokenAddress:         hexAddress(b.TokenAddress),
			Balance:              decimal(b.Amount),
			UpdatedAtBlockHeight: b.UpdatedAtBlockHeight,
			UpdatedAtTimestamp:   b.UpdatedAtTimestamp,
		})
	}
	return views
}

// TransferView is the wire form of a transfer record. The block fields are
// only present on confirmed records.
type TransferView struct {
	Hash          string    `json:"hash"`
	Status        string    `json:"status"`
	Type          string    `json:"type"`
	From          *string   `json:"from,omitempty"`
	To            *string   `json:"to,omitempty"`
	TokenAddress  string    `json:"tokenAddress"`
	Amount        string    `json:"amount"`
	Fee           string    `json:"fee"`
	Nonce         uint64    `json:"nonce"`
	Message       string    `json:"message,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	BlockHeight   *uint64   `json:"blockHeight,omitempty"`
	BlockHash     *string   `json:"blockHash,omitempty"`
	Confirmations *uint64   `json:"confirmations,omitempty"`
}

func NewTransferView(record core.TransferRecord) TransferView {
	f := record.Fields()
	view := TransferView{
		Hash:         f.Hash.Hex(),
		Status:       string(record.Status()),
		Type:         string(f.Type),
		From:         optionalHex(f.From),
		To:           optionalHex(f.To),
		TokenAddress: hexAddress(f.TokenAddress),
		Amount:       decimal(f.Amount),
		Fee:          decimal(f.Fee),
		Nonce:        f.Nonce,
		Message:      f.Message,
		Timestamp:    f.Timestamp,
	}

	if c, ok := record.(core.ConfirmedRecord); ok {
		height, confirmations := c.BlockHeight, c.Confirmations
		hash := c.BlockHash.Hex()
		view.BlockHeight = &height
		view.BlockHash = &hash
		view.Confirmations = &confirmations
	}

	return view
}

type TransferPageView struct {
	Items          []TransferView `json:"items"`
	PageNumber     int            `json:"pageNumber"`
	PageSize       int            `json:"pageSize"`
	TotalElements  int64          `json:"totalElements"`
	TotalPages     int64          `json:"totalPages"`
	PendingCount   int64          `json:"pendingCount"`
	ConfirmedCount int64          `json:"confirmedCount"`
	IsFirst        bool           `json:"isFirst"`
	IsLast         bool           `json:"isLast"`
}

func NewTransferPageView(page core.TransferPage) TransferPageView {
	items := make([]TransferView, 0, len(page.Items))
	for _, record := range page.Items {
		items = append(items, NewTransferView(record))
	}
	return TransferPageView{
		Items:          items,
		PageNumber:     page.PageNumber,
		PageSize:       page.PageSize,
		TotalElements:  page.TotalElements,
		TotalPages:     page.TotalPages,
		PendingCount:   page.PendingCount,
		ConfirmedCount: page.ConfirmedCount,
		IsFirst:        page.IsFirst,
		IsLast:         page.IsLast,
	}
}

type TokenView struct {
	Address          string `json:"address"`
	Name             string `json:"name"`
	SmallestUnitName string `json:"smallestUnitName"`
	NumberOfDecimals int    `json:"numberOfDecimals"`
	WebsiteURL       string `json:"websiteUrl,omitempty"`
	LogoURL          string `json:"logoUrl,omitempty"`
	MaxSupply        string `json:"maxSupply"`
	TotalSupply      string `json:"totalSupply"`
	UserBurnable     bool   `json:"userBurnable"`
}

func NewTokenView(t core.Token) TokenView {
	return TokenView{
		Address:          hexAddress(t.Address),
		Name:             t.Name,
		SmallestUnitName: t.SmallestUnitName,
		NumberOfDecimals: t.NumberOfDecimals,
		WebsiteURL:       t.WebsiteURL,
		LogoURL:          t.LogoURL,
		MaxSupply:        decimal(t.MaxSupply),
		TotalSupply:      decimal(t.TotalSupply),
		UserBurnable:     t.UserBurnable,
	}
}

func NewTokenViews(tokens []core.Token) []TokenView {
	views := make([]TokenView, 0, len(tokens))
	for _, t := range tokens {
		views = append(views, NewTokenView(t))
	}
	return views
}

type FeeLevelView struct {
	BaseFee           string `json:"baseFee"`
	FeePerByte        string `json:"feePerByte"`
	TotalForAverageTx string `json:"totalForAverageTx"`
}

type FeesView struct {
	Slow        FeeLevelView `json:"slow"`
	Standard    FeeLevelView `json:"standard"`
	Fast        FeeLevelView `json:"fast"`
	MempoolSize int          `json:"mempoolSize"`
}

func NewFeesView(fees core.RecommendedFees) FeesView {
	level := func(l core.FeeLevel) FeeLevelView {
		return FeeLevelView{
			BaseFee:           decimal(l.BaseFee),
			FeePerByte:        decimal(l.FeePerByte),
			TotalForAverageTx: decimal(l.TotalForAverageTx),
		}
	}
	return FeesView{
		Slow:        level(fees.Slow),
		Standard:    level(fees.Standard),
		Fast:        level(fees.Fast),
		MempoolSize: fees.MempoolSize,
	}
}

type NonceView struct {
	Address   string `json:"address"`
	NextNonce uint64 `json:"nextNonce"`
}

type SubmitView struct {
	Status  string  `json:"status"`
	TxHash  *string `json:"txHash,omitempty"`
	Message string  `json:"message,omitempty"`
}

func NewSubmitView(r core.SubmitResult) SubmitView {
	view := SubmitView{
		Status:  string(r.Status),
		Message: r.Message,
	}
	if r.TxHash != nil {
		hash := r.TxHash.Hex()
		view.TxHash = &hash
	}
	return view
}

// addresses go out lower-cased, the form the node reports them in
func hexAddress(a common.Address) string {
	return strings.ToLower(a.Hex())
}

func optionalHex(a *common.Address) *string {
	if a == nil {
		return nil
	}
	s := hexAddress(*a)
	return &s
}

func decimal(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
