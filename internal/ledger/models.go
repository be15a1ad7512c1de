package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const DirectionDesc = "DESC"

// PageRequest is the filter body shared by every bulk page endpoint of the
// node. Empty address sets are sent as empty arrays.
type PageRequest struct {
	PageNumber     int      `json:"pageNumber"`
	PageSize       int      `json:"pageSize"`
	Addresses      []string `json:"addresses"`
	TokenAddresses []string `json:"tokenAddresses"`
	TransferType   *string  `json:"transferType,omitempty"`
	Direction      string   `json:"direction,omitempty"`
}

type Page[T any] struct {
	List          []T   `json:"list"`
	TotalElements int64 `json:"totalElements"`
}

// Items tolerates a nil page.
func (p *Page[T]) Items() []T {
	if p == nil {
		return nil
	}
	return p.List
}

// Total tolerates a nil page.
func (p *Page[T]) Total() int64 {
	if p == nil {
		return 0
	}
	return p.TotalElements
}

// Quantity is an unsigned integer amount carried as a decimal string.
// The node sends it either quoted or as a bare JSON number.
type Quantity string

func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*q = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("quantity: %w", err)
		}
		*q = Quantity(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("quantity: %w", err)
	}
	*q = Quantity(n.String())
	return nil
}

type AccountBalance struct {
	Address              string    `json:"address"`
	TokenAddress         *string   `json:"tokenAddress"`
	Balance              Quantity  `json:"balance"`
	UpdatedAtBlockHeight uint64    `json:"updatedAtBlockHeight"`
	UpdatedAtTimestamp   time.Time `json:"updatedAtTimestamp"`
}

// MemTransfer is a transfer waiting in the node's mempool.
type MemTransfer struct {
	Hash         string    `json:"hash"`
	Type         string    `json:"type"`
	From         *string   `json:"from"`
	To           *string   `json:"to"`
	TokenAddress *string   `json:"tokenAddress"`
	Amount       Quantity  `json:"amount"`
	Fee          Quantity  `json:"fee"`
	Nonce        uint64    `json:"nonce"`
	Message      *string   `json:"message"`
	AddedAt      time.Time `json:"addedAt"`
}

// Transfer is a transfer included in a block.
type Transfer struct {
	TxHash       string    `json:"txHash"`
	Type         string    `json:"type"`
	From         *string   `json:"from"`
	To           *string   `json:"to"`
	TokenAddress *string   `json:"tokenAddress"`
	Amount       Quantity  `json:"amount"`
	Fee          Quantity  `json:"fee"`
	Nonce        uint64    `json:"nonce"`
	Message      *string   `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
	BlockHeight  uint64    `json:"blockHeight"`
	BlockHash    string    `json:"blockHash"`
}

type Token struct {
	Address          string   `json:"address"`
	Name             string   `json:"name"`
	SmallestUnitName string   `json:"smallestUnitName"`
	NumberOfDecimals int      `json:"numberOfDecimals"`
	WebsiteURL       string   `json:"websiteUrl"`
	LogoURL          string   `json:"logoUrl"`
	MaxSupply        Quantity `json:"maxSupply"`
	TotalSupply      Quantity `json:"totalSupply"`
	UserBurnable     bool     `json:"userBurnable"`
}

type AccountSummary struct {
	Address   string `json:"address"`
	Nonce     uint64 `json:"nonce"`
	NextNonce uint64 `json:"nextNonce"`
}

type FeeLevel struct {
	BaseFee           Quantity `json:"baseFee"`
	FeePerByte        Quantity `json:"feePerByte"`
	TotalForAverageTx Quantity `json:"totalForAverageTx"`
}

type RecommendedFees struct {
	Slow        FeeLevel `json:"slow"`
	Standard    FeeLevel `json:"standard"`
	Fast        FeeLevel `json:"fast"`
	MempoolSize int      `json:"mempoolSize"`
}

type SubmitRequest struct {
	RawTxDataInHex string `json:"rawTxDataInHex"`
}

type SubmitResponse struct {
	Result  string `json:"result"`
	TxHash  string `json:"txHash"`
	Message string `json:"message"`
}
