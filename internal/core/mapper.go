package core

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"walletview/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidAddress  = errors.New("invalid address")
)

func BalanceFromLedger(b ledger.AccountBalance) (AccountBalance, error) {
	address, err := parseAddress(b.Address)
	if err != nil {
		return AccountBalance{}, fmt.Errorf("balance address: %w", err)
	}
	token, err := parseToken(b.TokenAddress)
	if err != nil {
		return AccountBalance{}, fmt.Errorf("balance token: %w", err)
	}
	amount, err := parseQuantity(b.Balance)
	if err != nil {
		return AccountBalance{}, fmt.Errorf("balance of %s: %w", b.Address, err)
	}
	if amount == nil {
		amount = new(big.Int)
	}

	return AccountBalance{
		Address:              address,
		TokenAddress:         token,
		Amount:               amount,
		UpdatedAtBlockHeight: b.UpdatedAtBlockHeight,
		UpdatedAtTimestamp:   b.UpdatedAtTimestamp,
	}, nil
}

func PendingFromLedger(t ledger.MemTransfer) (PendingTransfer, error) {
	p := PendingTransfer{
		Hash:    common.HexToHash(t.Hash),
		Type:    TransferType(t.Type),
		Nonce:   t.Nonce,
		Message: deref(t.Message),
		AddedAt: t.AddedAt,
	}

	var err error
	if p.From, err = parseOptionalAddress(t.From); err != nil {
		return PendingTransfer{}, fmt.Errorf("pending %s from: %w", t.Hash, err)
	}
	if p.To, err = parseOptionalAddress(t.To); err != nil {
		return PendingTransfer{}, fmt.Errorf("pending %s to: %w", t.Hash, err)
	}
	if p.TokenAddress, err = parseToken(t.TokenAddress); err != nil {
		return PendingTransfer{}, fmt.Errorf("pending %s token: %w", t.Hash, err)
	}
	if p.Amount, err = parseQuantity(t.Amount); err != nil {
		return PendingTransfer{}, fmt.Errorf("pending %s amount: %w", t.Hash, err)
	}
	if p.Fee, err = parseQuantity(t.Fee); err != nil {
		return PendingTransfer{}, fmt.Errorf("pending %s fee: %w", t.Hash, err)
	}
	return p, nil
}

func ConfirmedFromLedger(t ledger.Transfer) (ConfirmedTransfer, error) {
	c := ConfirmedTransfer{
		TxHash:      common.HexToHash(t.TxHash),
		Type:        TransferType(t.Type),
		Nonce:       t.Nonce,
		Message:     deref(t.Message),
		Timestamp:   t.Timestamp,
		BlockHeight: t.BlockHeight,
		BlockHash:   common.HexToHash(t.BlockHash),
	}

	var err error
	if c.From, err = parseOptionalAddress(t.From); err != nil {
		return ConfirmedTransfer{}, fmt.Errorf("transfer %s from: %w", t.TxHash, err)
	}
	if c.To, err = parseOptionalAddress(t.To); err != nil {
		return ConfirmedTransfer{}, fmt.Errorf("transfer %s to: %w", t.TxHash, err)
	}
	if c.TokenAddress, err = parseToken(t.TokenAddress); err != nil {
		return ConfirmedTransfer{}, fmt.Errorf("transfer %s token: %w", t.TxHash, err)
	}
	if c.Amount, err = parseQuantity(t.Amount); err != nil {
		return ConfirmedTransfer{}, fmt.Errorf("transfer %s amount: %w", t.TxHash, err)
	}
	if c.Fee, err = parseQuantity(t.Fee); err != nil {
		return ConfirmedTransfer{}, fmt.Errorf("transfer %s fee: %w", t.TxHash, err)
	}
	return c, nil
}

func NewPendingRecord(p PendingTransfer) PendingRecord {
	return PendingRecord{
		TransferFields: TransferFields{
			Hash:         p.Hash,
			Type:         p.Type,
			From:         p.From,
			To:           p.To,
			TokenAddress: p.TokenAddress,
			Amount:       p.Amount,
			Fee:          p.Fee,
			Nonce:        p.Nonce,
			Message:      p.Message,
			Timestamp:    p.AddedAt,
		},
	}
}

// NewConfirmedRecord derives the confirmation count from currentHeight.
// A cached height can trail the block a fresh transfer landed in; the count
// is floored at zero in that case.
func NewConfirmedRecord(c ConfirmedTransfer, currentHeight uint64) ConfirmedRecord {
	var confirmations uint64
	if currentHeight >= c.BlockHeight {
		confirmations = currentHeight - c.BlockHeight + 1
	}

	return ConfirmedRecord{
		TransferFields: TransferFields{
			Hash:         c.TxHash,
			Type:         c.Type,
			From:         c.From,
			To:           c.To,
			TokenAddress: c.TokenAddress,
			Amount:       c.Amount,
			Fee:          c.Fee,
			Nonce:        c.Nonce,
			Message:      c.Message,
			Timestamp:    c.Timestamp,
		},
		BlockHeight:   c.BlockHeight,
		BlockHash:     c.BlockHash,
		Confirmations: confirmations,
	}
}

func TokenFromLedger(t ledger.Token) (Token, error) {
	address, err := parseAddress(t.Address)
	if err != nil {
		return Token{}, fmt.Errorf("token address: %w", err)
	}
	maxSupply, err := parseQuantity(t.MaxSupply)
	if err != nil {
		return Token{}, fmt.Errorf("token %s max supply: %w", t.Address, err)
	}
	totalSupply, err := parseQuantity(t.TotalSupply)
	if err != nil {
		return Token{}, fmt.Errorf("token %s total supply: %w", t.Address, err)
	}

	return Token{
		Address:          address,
		Name:             t.Name,
		SmallestUnitName: t.SmallestUnitName,
		NumberOfDecimals: t.NumberOfDecimals,
		WebsiteURL:       t.WebsiteURL,
		LogoURL:          t.LogoURL,
		MaxSupply:        maxSupply,
		TotalSupply:      totalSupply,
		UserBurnable:     t.UserBurnable,
	}, nil
}

func FeesFromLedger(f ledger.RecommendedFees) (RecommendedFees, error) {
	slow, err := feeLevel(f.Slow)
	if err != nil {
		return RecommendedFees{}, fmt.Errorf("slow fee: %w", err)
	}
	standard, err := feeLevel(f.Standard)
	if err != nil {
		return RecommendedFees{}, fmt.Errorf("standard fee: %w", err)
	}
	fast, err := feeLevel(f.Fast)
	if err != nil {
		return RecommendedFees{}, fmt.Errorf("fast fee: %w", err)
	}

	return RecommendedFees{
		Slow:        slow,
		Standard:    standard,
		Fast:        fast,
		MempoolSize: f.MempoolSize,
	}, nil
}

func feeLevel(l ledger.FeeLevel) (FeeLevel, error) {
	base, err := parseQuantity(l.BaseFee)
	if err != nil {
		return FeeLevel{}, err
	}
	perByte, err := parseQuantity(l.FeePerByte)
	if err != nil {
		return FeeLevel{}, err
	}
	total, err := parseQuantity(l.TotalForAverageTx)
	if err != nil {
		return FeeLevel{}, err
	}
	return FeeLevel{BaseFee: base, FeePerByte: perByte, TotalForAverageTx: total}, nil
}

// hexAddresses renders addresses the way the node filters expect them. The
// result is never nil so that an empty set encodes as [].
func hexAddresses(addresses []common.Address) []string {
	out := make([]string, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, strings.ToLower(a.Hex()))
	}
	return out
}

// parseQuantity returns nil for an absent quantity.
func parseQuantity(q ledger.Quantity) (*big.Int, error) {
	if q == "" {
		return nil, nil
	}
	value, ok := new(big.Int).SetString(string(q), 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidQuantity, string(q))
	}
	if value.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative %q", ErrInvalidQuantity, string(q))
	}
	return value, nil
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

func parseOptionalAddress(s *string) (*common.Address, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	address, err := parseAddress(*s)
	if err != nil {
		return nil, err
	}
	return &address, nil
}

// parseToken maps an absent token to the native asset.
func parseToken(s *string) (common.Address, error) {
	address, err := parseOptionalAddress(s)
	if err != nil || address == nil {
		return NativeToken, err
	}
	return *address, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
