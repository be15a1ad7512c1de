package core

import (
	"context"
	"walletview/internal/ledger"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Ledger is the remote node as seen through the retrying gateway.
//
//counterfeiter:generate -o fake -fake-name Ledger . Ledger
type Ledger interface {
	AccountBalances(ctx context.Context, req ledger.PageRequest) (*ledger.Page[ledger.AccountBalance], error)
	MemTransfers(ctx context.Context, req ledger.PageRequest) (*ledger.Page[ledger.MemTransfer], error)
	Transfers(ctx context.Context, req ledger.PageRequest) (*ledger.Page[ledger.Transfer], error)
	LatestBlockHeight(ctx context.Context) (uint64, error)
	Tokens(ctx context.Context) ([]ledger.Token, error)
	Token(ctx context.Context, address string) (ledger.Token, error)
	AccountSummary(ctx context.Context, address string) (ledger.AccountSummary, error)
	RecommendedFees(ctx context.Context) (ledger.RecommendedFees, error)
	SubmitTransaction(ctx context.Context, req ledger.SubmitRequest) (ledger.SubmitResponse, error)
}
