package handler

import (
	"context"
	"net/http"
	"walletview/internal/core"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name WalletService . WalletService
type WalletService interface {
	Balances(ctx context.Context, addresses, tokenAddresses []common.Address) ([]core.AccountBalance, error)
	Transfers(ctx context.Context, q core.TransferQuery) (core.TransferPage, error)
	Tokens(ctx context.Context) ([]core.Token, error)
	Token(ctx context.Context, address common.Address) (core.Token, error)
	NextNonce(ctx context.Context, address common.Address) (uint64, error)
	RecommendedFees(ctx context.Context) (core.RecommendedFees, error)
	SubmitTransaction(ctx context.Context, rawTx []byte) (core.SubmitResult, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
