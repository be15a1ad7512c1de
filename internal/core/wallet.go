package core

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"walletview/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
)

var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrInvalidPageSize  = errors.New("page size must be positive")
	ErrInvalidPage      = errors.New("page number must not be negative")
	ErrEmptyTransaction = errors.New("transaction data is empty")
)

// Wallet answers wallet queries by combining what the ledger node reports
// for confirmed chain state with what is still waiting in its mempool.
type Wallet struct {
	logs   *zap.SugaredLogger
	ledger Ledger
}

func NewWallet(logger *zap.SugaredLogger, ledger Ledger) *Wallet {
	return &Wallet{
		logs:   logger,
		ledger: ledger,
	}
}

// Tokens returns every token the node knows about.
func (w *Wallet) Tokens(ctx context.Context) ([]Token, error) {
	raw, err := w.ledger.Tokens(ctx)
	if err != nil {
		return nil, fmt.Errorf("get tokens: %w", err)
	}

	tokens := make([]Token, 0, len(raw))
	for _, t := range raw {
		token, err := TokenFromLedger(t)
		if err != nil {
			return nil, fmt.Errorf("map token: %w", err)
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

// Token returns a single token. ErrTokenNotFound is returned when the node
// does not know the address.
func (w *Wallet) Token(ctx context.Context, address common.Address) (Token, error) {
	raw, err := w.ledger.Token(ctx, strings.ToLower(address.Hex()))
	if err != nil {
		var statusErr *ledger.StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return Token{}, fmt.Errorf("%w: %s", ErrTokenNotFound, address.Hex())
		}
		return Token{}, fmt.Errorf("get token %s: %w", address.Hex(), err)
	}

	token, err := TokenFromLedger(raw)
	if err != nil {
		return Token{}, fmt.Errorf("map token: %w", err)
	}
	return token, nil
}

func (w *Wallet) NextNonce(ctx context.Context, address common.Address) (uint64, error) {
	summary, err := w.ledger.AccountSummary(ctx, strings.ToLower(address.Hex()))
	if err != nil {
		return 0, fmt.Errorf("get account summary %s: %w", address.Hex(), err)
	}
	return summary.NextNonce, nil
}

func (w *Wallet) RecommendedFees(ctx context.Context) (RecommendedFees, error) {
	raw, err := w.ledger.RecommendedFees(ctx)
	if err != nil {
		return RecommendedFees{}, fmt.Errorf("get recommended fees: %w", err)
	}

	fees, err := FeesFromLedger(raw)
	if err != nil {
		return RecommendedFees{}, fmt.Errorf("map recommended fees: %w", err)
	}
	return fees, nil
}

// SubmitTransaction forwards a signed transaction to the node's mempool.
// It is sent exactly once. A rejection by the mempool is reported in the
// result, not as an error.
func (w *Wallet) SubmitTransaction(ctx context.Context, rawTx []byte) (SubmitResult, error) {
	if len(rawTx) == 0 {
		return SubmitResult{}, ErrEmptyTransaction
	}

	resp, err := w.ledger.SubmitTransaction(ctx, ledger.SubmitRequest{
		RawTxDataInHex: hexutil.Encode(rawTx),
	})
	if err != nil {
		return SubmitResult{}, fmt.Errorf("submit transaction: %w", err)
	}

	result := SubmitResult{
		Status:  SubmitStatus(resp.Result),
		Message: resp.Message,
	}
	if resp.TxHash != "" {
		hash := common.HexToHash(resp.TxHash)
		result.TxHash = &hash
	}

	if !result.Accepted() {
		w.logs.Warnw("transaction rejected by mempool",
			"result", resp.Result,
			"message", resp.Message)
	}
	return result, nil
}
