package core

import (
	"context"
	"fmt"
	"math/big"
	"walletview/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"
)

const reconcilePageSize = 100

// Balances returns the confirmed balances reported by the node for the
// requested addresses and tokens, each reduced by what the owner already
// committed to in pending outgoing transfers. An empty token set is passed
// to the node as is, which reports the native balance only.
func (w *Wallet) Balances(ctx context.Context, addresses, tokenAddresses []common.Address) ([]AccountBalance, error) {
	req := ledger.PageRequest{
		PageSize:       reconcilePageSize,
		Addresses:      hexAddresses(addresses),
		TokenAddresses: hexAddresses(tokenAddresses),
	}

	var (
		balances []AccountBalance
		pending  []PendingTransfer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		balances, err = drain(gctx, w.ledger.AccountBalances, req, BalanceFromLedger)
		if err != nil {
			return fmt.Errorf("get account balances: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		pending, err = drain(gctx, w.ledger.MemTransfers, req, PendingFromLedger)
		if err != nil {
			return fmt.Errorf("get pending transfers: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	w.logs.Debugw("reconciling balances",
		"balances", len(balances),
		"pending_transfers", len(pending))

	return Reconcile(balances, pending), nil
}

// Reconcile nets pending outgoing transfers against confirmed balances. A
// transfer counts against a balance when it is sent from the balance's
// address in the balance's token. Fees are always paid in the native asset,
// so the native balance also carries the fee of every outgoing transfer.
// Results never go below zero. Rows with nothing pending are returned
// unchanged.
func Reconcile(balances []AccountBalance, pending []PendingTransfer) []AccountBalance {
	out := make([]AccountBalance, len(balances))
	for i, balance := range balances {
		committed := pendingOutgoing(balance, pending)
		if committed.Sign() == 0 {
			out[i] = balance
			continue
		}

		adjusted := new(big.Int)
		if balance.Amount != nil {
			adjusted.Sub(balance.Amount, committed)
		}
		if adjusted.Sign() < 0 {
			adjusted.SetInt64(0)
		}

		balance.Amount = adjusted
		out[i] = balance
	}
	return out
}

func pendingOutgoing(balance AccountBalance, pending []PendingTransfer) *big.Int {
	sum := new(big.Int)
	native := balance.TokenAddress == NativeToken

	for _, t := range pending {
		if t.From == nil || *t.From != balance.Address {
			continue
		}
		if t.Amount != nil && t.TokenAddress == balance.TokenAddress {
			sum.Add(sum, t.Amount)
		}
		if native && t.Fee != nil {
			sum.Add(sum, t.Fee)
		}
	}
	return sum
}

// drain reads every page of a bulk endpoint. A nil or empty page ends the
// walk early.
func drain[R, T any](
	ctx context.Context,
	fetch func(context.Context, ledger.PageRequest) (*ledger.Page[R], error),
	req ledger.PageRequest,
	convert func(R) (T, error),
) ([]T, error) {
	var out []T
	for pageNumber := 0; ; pageNumber++ {
		req.PageNumber = pageNumber
		page, err := fetch(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", pageNumber, err)
		}

		items := page.Items()
		if len(items) == 0 {
			break
		}
		for _, item := range items {
			converted, err := convert(item)
			if err != nil {
				return nil, err
			}
			out = append(out, converted)
		}

		if int64(pageNumber+1)*int64(req.PageSize) >= page.Total() {
			break
		}
	}
	return out, nil
}
