package core

import (
	"context"
	"fmt"
	"walletview/internal/ledger"
)

// Transfers returns one page of the address history, where pending
// transfers (newest first) come before confirmed transfers (newest block
// first). The node pages the two feeds separately, so the page is stitched
// from up to two fetches plus the chain height used for confirmations.
//
// The two feeds are read at different instants. A transfer confirmed in
// between can show up in both halves, or in neither, and the page boundary
// can move by one record on the next request.
func (w *Wallet) Transfers(ctx context.Context, q TransferQuery) (TransferPage, error) {
	if q.PageSize < 1 {
		return TransferPage{}, ErrInvalidPageSize
	}
	if q.PageNumber < 0 {
		return TransferPage{}, ErrInvalidPage
	}

	height, err := w.ledger.LatestBlockHeight(ctx)
	if err != nil {
		return TransferPage{}, fmt.Errorf("get latest block height: %w", err)
	}

	offset := int64(q.PageNumber) * int64(q.PageSize)

	// Issued unconditionally: only this call reveals how many pending
	// transfers precede the confirmed ones.
	pendingPage, err := w.ledger.MemTransfers(ctx, transferRequest(q, q.PageNumber, q.PageSize))
	if err != nil {
		return TransferPage{}, fmt.Errorf("get pending transfers: %w", err)
	}
	pendingCount := pendingPage.Total()

	items := make([]TransferRecord, 0, q.PageSize)
	var confirmedCount int64

	if offset < pendingCount {
		for _, raw := range pendingPage.Items() {
			if len(items) == q.PageSize {
				break
			}
			p, err := PendingFromLedger(raw)
			if err != nil {
				return TransferPage{}, fmt.Errorf("map pending transfer: %w", err)
			}
			items = append(items, NewPendingRecord(p))
		}

		// The pending segment ends on this page, so the confirmed segment
		// starts from its beginning. With no room left, one record is
		// requested just to learn the confirmed total.
		remaining := q.PageSize - len(items)
		size := remaining
		if size == 0 {
			size = 1
		}

		confirmedPage, err := w.ledger.Transfers(ctx, transferRequest(q, 0, size))
		if err != nil {
			return TransferPage{}, fmt.Errorf("get confirmed transfers: %w", err)
		}
		confirmedCount = confirmedPage.Total()

		if remaining > 0 {
			if items, err = appendConfirmed(items, confirmedPage.Items(), remaining, height); err != nil {
				return TransferPage{}, err
			}
		}
	} else {
		// The confirmed feed only pages by number, so the offset into it is
		// rounded down to a page boundary. This is exact only when
		// pendingCount is a multiple of PageSize. Otherwise the first
		// confirmed records are served again (or never) at the seam between
		// the mixed page and the first purely confirmed one.
		confirmedPageNumber := int((offset - pendingCount) / int64(q.PageSize))

		confirmedPage, err := w.ledger.Transfers(ctx, transferRequest(q, confirmedPageNumber, q.PageSize))
		if err != nil {
			return TransferPage{}, fmt.Errorf("get confirmed transfers: %w", err)
		}
		confirmedCount = confirmedPage.Total()

		if items, err = appendConfirmed(items, confirmedPage.Items(), q.PageSize, height); err != nil {
			return TransferPage{}, err
		}
	}

	total := pendingCount + confirmedCount
	totalPages := totalPagesFor(total, q.PageSize)

	w.logs.Debugw("transfer page stitched",
		"page_number", q.PageNumber,
		"page_size", q.PageSize,
		"pending_count", pendingCount,
		"confirmed_count", confirmedCount,
		"items", len(items))

	return TransferPage{
		Items:          items,
		PageNumber:     q.PageNumber,
		PageSize:       q.PageSize,
		TotalElements:  total,
		TotalPages:     totalPages,
		PendingCount:   pendingCount,
		ConfirmedCount: confirmedCount,
		IsFirst:        q.PageNumber == 0,
		IsLast:         int64(q.PageNumber) >= totalPages-1,
	}, nil
}

func appendConfirmed(items []TransferRecord, raw []ledger.Transfer, limit int, height uint64) ([]TransferRecord, error) {
	for i, t := range raw {
		if i == limit {
			break
		}
		c, err := ConfirmedFromLedger(t)
		if err != nil {
			return nil, fmt.Errorf("map confirmed transfer: %w", err)
		}
		items = append(items, NewConfirmedRecord(c, height))
	}
	return items, nil
}

func transferRequest(q TransferQuery, pageNumber, pageSize int) ledger.PageRequest {
	req := ledger.PageRequest{
		PageNumber:     pageNumber,
		PageSize:       pageSize,
		Addresses:      hexAddresses(q.Addresses),
		TokenAddresses: hexAddresses(q.TokenAddresses),
		Direction:      ledger.DirectionDesc,
	}
	if q.TransferType != nil {
		transferType := string(*q.TransferType)
		req.TransferType = &transferType
	}
	return req
}

// totalPagesFor is never less than one, so an empty history still has a
// first (and last) page.
func totalPagesFor(total int64, pageSize int) int64 {
	pages := (total + int64(pageSize) - 1) / int64(pageSize)
	if pages < 1 {
		return 1
	}
	return pages
}
