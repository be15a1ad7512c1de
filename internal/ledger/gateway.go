package ledger

import (
	"context"
	"strings"
	"time"
	"walletview/internal/cache"
	"walletview/internal/retry"

	"go.uber.org/zap"
)

const (
	endpointAccountBalances = "account_balances"
	endpointMemTransfers    = "mem_transfers"
	endpointTransfers       = "transfers"
	endpointLatestHeight    = "latest_block_height"
	endpointTokens          = "tokens"
	endpointToken           = "token"
	endpointAccountSummary  = "account_summary"
	endpointRecommendedFees = "recommended_fees"
	endpointSubmit          = "submit_transaction"
)

const singletonKey = "latest"

// Gateway is the retrying, caching front of Client used by the wallet
// service. Reads run under the retry policy. Transaction submission does
// not: a submit whose answer was lost may still have reached the mempool.
type Gateway struct {
	client  *Client
	policy  retry.Policy
	metrics *Metrics
	logs    *zap.SugaredLogger

	heights *cache.TTL[string, uint64]
	fees    *cache.TTL[string, RecommendedFees]
	tokens  *cache.TTL[string, []Token]
	token   *cache.TTL[string, Token]
}

func NewGateway(logger *zap.SugaredLogger, client *Client, policy retry.Policy, metrics *Metrics) *Gateway {
	g := &Gateway{
		client:  client,
		metrics: metrics,
		logs:    logger,
		heights: cache.New[string, uint64](cache.Short),
		fees:    cache.New[string, RecommendedFees](cache.Short),
		tokens:  cache.New[string, []Token](cache.Medium),
		token:   cache.New[string, Token](cache.Long),
	}

	onRetry := policy.OnRetry
	policy.OnRetry = func(op string, attempt int, err error) {
		metrics.retried(op)
		if onRetry != nil {
			onRetry(op, attempt, err)
		}
	}
	g.policy = policy

	return g
}

func (g *Gateway) AccountBalances(ctx context.Context, req PageRequest) (*Page[AccountBalance], error) {
	return read(ctx, g, endpointAccountBalances, func(ctx context.Context) (*Page[AccountBalance], error) {
		return g.client.AccountBalances(ctx, req)
	})
}

func (g *Gateway) MemTransfers(ctx context.Context, req PageRequest) (*Page[MemTransfer], error) {
	return read(ctx, g, endpointMemTransfers, func(ctx context.Context) (*Page[MemTransfer], error) {
		return g.client.MemTransfers(ctx, req)
	})
}

func (g *Gateway) Transfers(ctx context.Context, req PageRequest) (*Page[Transfer], error) {
	return read(ctx, g, endpointTransfers, func(ctx context.Context) (*Page[Transfer], error) {
		return g.client.Transfers(ctx, req)
	})
}

func (g *Gateway) LatestBlockHeight(ctx context.Context) (uint64, error) {
	return g.heights.GetOrLoad(ctx, singletonKey, func(ctx context.Context) (uint64, error) {
		return read(ctx, g, endpointLatestHeight, g.client.LatestBlockHeight)
	})
}

func (g *Gateway) Tokens(ctx context.Context) ([]Token, error) {
	return g.tokens.GetOrLoad(ctx, singletonKey, func(ctx context.Context) ([]Token, error) {
		return read(ctx, g, endpointTokens, g.client.Tokens)
	})
}

func (g *Gateway) Token(ctx context.Context, address string) (Token, error) {
	key := strings.ToLower(address)
	return g.token.GetOrLoad(ctx, key, func(ctx context.Context) (Token, error) {
		return read(ctx, g, endpointToken, func(ctx context.Context) (Token, error) {
			return g.client.Token(ctx, key)
		})
	})
}

// AccountSummary is not cached; a stale next nonce would make the wallet
// build a transaction the mempool rejects.
func (g *Gateway) AccountSummary(ctx context.Context, address string) (AccountSummary, error) {
	return read(ctx, g, endpointAccountSummary, func(ctx context.Context) (AccountSummary, error) {
		return g.client.AccountSummary(ctx, strings.ToLower(address))
	})
}

func (g *Gateway) RecommendedFees(ctx context.Context) (RecommendedFees, error) {
	return g.fees.GetOrLoad(ctx, singletonKey, func(ctx context.Context) (RecommendedFees, error) {
		return read(ctx, g, endpointRecommendedFees, g.client.RecommendedFees)
	})
}

func (g *Gateway) SubmitTransaction(ctx context.Context, req SubmitRequest) (SubmitResponse, error) {
	start := time.Now()
	resp, err := g.client.SubmitTransaction(ctx, req)
	g.metrics.observe(endpointSubmit, time.Since(start).Seconds(), err)
	if err != nil {
		g.logs.Errorw("transaction submission failed", "error", err)
		return SubmitResponse{}, err
	}
	return resp, nil
}

func read[T any](ctx context.Context, g *Gateway, endpoint string, fn func(ctx context.Context) (T, error)) (T, error) {
	start := time.Now()
	result, err := retry.Value(ctx, g.policy, endpoint, fn)
	g.metrics.observe(endpoint, time.Since(start).Seconds(), err)
	return result, err
}
