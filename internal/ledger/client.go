package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	userAgent       = "walletview-client"
	apiKeyHeader    = "X-API-Key"
	maxResponseSize = 16 << 20
	maxErrorBody    = 512
)

const (
	pathAccountBalances = "/api/v1/account-balance/page/bulk"
	pathMemTransfers    = "/api/v1/mem-transfer/page/bulk"
	pathTransfers       = "/api/v1/transfer/page/bulk"
	pathLatestHeight    = "/api/v1/blockchain/latest-block-height"
	pathTokens          = "/api/v1/token"
	pathAccountSummary  = "/api/v1/account/%s/summary"
	pathRecommendedFees = "/api/v1/mempool/recommended-fees"
	pathSubmit          = "/api/v1/mempool/submit"
)

var ErrEmptyResponse = errors.New("empty response body")

// StatusError is returned when the node answered with a non-2xx status.
// A received answer is final and never retried.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: node responded with status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

// Client speaks the node's REST API. It performs exactly one HTTP exchange
// per call.
type Client struct {
	baseURL *url.URL
	apiKey  string
	http    HTTPDoer
}

func NewClient(baseURL, apiKey string, doer HTTPDoer) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse node url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("node url %q must be absolute", baseURL)
	}

	return &Client{
		baseURL: u,
		apiKey:  apiKey,
		http:    doer,
	}, nil
}

// NewHTTPClient returns a pooled client whose timeout bounds one exchange
// with the node, including reading the body.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 20,
			MaxConnsPerHost:     50,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

func (c *Client) AccountBalances(ctx context.Context, req PageRequest) (*Page[AccountBalance], error) {
	return postPage[AccountBalance](ctx, c, pathAccountBalances, req)
}

func (c *Client) MemTransfers(ctx context.Context, req PageRequest) (*Page[MemTransfer], error) {
	return postPage[MemTransfer](ctx, c, pathMemTransfers, req)
}

func (c *Client) Transfers(ctx context.Context, req PageRequest) (*Page[Transfer], error) {
	return postPage[Transfer](ctx, c, pathTransfers, req)
}

func (c *Client) LatestBlockHeight(ctx context.Context) (uint64, error) {
	body, err := c.exchange(ctx, http.MethodGet, pathLatestHeight, nil)
	if err != nil {
		return 0, err
	}
	if len(body) == 0 {
		return 0, fmt.Errorf("latest block height: %w", ErrEmptyResponse)
	}

	height, err := strconv.ParseUint(strings.Trim(string(body), "\" \n\r\t"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse latest block height: %w", err)
	}
	return height, nil
}

func (c *Client) Tokens(ctx context.Context) ([]Token, error) {
	var tokens []Token
	if err := c.getJSON(ctx, pathTokens, &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

func (c *Client) Token(ctx context.Context, address string) (Token, error) {
	var token Token
	if err := c.getJSON(ctx, pathTokens+"/"+url.PathEscape(address), &token); err != nil {
		return Token{}, err
	}
	return token, nil
}

func (c *Client) AccountSummary(ctx context.Context, address string) (AccountSummary, error) {
	var summary AccountSummary
	if err := c.getJSON(ctx, fmt.Sprintf(pathAccountSummary, url.PathEscape(address)), &summary); err != nil {
		return AccountSummary{}, err
	}
	return summary, nil
}

func (c *Client) RecommendedFees(ctx context.Context) (RecommendedFees, error) {
	var fees RecommendedFees
	if err := c.getJSON(ctx, pathRecommendedFees, &fees); err != nil {
		return RecommendedFees{}, err
	}
	return fees, nil
}

func (c *Client) SubmitTransaction(ctx context.Context, req SubmitRequest) (SubmitResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return SubmitResponse{}, fmt.Errorf("encode submit request: %w", err)
	}

	body, err := c.exchange(ctx, http.MethodPost, pathSubmit, payload)
	if err != nil {
		return SubmitResponse{}, err
	}

	var resp SubmitResponse
	if err := decode(body, &resp); err != nil {
		return SubmitResponse{}, fmt.Errorf("decode submit response: %w", err)
	}
	return resp, nil
}

func postPage[T any](ctx context.Context, c *Client, path string, req PageRequest) (*Page[T], error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode page request: %w", err)
	}

	body, err := c.exchange(ctx, http.MethodPost, path, payload)
	if err != nil {
		return nil, err
	}

	// an empty or null body leaves page nil
	var page *Page[T]
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("decode %s page: %w", path, err)
	}
	return page, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.exchange(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := decode(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func decode(body []byte, out any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return ErrEmptyResponse
	}
	return json.Unmarshal(body, out)
}

func (c *Client) exchange(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	endpoint := c.baseURL.String() + path

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text := string(body)
		if len(text) > maxErrorBody {
			text = text[:maxErrorBody]
		}
		return nil, &StatusError{
			Method: method,
			Path:   path,
			Code:   resp.StatusCode,
			Body:   text,
		}
	}

	return body, nil
}
