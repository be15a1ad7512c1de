package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"walletview/internal/core"
	"walletview/internal/http/handler/middleware"
	"walletview/internal/http/payload"

	"go.uber.org/zap"
)

var (
	GetBalances        = "GET /api/core/v1/wallet/balances"
	GetTransfers       = "GET /api/core/v1/wallet/transfers"
	GetTokens          = "GET /api/core/v1/wallet/tokens"
	GetToken           = "GET /api/core/v1/wallet/token"
	GetNextNonce       = "GET /api/core/v1/wallet/next-nonce"
	GetRecommendedFees = "GET /api/core/v1/wallet/mempool-recommended-fees"
	SubmitTransaction  = "POST /api/core/v1/wallet/submit-tx"
)

type WalletHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	wallet           WalletService
}

func NewWalletHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, walletService WalletService) *WalletHandler {
	return &WalletHandler{
		logs:             logger,
		requestValidator: requestValidator,
		wallet:           walletService,
	}
}

func (h *WalletHandler) HandleGetBalances(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	balancesRequest := payload.NewBalancesRequest(r.URL.Query())
	if err := balancesRequest.Validate(); err != nil {
		h.badRequest(w, "Could not retrieve balances", fmt.Errorf("validate request: %w", err), GetBalances, requestId)
		return
	}

	addresses, tokenAddresses := balancesRequest.ToCore()
	balances, err := h.wallet.Balances(r.Context(), addresses, tokenAddresses)
	if err != nil {
		h.fail(w, "Could not retrieve balances", err, GetBalances, requestId)
		return
	}

	h.logs.Infow("balances retrieved",
		"addresses", len(addresses),
		"balances", len(balances),
		"handler", GetBalances,
		"request_id", requestId)

	h.respond(w, Response{Data: payload.NewBalanceViews(balances)}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetTransfers(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	transfersRequest, err := payload.NewTransfersRequest(r.URL.Query())
	if err == nil {
		err = transfersRequest.Validate()
	}
	if err != nil {
		h.badRequest(w, "Could not retrieve transfers", fmt.Errorf("validate request: %w", err), GetTransfers, requestId)
		return
	}

	page, err := h.wallet.Transfers(r.Context(), transfersRequest.ToCore())
	if err != nil {
		h.fail(w, "Could not retrieve transfers", err, GetTransfers, requestId)
		return
	}

	h.logs.Infow("transfers page retrieved",
		"page_number", page.PageNumber,
		"items", len(page.Items),
		"pending", page.PendingCount,
		"confirmed", page.ConfirmedCount,
		"handler", GetTransfers,
		"request_id", requestId)

	h.respond(w, Response{Data: payload.NewTransferPageView(page)}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetTokens(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	tokens, err := h.wallet.Tokens(r.Context())
	if err != nil {
		h.fail(w, "Could not retrieve tokens", err, GetTokens, requestId)
		return
	}

	h.respond(w, Response{Data: payload.NewTokenViews(tokens)}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetToken(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	addressRequest := payload.AddressRequest{Address: r.URL.Query().Get("address")}
	if err := addressRequest.Validate(); err != nil {
		h.badRequest(w, "Could not retrieve token", fmt.Errorf("validate request: %w", err), GetToken, requestId)
		return
	}

	token, err := h.wallet.Token(r.Context(), addressRequest.ToCore())
	if err != nil {
		h.fail(w, "Could not retrieve token", err, GetToken, requestId)
		return
	}

	h.respond(w, Response{Data: payload.NewTokenView(token)}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetNextNonce(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	addressRequest := payload.AddressRequest{Address: r.URL.Query().Get("address")}
	if err := addressRequest.Validate(); err != nil {
		h.badRequest(w, "Could not retrieve nonce", fmt.Errorf("validate request: %w", err), GetNextNonce, requestId)
		return
	}

	nonce, err := h.wallet.NextNonce(r.Context(), addressRequest.ToCore())
	if err != nil {
		h.fail(w, "Could not retrieve nonce", err, GetNextNonce, requestId)
		return
	}

	h.respond(w, Response{Data: payload.NonceView{
		Address:   addressRequest.Address,
		NextNonce: nonce,
	}}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleGetRecommendedFees(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	fees, err := h.wallet.RecommendedFees(r.Context())
	if err != nil {
		h.fail(w, "Could not retrieve fees", err, GetRecommendedFees, requestId)
		return
	}

	h.respond(w, Response{Data: payload.NewFeesView(fees)}, http.StatusOK, requestId)
}

func (h *WalletHandler) HandleSubmitTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var submitRequest payload.SubmitTxRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &submitRequest); err != nil {
		h.badRequest(w, "Could not submit transaction", fmt.Errorf("invalid request payload: %w", err), SubmitTransaction, requestId)
		return
	}

	rawTx, err := submitRequest.RawTx()
	if err != nil {
		h.badRequest(w, "Could not submit transaction", fmt.Errorf("decode hex data: %w", err), SubmitTransaction, requestId)
		return
	}

	result, err := h.wallet.SubmitTransaction(r.Context(), rawTx)
	if err != nil {
		h.fail(w, "Could not submit transaction", err, SubmitTransaction, requestId)
		return
	}

	h.logs.Infow("transaction submitted",
		"status", result.Status,
		"accepted", result.Accepted(),
		"handler", SubmitTransaction,
		"request_id", requestId)

	h.respond(w, Response{Data: payload.NewSubmitView(result)}, http.StatusOK, requestId)
}

func (h *WalletHandler) badRequest(w http.ResponseWriter, message string, err error, handler, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   err.Error(),
	}, http.StatusBadRequest,
		requestId)
	h.logs.Errorw("failed to validate request",
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

// fail maps a service error to a status. Upstream failures are logged in
// full but the caller only sees a generic text.
func (h *WalletHandler) fail(w http.ResponseWriter, message string, err error, handler, requestId string) {
	resp := Response{
		Message: message,
	}

	var httpCode int
	switch {
	case errors.Is(err, core.ErrTokenNotFound):
		httpCode = http.StatusNotFound
		resp.Error = core.ErrTokenNotFound.Error()
	case errors.Is(err, core.ErrInvalidPage),
		errors.Is(err, core.ErrInvalidPageSize),
		errors.Is(err, core.ErrEmptyTransaction):
		httpCode = http.StatusBadRequest
		resp.Error = err.Error()
	default:
		httpCode = http.StatusInternalServerError
		resp.Error = "unexpected error occurred"
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"status", httpCode,
		"handler", handler,
		"request_id", requestId)
}

func (h *WalletHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
