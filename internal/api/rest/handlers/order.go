package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/CameronXie/eth-order-api/internal/api/rest/requestid"
	"github.com/CameronXie/eth-order-api/internal/api/rest/response"
	"github.com/CameronXie/eth-order-api/internal/apperror"
	"github.com/CameronXie/eth-order-api/internal/order"
)

const (
	// MaxOrderBodyBytes caps the order request body at 100 KiB.
	MaxOrderBodyBytes = 100 << 10

	jsonMediaType = "application/json"
)

// OrderValidator validates a decoded order payload.
type OrderValidator interface {
	Validate(payload order.Payload) (*order.Request, error)
}

// OrderHandler accepts order submissions and acknowledges valid ones with a generated order id.
// Nothing is persisted; each call is independent of every other.
type OrderHandler struct {
	validator   OrderValidator
	idGenerator order.IDGenerator
	responder   *response.ErrorResponder
	logger      *slog.Logger
}

// ServeHTTP handles POST /api/order. Bodies are only parsed when sent as application/json;
// any other body is left unread and the order is validated as if no fields were sent.
func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := requestid.Logger(ctx, h.logger)

	payload := order.Payload{}
	if contentType := r.Header.Get("Content-Type"); isJSONContentType(contentType) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxOrderBodyBytes))
		if err != nil {
			h.responder.Respond(w, r, apperror.Internal(fmt.Errorf("read order body: %w", err)))
			return
		}

		logger.InfoContext(ctx, "order_received", "body", string(body))

		if payload, err = order.DecodePayload(body); err != nil {
			h.responder.Respond(w, r, apperror.Internal(err))
			return
		}
	} else {
		logger.InfoContext(ctx, "order_received", "content_type", contentType)
	}

	req, err := h.validator.Validate(payload)
	if err != nil {
		h.responder.Respond(w, r, err)
		return
	}

	orderID := h.idGenerator.Generate()
	logger.InfoContext(
		ctx,
		"order_accepted",
		"order_id", orderID,
		"email", req.Email,
		"wallet_address", req.WalletAddress,
		"amount_eth", req.AmountETH,
	)

	response.JSONResponse(w, http.StatusOK, order.Result{Success: true, OrderID: orderID})
}

// isJSONContentType reports whether a Content-Type header names application/json, ignoring case and parameters.
func isJSONContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == jsonMediaType
}

// NewOrderHandler creates the order endpoint handler.
func NewOrderHandler(
	validator OrderValidator,
	idGenerator order.IDGenerator,
	responder *response.ErrorResponder,
	logger *slog.Logger,
) http.Handler {
	return &OrderHandler{
		validator:   validator,
		idGenerator: idGenerator,
		responder:   responder,
		logger:      logger,
	}
}
