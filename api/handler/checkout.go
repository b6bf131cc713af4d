package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/communitystore/backend/api/transport"
	"github.com/communitystore/backend/pkg/httpcontext"
	checkoutUC "github.com/communitystore/backend/usecase/checkout"
)

type CheckoutHandler struct {
	baseHandler
	uc *checkoutUC.UseCase
}

func NewCheckoutHandler(uc *checkoutUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Convert the cart into an order
// @Tags checkout
// @Router /api/checkout [post]
func (h *CheckoutHandler) Checkout(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.CheckoutRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondMessage(ctx, http.StatusBadRequest, "Invalid request data")
		return
	}
	if len(req.ShippingAddress) == 0 || req.PaymentMethod == nil {
		h.respondMessage(ctx, http.StatusBadRequest, "Shipping address and payment method are required")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	order, err := h.uc.Checkout(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	payload := transport.NewOrderPayload(*order)
	payload.ShippingAddress = req.ShippingAddress
	payload.PaymentSummary = maskPayment(req.PaymentMethod)

	h.respondJSON(ctx, http.StatusOK, transport.CheckoutResponse{
		Success: true,
		Message: "Checkout successful",
		Order:   payload,
	})
}

// @Summary List past orders
// @Tags checkout
// @Router /api/purchase-history [get]
func (h *CheckoutHandler) History(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	orders, err := h.uc.History(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	resp := transport.HistoryResponse{Success: true, History: []transport.OrderPayload{}}
	for _, order := range orders {
		resp.History = append(resp.History, transport.NewOrderPayload(order))
	}
	h.respondJSON(ctx, http.StatusOK, resp)
}

// maskPayment keeps only the last four digits of a card number and the
// cardholder name. The full number is never stored or echoed.
func maskPayment(method *transport.PaymentMethod) *transport.PaymentSummary {
	if method == nil {
		return nil
	}
	summary := &transport.PaymentSummary{CardholderName: method.CardholderName}
	if n := len(method.CardNumber); n > 4 {
		summary.Last4 = method.CardNumber[n-4:]
	}
	return summary
}
