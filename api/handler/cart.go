package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/communitystore/backend/api/transport"
	"github.com/communitystore/backend/pkg/httpcontext"
	cartUC "github.com/communitystore/backend/usecase/cart"
)

type CartHandler struct {
	baseHandler
	uc *cartUC.UseCase
}

func NewCartHandler(uc *cartUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Get the current cart
// @Tags cart
// @Router /api/cart [get]
func (h *CartHandler) Get(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	cart, err := h.uc.Get(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewCartResponse(cart))
}

// @Summary Add a catalog product to the cart
// @Tags cart
// @Router /api/cart [post]
func (h *CartHandler) Add(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.AddToCartRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.ProductID == "" {
		h.respondMessage(ctx, http.StatusBadRequest, "Product ID is required")
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	quantity = clampQuantity(quantity)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	cart, err := h.uc.Add(stdCtx, userID, req.ProductID, quantity)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusCreated, transport.NewCartResponse(cart))
}

// @Summary Set the quantity of a cart line
// @Tags cart
// @Router /api/cart/{id} [patch]
func (h *CartHandler) Update(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	productID, _ := ctx.UserValue("id").(string)
	if productID == "" {
		h.respondMessage(ctx, http.StatusBadRequest, "Product ID is required")
		return
	}

	var req transport.UpdateCartRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondMessage(ctx, http.StatusBadRequest, "Invalid request data")
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	cart, err := h.uc.UpdateQuantity(stdCtx, userID, productID, quantity)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewCartResponse(cart))
}

// @Summary Remove a cart line
// @Tags cart
// @Router /api/cart/{id} [delete]
func (h *CartHandler) Remove(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	productID, _ := ctx.UserValue("id").(string)
	if productID == "" {
		h.respondMessage(ctx, http.StatusBadRequest, "Product ID is required")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	cart, err := h.uc.Remove(stdCtx, userID, productID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewCartResponse(cart))
}

// @Summary Empty the cart
// @Tags cart
// @Router /api/cart/clear [post]
func (h *CartHandler) Clear(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Clear(stdCtx, userID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewCartResponse(nil))
}

// clampQuantity bounds an add-to-cart quantity to [1, 99].
func clampQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}
	if quantity > 99 {
		return 99
	}
	return quantity
}
