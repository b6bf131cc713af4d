package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/communitystore/backend/api/transport"
	"github.com/communitystore/backend/pkg/httpcontext"
	settingsUC "github.com/communitystore/backend/usecase/settings"
)

type ProfileHandler struct {
	baseHandler
	uc *settingsUC.UseCase
}

func NewProfileHandler(uc *settingsUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Current account details
// @Tags profile
// @Router /api/me [get]
func (h *ProfileHandler) Me(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	user, err := h.uc.GetProfile(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.MeResponse{
		Success: true,
		User:    transport.NewUserPayload(user),
	})
}

// @Summary Update account settings
// @Tags profile
// @Router /api/profile [patch]
func (h *ProfileHandler) Update(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.ProfileUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondMessage(ctx, http.StatusBadRequest, "Invalid request data")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	user, token, err := h.uc.UpdateProfile(stdCtx, userID, settingsUC.Changes{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Bio:      req.Bio,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.AuthResponse{
		Success: true,
		Message: "Profile updated successfully",
		Token:   token,
		User:    transport.NewUserPayload(user),
	})
}
