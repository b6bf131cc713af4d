package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/communitystore/backend/api/transport"
	"github.com/communitystore/backend/internal/infrastructure/monitor"
	"github.com/communitystore/backend/pkg/httpcontext"
)

type HealthHandler struct {
	baseHandler
	monitor *monitor.Monitor
	port    int
}

func NewHealthHandler(mon *monitor.Monitor, port int, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		monitor:     mon,
		port:        port,
	}
}

// @Summary Health check
// @Tags health
// @Router /api/health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	status := h.monitor.GetStatus()
	resp := transport.HealthResponse{
		Success: true,
		Message: "Server is running",
		Port:    h.port,
		Backend: status.Backend,
		Online:  status.Online,
	}
	if !status.LastCheck.IsZero() {
		resp.LastCheck = status.LastCheck.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	h.respondJSON(ctx, http.StatusOK, resp)
}
