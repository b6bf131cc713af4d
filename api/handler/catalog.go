package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/communitystore/backend/api/transport"
	"github.com/communitystore/backend/internal/catalog"
	"github.com/communitystore/backend/pkg/httpcontext"
)

type CatalogHandler struct {
	baseHandler
	catalog *catalog.Store
}

func NewCatalogHandler(cat *catalog.Store, adapter *httpcontext.Adapter, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		baseHandler: newBaseHandler(adapter, logger),
		catalog:     cat,
	}
}

// @Summary List the full catalog
// @Tags catalog
// @Router /api/catalog [get]
func (h *CatalogHandler) Catalog(ctx *fasthttp.RequestCtx) {
	h.respondJSON(ctx, http.StatusOK, transport.CatalogResponse{
		Success: true,
		Items:   transport.NewCatalogItems(h.catalog.GetAll()),
	})
}

// @Summary Substring search over the catalog
// @Tags catalog
// @Router /api/search [get]
func (h *CatalogHandler) Search(ctx *fasthttp.RequestCtx) {
	query := string(ctx.QueryArgs().Peek("q"))
	if query == "" {
		h.respondMessage(ctx, http.StatusBadRequest, "Search query is required")
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.SearchResponse{
		Success: true,
		Query:   query,
		Results: transport.NewCatalogItems(h.catalog.Search(query)),
	})
}
