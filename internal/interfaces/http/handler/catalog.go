package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orderdesk/backend/internal/application/catalog"
	"go.uber.org/zap"
)

// CatalogHandler serves catalog read endpoints
type CatalogHandler struct {
	BaseHandler
	service *catalog.ItemService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(service *catalog.ItemService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ListItems handles GET /api/items. The response body is the bare item
// array, no envelope.
func (h *CatalogHandler) ListItems(c *gin.Context) {
	items, err := h.service.ListItems(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
