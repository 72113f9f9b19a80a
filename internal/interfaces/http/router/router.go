package router

import (
	"github.com/gin-gonic/gin"
	"github.com/orderdesk/backend/internal/interfaces/http/handler"
)

// Handlers bundles everything the router mounts
type Handlers struct {
	Catalog *handler.CatalogHandler
	Order   *handler.OrderHandler
	System  *handler.SystemHandler
}

// Register mounts all API routes under /api
func Register(engine *gin.Engine, h Handlers) {
	api := engine.Group("/api")
	{
		api.GET("/ping", h.System.Ping)
		api.GET("/health", h.System.Health)
		api.GET("/items", h.Catalog.ListItems)
		api.POST("/orders", h.Order.CreateOrder)
	}
}
