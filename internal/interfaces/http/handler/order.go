package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	appordering "github.com/orderdesk/backend/internal/application/ordering"
	"github.com/orderdesk/backend/internal/interfaces/http/dto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateOrderRequest is the order submission body. Name, price display and
// total are client-side conveniences: name and date are ignored, and the
// total is recomputed from the lines rather than trusted.
type CreateOrderRequest struct {
	CustomerName string             `json:"customerName" binding:"required"`
	Items        []OrderItemRequest `json:"items" binding:"required"`
	Total        float64            `json:"total"`
	Date         string             `json:"date"`
}

// OrderItemRequest is one requested order line
type OrderItemRequest struct {
	ID       string  `json:"id" binding:"required"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Price    float64 `json:"price" binding:"min=0"`
}

// OrderHandler serves order submission endpoints
type OrderHandler struct {
	BaseHandler
	service *appordering.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(service *appordering.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindError(c, err)
		return
	}

	lines := make([]appordering.SubmitOrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, appordering.SubmitOrderLine{
			ItemCode:  item.ID,
			Quantity:  item.Quantity,
			UnitPrice: decimal.NewFromFloat(item.Price),
		})
	}

	receipt, err := h.service.SubmitOrder(c.Request.Context(), appordering.SubmitOrderRequest{
		CustomerName: req.CustomerName,
		Lines:        lines,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OrderCreatedResponse{
		Message:    "Order created successfully",
		SapOrderID: receipt.SapOrderID,
	})
}
