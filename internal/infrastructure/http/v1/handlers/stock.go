package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxgambino/tandem-inventory/internal/core/apperror"
	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/domain/stock"
	"github.com/maxgambino/tandem-inventory/internal/infrastructure/http/v1/dto"
)

// StockHandler provides the stock view and the movement intake endpoints.
type StockHandler struct {
	*BaseHandler
	service *stock.Service
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(base *BaseHandler, service *stock.Service) *StockHandler {
	return &StockHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Items handles GET /stock/items - the dense product × location grid.
func (h *StockHandler) Items(c *gin.Context) {
	views, err := h.service.StockView(c.Request.Context(), h.RestaurantID(c))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.FromItemViews(views)})
}

// RecordMovement handles POST /stock/movements - validates a candidate
// movement and appends it to the ledger.
func (h *StockHandler) RecordMovement(c *gin.Context) {
	var req dto.RecordMovementRequest
	if !h.BindJSON(c, &req) {
		return
	}

	input, err := req.ToInput(h.RestaurantID(c))
	if err != nil {
		h.Error(c, err)
		return
	}

	movement, err := h.service.RecordMovement(c.Request.Context(), input)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromMovement(movement))
}

// History handles GET /stock/movements?productId=... - the ledger entries of
// one product, newest first.
func (h *StockHandler) History(c *gin.Context) {
	productStr := c.Query("productId")
	if productStr == "" {
		h.Error(c, apperror.NewValidation("productId query parameter is required").
			WithDetail("field", "productId"))
		return
	}
	productID, err := id.Parse(productStr)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid productId format").
			WithDetail("value", productStr))
		return
	}

	filter := stock.HistoryFilter{
		Limit:  h.ParseIntQuery(c, "limit", 50),
		Offset: h.ParseIntQuery(c, "offset", 0),
	}

	if locStr := c.Query("locationId"); locStr != "" {
		locID, err := id.Parse(locStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid locationId format").
				WithDetail("value", locStr))
			return
		}
		filter.LocationID = &locID
	}

	if typeStr := c.Query("type"); typeStr != "" {
		movementType := stock.MovementType(typeStr)
		if !movementType.IsValid() {
			h.Error(c, apperror.NewValidation("unknown movement type").
				WithDetail("value", typeStr))
			return
		}
		filter.Type = &movementType
	}

	movements, err := h.service.MovementHistory(c.Request.Context(), h.RestaurantID(c), productID, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.FromMovements(movements)})
}
