package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxgambino/tandem-inventory/internal/domain/catalogs/attribute"
	"github.com/maxgambino/tandem-inventory/internal/infrastructure/http/v1/dto"
)

// AttributeHandler provides HTTP handlers for product attributes. Attributes
// do not fit the generic catalog shape: they carry an explicit ordering and a
// per-product value table, so the handler is hand-written.
type AttributeHandler struct {
	*BaseHandler
	service *attribute.Service
}

// NewAttributeHandler creates a new attribute handler.
func NewAttributeHandler(base *BaseHandler, service *attribute.Service) *AttributeHandler {
	return &AttributeHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /attributes - the tenant's attributes in position order.
func (h *AttributeHandler) List(c *gin.Context) {
	attrs, err := h.service.List(c.Request.Context(), h.RestaurantID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": dto.FromAttributes(attrs)})
}

// Get handles GET /attributes/:id
func (h *AttributeHandler) Get(c *gin.Context) {
	attrID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	attr, err := h.service.GetByID(c.Request.Context(), h.RestaurantID(c), attrID)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromAttribute(attr))
}

// Create handles POST /attributes
func (h *AttributeHandler) Create(c *gin.Context) {
	var req dto.CreateAttributeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	attr := req.ToEntity(h.RestaurantID(c))
	if err := h.service.Create(c.Request.Context(), attr); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromAttribute(attr))
}

// Update handles PUT /attributes/:id
func (h *AttributeHandler) Update(c *gin.Context) {
	attrID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateAttributeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	attr, err := h.service.GetByID(c.Request.Context(), h.RestaurantID(c), attrID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.ApplyTo(attr)
	if err := h.service.Update(c.Request.Context(), attr); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromAttribute(attr))
}

// Delete handles DELETE /attributes/:id - removes the attribute and all of
// its product values.
func (h *AttributeHandler) Delete(c *gin.Context) {
	attrID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), h.RestaurantID(c), attrID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Reorder handles PUT /attributes/reorder - rewrites the tenant's complete
// attribute ordering in one call.
func (h *AttributeHandler) Reorder(c *gin.Context) {
	var req dto.ReorderAttributesRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ids, err := req.ParseIDs()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Reorder(c.Request.Context(), h.RestaurantID(c), ids); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "attributes reordered")
}

// Assign handles POST /attributes/:id/assign - sets a typed value for one
// product, replacing any existing one.
func (h *AttributeHandler) Assign(c *gin.Context) {
	attrID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.AssignAttributeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	input, err := req.ToInput(attrID)
	if err != nil {
		h.Error(c, err)
		return
	}

	value, err := h.service.Assign(c.Request.Context(), input)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromProductValue(value))
}

// Unassign handles DELETE /attributes/product/:productId/:attrId
func (h *AttributeHandler) Unassign(c *gin.Context) {
	attrID, ok := h.ParseID(c, "attrId")
	if !ok {
		return
	}
	productID, ok := h.ParseID(c, "productId")
	if !ok {
		return
	}

	if err := h.service.Unassign(c.Request.Context(), h.RestaurantID(c), productID, attrID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListByProduct handles GET /attributes/product/:productId - the attributes
// of one product joined with their values.
func (h *AttributeHandler) ListByProduct(c *gin.Context) {
	productID, ok := h.ParseID(c, "productId")
	if !ok {
		return
	}

	rows, err := h.service.ListByProduct(c.Request.Context(), h.RestaurantID(c), productID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.FromProductAttributes(rows)})
}
