package dto

import (
	"time"

	"github.com/maxgambino/tandem-inventory/internal/core/apperror"
	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/domain/catalogs/attribute"
)

// CreateAttributeRequest is the request body for creating an attribute.
type CreateAttributeRequest struct {
	Name string `json:"name" binding:"required"`
	Kind string `json:"kind" binding:"required"`
}

// ToEntity converts DTO to domain entity. Position is assigned by the service.
func (r *CreateAttributeRequest) ToEntity(restaurantID id.ID) *attribute.Attribute {
	return attribute.New(restaurantID, r.Name, attribute.Kind(r.Kind))
}

// UpdateAttributeRequest is the request body for renaming an attribute.
// Kind and position are fixed after creation; use reorder for positions.
type UpdateAttributeRequest struct {
	Name    string `json:"name" binding:"required"`
	Version int    `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateAttributeRequest) ApplyTo(attr *attribute.Attribute) {
	attr.Name = r.Name
	attr.Version = r.Version
}

// ReorderAttributesRequest carries the complete new ordering of a
// restaurant's attributes.
type ReorderAttributesRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

// ParseIDs converts the ordered id strings to typed ids.
func (r *ReorderAttributesRequest) ParseIDs() ([]id.ID, error) {
	ids := make([]id.ID, 0, len(r.IDs))
	for _, raw := range r.IDs {
		parsed, err := id.Parse(raw)
		if err != nil {
			return nil, apperror.NewValidation("invalid uuid format").
				WithDetail("field", "ids").
				WithDetail("value", raw)
		}
		ids = append(ids, parsed)
	}
	return ids, nil
}

// AssignAttributeRequest carries a raw value to attach to a product. Exactly
// one value field should be set, matching the attribute kind.
type AssignAttributeRequest struct {
	ProductID   string     `json:"productId" binding:"required"`
	ValueText   *string    `json:"valueText"`
	ValueNumber *float64   `json:"valueNumber"`
	ValueDate   *time.Time `json:"valueDate"`
}

// ToInput builds the service input for one product/attribute pair.
func (r *AssignAttributeRequest) ToInput(attributeID id.ID) (attribute.AssignInput, error) {
	productID, err := id.Parse(r.ProductID)
	if err != nil {
		return attribute.AssignInput{}, apperror.NewValidation("invalid uuid format").
			WithDetail("field", "productId").
			WithDetail("value", r.ProductID)
	}
	return attribute.AssignInput{
		ProductID:   productID,
		AttributeID: attributeID,
		ValueText:   r.ValueText,
		ValueNumber: r.ValueNumber,
		ValueDate:   r.ValueDate,
	}, nil
}

// AttributeResponse is the response body for an attribute.
type AttributeResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Kind         string `json:"kind"`
	Position     int    `json:"position"`
	DeletionMark bool   `json:"deletionMark"`
	Version      int    `json:"version"`
}

// FromAttribute creates response DTO from domain entity.
func FromAttribute(attr *attribute.Attribute) *AttributeResponse {
	return &AttributeResponse{
		ID:           attr.ID.String(),
		Name:         attr.Name,
		Kind:         string(attr.Kind),
		Position:     attr.Position,
		DeletionMark: attr.DeletionMark,
		Version:      attr.Version,
	}
}

// FromAttributes maps a list of attributes.
func FromAttributes(attrs []*attribute.Attribute) []*AttributeResponse {
	out := make([]*AttributeResponse, 0, len(attrs))
	for _, attr := range attrs {
		out = append(out, FromAttribute(attr))
	}
	return out
}

// ProductValueResponse is one typed value attached to a product.
type ProductValueResponse struct {
	ID          string     `json:"id"`
	ProductID   string     `json:"productId"`
	AttributeID string     `json:"attributeId"`
	ValueText   *string    `json:"valueText,omitempty"`
	ValueNumber *float64   `json:"valueNumber,omitempty"`
	ValueDate   *time.Time `json:"valueDate,omitempty"`
}

// FromProductValue creates response DTO from domain entity.
func FromProductValue(v *attribute.ProductValue) *ProductValueResponse {
	return &ProductValueResponse{
		ID:          v.ID.String(),
		ProductID:   v.ProductID.String(),
		AttributeID: v.AttributeID.String(),
		ValueText:   v.ValueText,
		ValueNumber: v.ValueNumber,
		ValueDate:   v.ValueDate,
	}
}

// ProductAttributeResponse is an attribute joined with its value for one product.
type ProductAttributeResponse struct {
	AttributeResponse
	Value ProductValueResponse `json:"value"`
}

// FromProductAttributes maps the joined attribute/value rows of one product.
func FromProductAttributes(rows []*attribute.ProductAttribute) []*ProductAttributeResponse {
	out := make([]*ProductAttributeResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, &ProductAttributeResponse{
			AttributeResponse: *FromAttribute(&row.Attribute),
			Value:             *FromProductValue(&row.Value),
		})
	}
	return out
}
