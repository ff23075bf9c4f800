package dto

import (
	"github.com/maxgambino/tandem-inventory/internal/core/apperror"
	"github.com/maxgambino/tandem-inventory/internal/core/id"
)

// parseOptionalID parses an optional UUID string field. Empty or absent
// values map to nil.
func parseOptionalID(s *string, field string) (*id.ID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	parsed, err := id.Parse(*s)
	if err != nil {
		return nil, apperror.NewValidation("invalid uuid format").
			WithDetail("field", field).
			WithDetail("value", *s)
	}
	return &parsed, nil
}

func formatOptionalID(v *id.ID) *string {
	if v == nil {
		return nil
	}
	s := v.String()
	return &s
}
