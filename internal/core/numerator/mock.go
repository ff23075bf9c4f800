package numerator

import (
	"context"
	"fmt"
	"sync"

	"github.com/maxgambino/tandem-inventory/internal/core/id"
)

// MockGenerator is a test implementation of Generator.
// Use in unit tests to avoid database dependencies.
type MockGenerator struct {
	NextCodeFunc func(ctx context.Context, cfg Config, restaurantID id.ID) (string, error)

	mu     sync.Mutex
	counts map[string]int64
}

// NextCode implements Generator. Without a custom func it returns predictable
// sequential codes per prefix.
func (m *MockGenerator) NextCode(ctx context.Context, cfg Config, restaurantID id.ID) (string, error) {
	if m.NextCodeFunc != nil {
		return m.NextCodeFunc(ctx, cfg, restaurantID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counts == nil {
		m.counts = make(map[string]int64)
	}
	m.counts[cfg.Prefix]++
	return fmt.Sprintf("%s-%05d", cfg.Prefix, m.counts[cfg.Prefix]), nil
}

// Ensure compile-time interface compliance.
var _ Generator = (*MockGenerator)(nil)
