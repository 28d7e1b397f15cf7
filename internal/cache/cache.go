package cache

import (
	"context"
	"time"
)

// DefinitionCache stores serialized dictionary lookups keyed by word.
type DefinitionCache interface {
	// GetDefinition returns the cached payload and whether it was present.
	GetDefinition(ctx context.Context, word string) ([]byte, bool, error)
	SetDefinition(ctx context.Context, word string, data []byte, ttl time.Duration) error
}
