package driven

import (
	"context"

	"github.com/custodia-labs/snapseek-core/internal/core/domain"
)

// ImageProvider is the external image-search API.
// A single attempt per call; failures surface as *domain.ProviderError
// when the provider answered with a non-success status.
type ImageProvider interface {
	// Search fetches one page of results for a normalized term
	Search(ctx context.Context, term string, page, perPage int) (*domain.ImagePage, error)
}
