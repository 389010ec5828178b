package collector

import (
	"context"

	"BacBoSentinel/internal/model"
)

// Fetcher defines the interface for fetching the latest round results.
// Implementations return outcomes oldest first.
type Fetcher interface {
	FetchLatestOutcomes(ctx context.Context) ([]model.Outcome, error)
	Name() string
}
