package repo

import (
	"context"

	"github.com/momeni/snappauto/pkg/core/model"
)

// Search fetches the rental cars which match a query from the search
// API and returns them as domain records.
type Search interface {
	Search(ctx context.Context, q model.SearchQuery) ([]model.SearchResult, error)
}
