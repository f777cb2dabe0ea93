package interfaces

import (
	"context"

	"msaforge/model"
)

// Searcher runs one query against one already materialized database file.
type Searcher interface {
	Search(ctx context.Context, query model.QueryRequest, databasePath string) (model.SearchResult, error)
}
