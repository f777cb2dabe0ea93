package interfaces

import (
	"context"

	"msaforge/model"
)

// Core orchestrates searches for a set of queries against one database.
// The returned slice is indexed by query, each entry ordered by ascending
// chunk index (length 1 in non-chunked mode). On any failure no results
// are returned.
type Core interface {
	QueryMultiple(ctx context.Context, queries []model.QueryRequest) ([][]model.SearchResult, error)
}

type Processor interface {
	Process()
}
