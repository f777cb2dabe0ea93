package interfaces

import "context"

// ChunkRetriever materializes remote database chunks at deterministic
// local paths. Fetch overwrites any existing file for that slot, Cleanup
// is an idempotent delete, RemoveStale clears leftovers from prior runs.
type ChunkRetriever interface {
	Fetch(ctx context.Context, index int) (string, error)
	Cleanup(index int) error
	RemoveStale() error
}
