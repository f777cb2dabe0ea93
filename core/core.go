package core

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"msaforge/interfaces"
	"msaforge/model"
)

// Config is the immutable configuration for one database search run.
// Exactly one of DatabasePath (single local database) and NumChunks
// (streamed chunked database) must be set.
type Config struct {
	BinaryPath   string
	DatabaseName string
	DatabasePath string
	NumChunks    int

	NumCPU  int
	NumIter int
	EValue  float64
	DomE    float64 // 0 leaves the flag unset
	IncdomE float64
	ZValue  int64 // effective database size, 0 leaves the flag unset

	// pre-filter thresholds, values > 1.0 disable the stage
	F1, F2, F3 float64

	GetTblout bool

	// MaxConcurrency bounds the per-chunk search worker pool; the chunk
	// prefetch runs on its own reserved slot.
	MaxConcurrency int

	// OnChunkDone, if set, is called with each completed chunk index
	// (ascending, exactly once per chunk) from the orchestrating
	// goroutine after the chunk barrier.
	OnChunkDone func(chunk int)
}

func (c Config) validate() error {
	if c.DatabasePath == "" && c.NumChunks <= 0 {
		return &model.ConfigError{Reason: "either a local database path or a chunk count is required"}
	}
	if c.DatabasePath != "" && c.NumChunks > 0 {
		return &model.ConfigError{Reason: "local database path and chunk count are mutually exclusive"}
	}
	return nil
}

type core struct {
	cfg       Config
	searcher  interfaces.Searcher
	retriever interfaces.ChunkRetriever
	dbHandler interfaces.DatabaseHandler
	sync.WaitGroup
}

// New builds the search orchestrator. retriever may be nil in non-chunked
// mode, dbHandler may be nil to disable metrics.
func New(cfg Config, searcher interfaces.Searcher, retriever interfaces.ChunkRetriever, dbHandler interfaces.DatabaseHandler) (interfaces.Core, error) {
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 1
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.NumChunks > 0 && retriever == nil {
		return nil, &model.ConfigError{Reason: "chunked mode requires a chunk retriever"}
	}
	return &core{
		cfg:       cfg,
		searcher:  searcher,
		retriever: retriever,
		dbHandler: dbHandler,
	}, nil
}

func (c *core) QueryMultiple(ctx context.Context, queries []model.QueryRequest) ([][]model.SearchResult, error) {
	if len(queries) == 0 {
		return nil, nil
	}
	if c.cfg.NumChunks > 0 {
		return c.queryChunked(ctx, queries)
	}
	return c.querySingle(ctx, queries)
}

// querySingle runs every query once against the configured local database.
func (c *core) querySingle(ctx context.Context, queries []model.QueryRequest) ([][]model.SearchResult, error) {
	results := make([][]model.SearchResult, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.MaxConcurrency)
	for qi, q := range queries {
		qi, q := qi, q
		g.Go(func() error {
			res, err := c.searcher.Search(gctx, q, c.cfg.DatabasePath)
			if err != nil {
				return err
			}
			results[qi] = []model.SearchResult{res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// chunkFetch tracks one background chunk download. Its lifecycle is
// in-flight (done still open) then done (path and err valid); join is the
// only way to read the outcome.
type chunkFetch struct {
	index int
	path  string
	err   error
	done  chan struct{}
}

func (c *core) startFetch(ctx context.Context, index int) *chunkFetch {
	f := &chunkFetch{index: index, done: make(chan struct{})}
	c.Add(1)
	go func() {
		defer c.Done()
		defer close(f.done)
		f.path, f.err = c.retriever.Fetch(ctx, index)
	}()
	return f
}

func (f *chunkFetch) join() error {
	if f == nil {
		return nil
	}
	<-f.done
	return f.err
}

// queryChunked walks the chunk slots in ascending order. While the worker
// pool searches chunk i for all queries, a single prefetch of chunk i+1
// runs in true overlap; the loop only advances once both have finished.
// Any failure aborts the whole run with no partial results, after the
// in-flight prefetch has been reclaimed.
func (c *core) queryChunked(ctx context.Context, queries []model.QueryRequest) ([][]model.SearchResult, error) {
	if err := c.retriever.RemoveStale(); err != nil {
		return nil, err
	}

	events := make(chan chunkEvent, c.cfg.NumChunks)
	if c.dbHandler != nil {
		newProgressRecorder(c, events).Process()
	}
	defer c.Wait()
	defer close(events)

	results := make([][]model.SearchResult, len(queries))
	for qi := range results {
		results[qi] = make([]model.SearchResult, c.cfg.NumChunks)
	}

	current := c.startFetch(ctx, 0)
	if err := current.join(); err != nil {
		return nil, err
	}

	for i := 0; i < c.cfg.NumChunks; i++ {
		var next *chunkFetch
		if i+1 < c.cfg.NumChunks {
			next = c.startFetch(ctx, i+1)
		}

		start := time.Now()
		searchErr := c.searchChunk(ctx, queries, current.path, i, results)

		// reclaim the in-flight prefetch before surfacing anything so no
		// chunk file handle is leaked
		fetchErr := next.join()

		if err := c.retriever.Cleanup(i); err != nil {
			slog.Warn("unable to remove searched chunk", "chunk", i, "error", err)
		}
		if searchErr != nil {
			if next != nil && fetchErr == nil {
				_ = c.retriever.Cleanup(next.index)
			}
			return nil, searchErr
		}
		if fetchErr != nil {
			return nil, fetchErr
		}

		events <- chunkEvent{
			database: c.cfg.DatabaseName,
			chunk:    i,
			queries:  len(queries),
			duration: time.Since(start),
		}
		if c.cfg.OnChunkDone != nil {
			c.cfg.OnChunkDone(i)
		}
		current = next
	}
	return results, nil
}

// searchChunk fans the queries for one chunk out over the worker pool and
// waits for all of them. When one search fails the remaining dispatches
// are cancelled but already running ones are still awaited, so no orphan
// process outlives the error.
func (c *core) searchChunk(ctx context.Context, queries []model.QueryRequest, databasePath string, chunk int, results [][]model.SearchResult) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.MaxConcurrency)
	for qi, q := range queries {
		qi, q := qi, q
		g.Go(func() error {
			res, err := c.searcher.Search(gctx, q, databasePath)
			if err != nil {
				var procErr *model.ProcessError
				if errors.As(err, &procErr) {
					procErr.Chunk = chunk
				}
				return err
			}
			results[qi][chunk] = res
			return nil
		})
	}
	return g.Wait()
}
