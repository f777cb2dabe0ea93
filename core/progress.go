package core

import (
	"log/slog"
	"time"

	"msaforge/interfaces"
)

type chunkEvent struct {
	database string
	chunk    int
	queries  int
	duration time.Duration
}

// progressRecorder drains chunk completion events and writes them to the
// metrics DB off the orchestrating goroutine, so recording never delays
// the next chunk.
type progressRecorder struct {
	core    *core
	eventCh chan chunkEvent
}

func newProgressRecorder(c *core, evCh chan chunkEvent) interfaces.Processor {
	return &progressRecorder{core: c, eventCh: evCh}
}

func (pr *progressRecorder) Process() {
	pr.core.Add(1)
	go func() {
		defer pr.core.Done()
		for ev := range pr.eventCh {
			slog.Info("chunk complete", "db", ev.database, "chunk", ev.chunk, "took", ev.duration)
			pr.core.dbHandler.WritePoint("chunk_search",
				map[string]string{"database": ev.database},
				map[string]interface{}{
					"chunk":       ev.chunk,
					"queries":     ev.queries,
					"duration_ms": ev.duration.Milliseconds(),
				},
				time.Now())
		}
		pr.core.dbHandler.Flush()
	}()
}
