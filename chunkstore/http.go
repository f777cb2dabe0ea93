package chunkstore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/time/rate"

	"msaforge/model"
)

// HTTPRetriever streams database chunks from an HTTP(S) mirror. A remote
// base ending in .gz is decompressed on the fly and stored plain, so
// jackhmmer always sees an uncompressed FASTA chunk.
type HTTPRetriever struct {
	localSlots
	client  *http.Client
	remote  string
	gzipped bool
	limiter *rate.Limiter
}

// NewHTTPRetriever builds a retriever for the database at remote (the
// full base URL, without a chunk suffix) storing chunks under workDir.
// rateLimit caps download throughput in bytes/sec, 0 means unlimited.
func NewHTTPRetriever(remote, workDir string, rateLimit int) *HTTPRetriever {
	base := remote
	if u, err := url.Parse(remote); err == nil && u.Path != "" {
		base = u.Path
	}
	gzipped := strings.HasSuffix(base, ".gz")
	name := strings.TrimSuffix(path.Base(base), ".gz")

	r := &HTTPRetriever{
		localSlots: localSlots{workDir: workDir, dbName: name},
		client:     &http.Client{},
		remote:     strings.TrimSuffix(remote, ".gz"),
		gzipped:    gzipped,
	}
	if rateLimit > 0 {
		r.limiter = rate.NewLimiter(rate.Limit(rateLimit), rateLimit)
	}
	return r
}

func (r *HTTPRetriever) remoteURL(index int) string {
	u := fmt.Sprintf("%s.%d", r.remote, index+1)
	if r.gzipped {
		u += ".gz"
	}
	return u
}

// Fetch downloads a chunk, overwriting any existing file in its slot. A
// failed download removes the partial file and aborts the run.
func (r *HTTPRetriever) Fetch(ctx context.Context, index int) (string, error) {
	remote := r.remoteURL(index)
	local := r.LocalPath(index)

	slog.Debug("fetching chunk", "url", remote, "local", local)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, remote, nil)
	if err != nil {
		return "", &model.RetrievalError{Chunk: index, URL: remote, Cause: err}
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return "", &model.RetrievalError{Chunk: index, URL: remote, Cause: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Error("Error closing response body", "error", err)
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return "", &model.RetrievalError{Chunk: index, URL: remote, Cause: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	if err := os.MkdirAll(r.workDir, 0o755); err != nil {
		return "", &model.RetrievalError{Chunk: index, URL: remote, Cause: err}
	}

	var src io.Reader = resp.Body
	if r.limiter != nil {
		src = &limitedReader{ctx: ctx, r: src, limiter: r.limiter}
	}
	if r.gzipped {
		gz, err := gzip.NewReader(src)
		if err != nil {
			return "", &model.RetrievalError{Chunk: index, URL: remote, Cause: err}
		}
		defer gz.Close()
		src = gz
	}

	n, err := writeChunk(local, src)
	if err != nil {
		return "", &model.RetrievalError{Chunk: index, URL: remote, Cause: err}
	}
	slog.Info("chunk fetched", "db", r.dbName, "chunk", index, "bytes", n, "took", time.Since(start))
	return local, nil
}

// writeChunk copies src to a freshly truncated file; the partial file is
// removed on any failure so a broken download never masquerades as a
// materialized chunk.
func writeChunk(local string, src io.Reader) (int64, error) {
	f, err := os.Create(local)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(f, src)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(local)
		return 0, err
	}
	return n, nil
}

// limitedReader throttles reads through a shared token bucket.
type limitedReader struct {
	ctx     context.Context
	r       io.Reader
	limiter *rate.Limiter
}

func (lr *limitedReader) Read(p []byte) (int, error) {
	if burst := lr.limiter.Burst(); len(p) > burst {
		p = p[:burst]
	}
	n, err := lr.r.Read(p)
	if n > 0 {
		if werr := lr.limiter.WaitN(lr.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}
