package chunkstore

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msaforge/model"
)

func chunkServer(t *testing.T, chunks map[string][]byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, ok := chunks[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPRetriever_Fetch(t *testing.T) {
	srv := chunkServer(t, map[string][]byte{
		"/latest/uniref90.fasta.1": []byte(">s1\nMKV\n"),
		"/latest/uniref90.fasta.2": []byte(">s2\nLAA\n"),
	})
	workDir := t.TempDir()
	r := NewHTTPRetriever(srv.URL+"/latest/uniref90.fasta", workDir, 0)

	local, err := r.Fetch(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(workDir, "uniref90.fasta.1"), local, "slot 0 maps to 1-based file suffix")

	data, err := os.ReadFile(local)
	require.NoError(t, err)
	assert.Equal(t, ">s1\nMKV\n", string(data))
}

func TestHTTPRetriever_FetchOverwrites(t *testing.T) {
	srv := chunkServer(t, map[string][]byte{
		"/db.fasta.1": []byte("fresh"),
	})
	workDir := t.TempDir()
	r := NewHTTPRetriever(srv.URL+"/db.fasta", workDir, 0)

	require.NoError(t, os.WriteFile(r.LocalPath(0), []byte("stale content much longer than fresh"), 0o644))

	local, err := r.Fetch(context.Background(), 0)
	require.NoError(t, err)
	data, err := os.ReadFile(local)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(data))
}

func TestHTTPRetriever_FetchNotFound(t *testing.T) {
	srv := chunkServer(t, nil)
	r := NewHTTPRetriever(srv.URL+"/db.fasta", t.TempDir(), 0)

	_, err := r.Fetch(context.Background(), 3)
	var retrievalErr *model.RetrievalError
	require.ErrorAs(t, err, &retrievalErr)
	assert.Equal(t, 3, retrievalErr.Chunk)
	assert.NoFileExists(t, r.LocalPath(3))
}

func TestHTTPRetriever_FetchGzip(t *testing.T) {
	var compressed bytes.Buffer
	gz := gzip.NewWriter(&compressed)
	_, err := gz.Write([]byte(">s1\nMKV\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	srv := chunkServer(t, map[string][]byte{
		"/db.fasta.1.gz": compressed.Bytes(),
	})
	workDir := t.TempDir()
	r := NewHTTPRetriever(srv.URL+"/db.fasta.gz", workDir, 0)

	local, err := r.Fetch(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(workDir, "db.fasta.1"), local, "stored decompressed without the .gz suffix")

	data, err := os.ReadFile(local)
	require.NoError(t, err)
	assert.Equal(t, ">s1\nMKV\n", string(data))
}

func TestHTTPRetriever_RateLimited(t *testing.T) {
	srv := chunkServer(t, map[string][]byte{
		"/db.fasta.1": bytes.Repeat([]byte("x"), 4096),
	})
	r := NewHTTPRetriever(srv.URL+"/db.fasta", t.TempDir(), 1<<20)

	local, err := r.Fetch(context.Background(), 0)
	require.NoError(t, err)
	info, err := os.Stat(local)
	require.NoError(t, err)
	assert.Equal(t, int64(4096), info.Size())
}

func TestLocalSlots_CleanupIdempotent(t *testing.T) {
	workDir := t.TempDir()
	slots := localSlots{workDir: workDir, dbName: "db.fasta"}

	require.NoError(t, os.WriteFile(slots.LocalPath(0), []byte("x"), 0o644))
	assert.NoError(t, slots.Cleanup(0))
	assert.NoError(t, slots.Cleanup(0), "removing a missing chunk is not an error")
	assert.NoFileExists(t, slots.LocalPath(0))
}

func TestLocalSlots_RemoveStale(t *testing.T) {
	workDir := t.TempDir()
	slots := localSlots{workDir: workDir, dbName: "db.fasta"}

	require.NoError(t, os.WriteFile(slots.LocalPath(0), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(slots.LocalPath(5), []byte("x"), 0o644))
	other := filepath.Join(workDir, "other.fasta.1")
	require.NoError(t, os.WriteFile(other, []byte("x"), 0o644))

	require.NoError(t, slots.RemoveStale())
	assert.NoFileExists(t, slots.LocalPath(0))
	assert.NoFileExists(t, slots.LocalPath(5))
	assert.FileExists(t, other, "only this database's chunks are removed")
}

func TestResolveMirror(t *testing.T) {
	good := chunkServer(t, map[string][]byte{"/db.fasta.1": []byte("x")})
	bad := chunkServer(t, nil)

	t.Run("first reachable mirror wins", func(t *testing.T) {
		pattern := "{mirror}/db.fasta"
		base := ResolveMirror(context.Background(), good.Client(), pattern, []string{bad.URL, good.URL})
		assert.Equal(t, good.URL+"/db.fasta", base)
	})

	t.Run("falls back to default on total failure", func(t *testing.T) {
		pattern := bad.URL + "{mirror}/db.fasta"
		base := ResolveMirror(context.Background(), bad.Client(), pattern, []string{"-eu", "-asia"})
		assert.Equal(t, bad.URL+"/db.fasta", base)
	})

	t.Run("pattern without placeholder is unchanged", func(t *testing.T) {
		base := ResolveMirror(context.Background(), http.DefaultClient, "https://example.org/db.fasta", []string{"-eu"})
		assert.Equal(t, "https://example.org/db.fasta", base)
	})
}
