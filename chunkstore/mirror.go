package chunkstore

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const mirrorProbeTimeout = 10 * time.Second

// ResolveMirror substitutes each mirror suffix into the "{mirror}"
// placeholder of pathPattern and returns the first candidate whose first
// chunk answers a HEAD request. When every mirror fails the default
// (empty suffix) is used. A pattern without the placeholder is returned
// as is.
func ResolveMirror(ctx context.Context, client *http.Client, pathPattern string, mirrors []string) string {
	if !strings.Contains(pathPattern, "{mirror}") {
		return pathPattern
	}
	for _, mirror := range mirrors {
		candidate := strings.ReplaceAll(pathPattern, "{mirror}", mirror)
		if probeMirror(ctx, client, candidate+".1") {
			slog.Info("Using mirror", "base", candidate)
			return candidate
		}
		slog.Debug("mirror probe failed", "base", candidate)
	}
	slog.Warn("All mirrors failed, using default mirror")
	return strings.ReplaceAll(pathPattern, "{mirror}", "")
}

func probeMirror(ctx context.Context, client *http.Client, probeURL string) bool {
	ctx, cancel := context.WithTimeout(ctx, mirrorProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, probeURL, nil)
	if err != nil {
		return false
	}
	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
