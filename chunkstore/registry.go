package chunkstore

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"msaforge/config"
	"msaforge/interfaces"
)

// Factory builds a retriever for one configured database.
type Factory func(ctx context.Context, db config.DatabaseConfig, rt config.RuntimeConfig) (interfaces.ChunkRetriever, error)

var (
	retrieverRegistry = make(map[string]Factory)
	mu                sync.RWMutex
)

func Register(scheme string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	retrieverRegistry[scheme] = factory
}

func init() {
	Register("http", newHTTPFromConfig)
	Register("https", newHTTPFromConfig)
	Register("s3", newS3FromConfig)
}

// ForDatabase picks a retriever backend from the database path scheme.
func ForDatabase(ctx context.Context, db config.DatabaseConfig, rt config.RuntimeConfig) (interfaces.ChunkRetriever, error) {
	u, err := url.Parse(db.Path)
	if err != nil {
		return nil, fmt.Errorf("database %s: bad path: %w", db.Name, err)
	}
	mu.RLock()
	factory, ok := retrieverRegistry[u.Scheme]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("database %s: no chunk retriever for scheme %q", db.Name, u.Scheme)
	}
	return factory(ctx, db, rt)
}

func newHTTPFromConfig(_ context.Context, db config.DatabaseConfig, rt config.RuntimeConfig) (interfaces.ChunkRetriever, error) {
	return NewHTTPRetriever(db.Path, rt.WorkDir, rt.RateLimit), nil
}

func newS3FromConfig(ctx context.Context, db config.DatabaseConfig, rt config.RuntimeConfig) (interfaces.ChunkRetriever, error) {
	u, err := url.Parse(db.Path)
	if err != nil {
		return nil, err
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("database %s: aws config: %w", db.Name, err)
	}
	client := s3.NewFromConfig(awsCfg)
	return NewS3Retriever(client, u.Host, strings.TrimPrefix(u.Path, "/"), rt.WorkDir), nil
}
