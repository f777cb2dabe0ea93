package chunkstore

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"msaforge/model"
)

// S3Retriever fetches database chunks from an S3 bucket, for databases
// configured with an s3://bucket/key path.
type S3Retriever struct {
	localSlots
	downloader *manager.Downloader
	bucket     string
	key        string
}

func NewS3Retriever(client *s3.Client, bucket, key, workDir string) *S3Retriever {
	return &S3Retriever{
		localSlots: localSlots{workDir: workDir, dbName: path.Base(key)},
		downloader: manager.NewDownloader(client),
		bucket:     bucket,
		key:        key,
	}
}

func (r *S3Retriever) Fetch(ctx context.Context, index int) (string, error) {
	key := fmt.Sprintf("%s.%d", r.key, index+1)
	local := r.LocalPath(index)
	remote := fmt.Sprintf("s3://%s/%s", r.bucket, key)

	if err := os.MkdirAll(r.workDir, 0o755); err != nil {
		return "", &model.RetrievalError{Chunk: index, URL: remote, Cause: err}
	}
	f, err := os.Create(local)
	if err != nil {
		return "", &model.RetrievalError{Chunk: index, URL: remote, Cause: err}
	}

	start := time.Now()
	n, err := r.downloader.Download(ctx, f, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(local)
		return "", &model.RetrievalError{Chunk: index, URL: remote, Cause: err}
	}
	slog.Info("chunk fetched", "db", r.dbName, "chunk", index, "bytes", n, "took", time.Since(start))
	return local, nil
}
