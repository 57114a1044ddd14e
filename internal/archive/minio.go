package archive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/you-humble/cimco-parts/internal/converter"
	"github.com/you-humble/cimco-parts/internal/model"
)

type Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type ObjectStore interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
	MakeBucket(ctx context.Context, bucket string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucket, object string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type Converter interface {
	RunSummaryToPayload(s *model.RunSummary) ([]byte, error)
}

type archiver struct {
	client ObjectStore
	conv   Converter
	bucket string
	region string

	mu    sync.Mutex
	ready bool
}

func NewMinioClient(cfg Config) (*minio.Client, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("archive endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("archive access key and secret key are required")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}
	return client, nil
}

func NewArchiver(client ObjectStore, conv Converter, bucket, region string) *archiver {
	if region == "" {
		region = "us-east-1"
	}
	return &archiver{client: client, conv: conv, bucket: bucket, region: region}
}

// Archive stores the summary as runs/<yyyy-mm-dd>/<run_id>.json.
func (a *archiver) Archive(ctx context.Context, summary *model.RunSummary) error {
	const op = "archive.minio.Archive"

	if summary == nil || summary.RunID == "" {
		return fmt.Errorf("%s: %w: run id is required", op, model.ErrInvalidArgument)
	}

	if err := a.ensureBucket(ctx); err != nil {
		return fmt.Errorf("%s: ensure bucket: %w", op, err)
	}

	payload, err := a.conv.RunSummaryToPayload(summary)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = a.client.PutObject(ctx, a.bucket, ObjectKey(summary), bytes.NewReader(payload), int64(len(payload)),
		minio.PutObjectOptions{ContentType: converter.ContentTypeJSON})
	if err != nil {
		return fmt.Errorf("%s: put object: %w", op, err)
	}

	return nil
}

func ObjectKey(s *model.RunSummary) string {
	return fmt.Sprintf("runs/%s/%s.json", s.StartedAt.UTC().Format("2006-01-02"), s.RunID)
}

// ensureBucket retries on the next call after a failure.
func (a *archiver) ensureBucket(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.ready {
		return nil
	}

	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return err
	}
	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{Region: a.region}); err != nil {
			return err
		}
	}

	a.ready = true
	return nil
}
