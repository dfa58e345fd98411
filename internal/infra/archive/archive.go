// Package archive keeps raw provider payloads in a gocloud.dev blob bucket.
package archive

import (
	"context"
	"log/slog"

	"wearsync/config"
	"wearsync/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

type bucketArchive struct {
	bucket *blob.Bucket
}

// NewBucketArchive wraps an opened bucket as a PayloadArchive.
func NewBucketArchive(bucket *blob.Bucket) service.PayloadArchive {
	return &bucketArchive{bucket: bucket}
}

func (a *bucketArchive) Store(ctx context.Context, key string, payload []byte) error {
	err := a.bucket.WriteAll(ctx, key, payload, &blob.WriterOptions{ContentType: "application/json"})

	return errors.Wrapf(err, "archive %s", key)
}

// Params holds dependencies for the archive, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket. With no bucket URL the archive is disabled and nil is returned.
func New(params Params) (service.PayloadArchive, error) {
	cfg := params.Config.Archive
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Payload archive not configured, raw payloads are discarded")

		return nil, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open archive bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Payload archive opened", slog.String("bucket_url", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBucketArchive(bucket), nil
}

// Module provides the payload archive FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
