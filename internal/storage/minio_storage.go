package storage

import (
	"bytes"
	"context"
	"io"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioStorage struct {
	client minioClient
	cfg    Config
}

// compile-time check: *MinioStorage must satisfy port.ObjectStore
var _ port.ObjectStore = (*MinioStorage)(nil)

func NewMinioStorage(cfg Config) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	return &MinioStorage{client: client, cfg: cfg}, nil
}

func (s *MinioStorage) InitBuckets(ctx context.Context) error {
	for _, bucket := range s.cfg.buckets() {
		ok, err := s.client.BucketExists(ctx, bucket)
		if err != nil {
			return mapMinioErr(err)
		}
		if ok {
			continue
		}
		logger.Infof(ctx, "bucket %q does not exist, creating it...", bucket)
		if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: s.cfg.Region}); err != nil {
			return mapMinioErr(err)
		}
	}
	return nil
}

func (s *MinioStorage) Upload(ctx context.Context, in port.UploadObjectInput) (port.StoredObject, error) {
	bucket := s.cfg.bucketFor(in.Kind)
	logger.Infof(ctx, "saving file %q into bucket %q...", in.Key, bucket)

	_, err := s.client.PutObject(ctx, bucket, in.Key, bytes.NewReader(in.Data), int64(len(in.Data)), minio.PutObjectOptions{
		ContentType: in.ContentType,
	})
	if err != nil {
		return port.StoredObject{}, mapMinioErr(err)
	}

	return port.StoredObject{
		URL:        s.cfg.publicURL(s.cfg.baseEndpoint(), bucket, in.Key),
		ExternalID: in.Key,
		Dimensions: probeDimensions(in.Kind, in.Data),
	}, nil
}

func (s *MinioStorage) Remove(ctx context.Context, kind model.Kind, externalID string) error {
	bucket := s.cfg.bucketFor(kind)
	logger.Infof(ctx, "removing file %q from bucket %q...", externalID, bucket)

	return mapMinioErr(s.client.RemoveObject(ctx, bucket, externalID, minio.RemoveObjectOptions{}))
}

func (s *MinioStorage) GetFile(ctx context.Context, kind model.Kind, externalID string) (io.ReadCloser, error) {
	bucket := s.cfg.bucketFor(kind)
	logger.Infof(ctx, "getting file %q from bucket %q...", externalID, bucket)

	obj, err := s.client.GetObject(ctx, bucket, externalID, minio.GetObjectOptions{})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	return obj, nil
}
