package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

// S3Storage talks to AWS S3 or any S3-compatible endpoint (R2, MinIO gateway...).
type S3Storage struct {
	client s3Client
	cfg    Config
}

// compile-time check: *S3Storage must satisfy port.ObjectStore
var _ port.ObjectStore = (*S3Storage)(nil)

func NewS3Storage(ctx context.Context, cfg Config) (*S3Storage, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.baseEndpoint())
			o.UsePathStyle = true
		}
	})
	return &S3Storage{client: client, cfg: cfg}, nil
}

func (s *S3Storage) InitBuckets(ctx context.Context) error {
	for _, bucket := range s.cfg.buckets() {
		_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
		if err == nil {
			continue
		}
		if !isMissingBucket(err) {
			return mapS3Err(err)
		}

		logger.Infof(ctx, "bucket %q does not exist, creating it...", bucket)
		in := &s3.CreateBucketInput{Bucket: aws.String(bucket)}
		// us-east-1 rejects an explicit location constraint
		if s.cfg.Region != "" && s.cfg.Region != "us-east-1" {
			in.CreateBucketConfiguration = &types.CreateBucketConfiguration{
				LocationConstraint: types.BucketLocationConstraint(s.cfg.Region),
			}
		}
		if _, err := s.client.CreateBucket(ctx, in); err != nil {
			return mapS3Err(err)
		}
	}
	return nil
}

func (s *S3Storage) Upload(ctx context.Context, in port.UploadObjectInput) (port.StoredObject, error) {
	bucket := s.cfg.bucketFor(in.Kind)
	logger.Infof(ctx, "saving file %q into bucket %q...", in.Key, bucket)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(in.Key),
		Body:          bytes.NewReader(in.Data),
		ContentLength: aws.Int64(int64(len(in.Data))),
		ContentType:   aws.String(in.ContentType),
	})
	if err != nil {
		return port.StoredObject{}, mapS3Err(err)
	}

	return port.StoredObject{
		URL:        s.objectURL(bucket, in.Key),
		ExternalID: in.Key,
		Dimensions: probeDimensions(in.Kind, in.Data),
	}, nil
}

func (s *S3Storage) Remove(ctx context.Context, kind model.Kind, externalID string) error {
	bucket := s.cfg.bucketFor(kind)
	logger.Infof(ctx, "removing file %q from bucket %q...", externalID, bucket)

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(externalID),
	})
	return mapS3Err(err)
}

func (s *S3Storage) GetFile(ctx context.Context, kind model.Kind, externalID string) (io.ReadCloser, error) {
	bucket := s.cfg.bucketFor(kind)
	logger.Infof(ctx, "getting file %q from bucket %q...", externalID, bucket)

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(externalID),
	})
	if err != nil {
		return nil, mapS3Err(err)
	}
	return out.Body, nil
}

func (s *S3Storage) objectURL(bucket, key string) string {
	if s.cfg.PublicURL == "" && s.cfg.Endpoint == "" {
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, s.cfg.Region, key)
	}
	return s.cfg.publicURL(s.cfg.baseEndpoint(), bucket, key)
}

func isMissingBucket(err error) bool {
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && (apiErr.ErrorCode() == "NotFound" || apiErr.ErrorCode() == "NoSuchBucket")
}
