package storage

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
	"github.com/fhuszti/portfolio-ms-go/internal/apperror"
	"github.com/minio/minio-go/v7"
)

var (
	ErrObjectNotFound = fmt.Errorf("object %w", apperror.ErrNotFound)
	ErrBucketNotFound = errors.New("bucket not found")
	ErrUnauthorized   = errors.New("unauthorized access to object store")
	ErrInternal       = errors.New("object store failure")
)

func mapMinioErr(err error) error {
	if err == nil {
		return nil
	}
	return mapCode(minio.ToErrorResponse(err).Code, err)
}

func mapS3Err(err error) error {
	if err == nil {
		return nil
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return mapCode(apiErr.ErrorCode(), err)
	}
	return mapCode("", err)
}

func mapCode(code string, err error) error {
	switch code {
	case "NoSuchKey", "NotFound":
		return ErrObjectNotFound
	case "NoSuchBucket":
		return ErrBucketNotFound
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return ErrUnauthorized
	default:
		// catch everything else
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
