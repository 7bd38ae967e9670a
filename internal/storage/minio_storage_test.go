package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/fhuszti/portfolio-ms-go/internal/apperror"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"

	"github.com/minio/minio-go/v7"
)

type mockMinio struct {
	bucketExistsFn func(ctx context.Context, bucketName string) (bool, error)
	makeBucketFn   func(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	putObjectFn    func(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	removeObjectFn func(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	getObjectFn    func(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (*minio.Object, error)
}

func (m *mockMinio) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return m.bucketExistsFn(ctx, bucketName)
}
func (m *mockMinio) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return m.makeBucketFn(ctx, bucketName, opts)
}
func (m *mockMinio) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return m.putObjectFn(ctx, bucketName, objectName, reader, size, opts)
}
func (m *mockMinio) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	return m.removeObjectFn(ctx, bucketName, objectName, opts)
}
func (m *mockMinio) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (*minio.Object, error) {
	return m.getObjectFn(ctx, bucketName, objectName, opts)
}

func TestMinioStorage_InitBuckets(t *testing.T) {
	tests := []struct {
		name      string
		existing  map[string]bool
		existsErr error
		makeErr   error
		wantMade  []string
		wantErr   error
	}{
		{
			name:     "both buckets exist",
			existing: map[string]bool{"photos": true, "videos": true},
		},
		{
			name:     "missing bucket gets created",
			existing: map[string]bool{"photos": true},
			wantMade: []string{"videos"},
		},
		{
			name:      "BucketExists error is mapped",
			existsErr: minio.ErrorResponse{Code: "AccessDenied"},
			wantErr:   ErrUnauthorized,
		},
		{
			name:     "MakeBucket error is mapped",
			existing: map[string]bool{},
			makeErr:  errors.New("make fail"),
			wantMade: []string{"photos"},
			wantErr:  ErrInternal,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var made []string
			mock := &mockMinio{
				bucketExistsFn: func(_ context.Context, bucketName string) (bool, error) {
					return tc.existing[bucketName], tc.existsErr
				},
				makeBucketFn: func(_ context.Context, bucketName string, _ minio.MakeBucketOptions) error {
					made = append(made, bucketName)
					return tc.makeErr
				},
			}
			s := &MinioStorage{client: mock, cfg: testConfig()}

			err := s.InitBuckets(context.Background())
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("error = %v; want %v", err, tc.wantErr)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(made) != len(tc.wantMade) {
				t.Fatalf("made buckets %v; want %v", made, tc.wantMade)
			}
			for i := range made {
				if made[i] != tc.wantMade[i] {
					t.Errorf("made[%d] = %q; want %q", i, made[i], tc.wantMade[i])
				}
			}
		})
	}
}

func TestMinioStorage_Upload(t *testing.T) {
	data := pngBytes(t, 12, 8)
	var gotBucket, gotKey, gotType string
	var gotSize int64

	mock := &mockMinio{
		putObjectFn: func(_ context.Context, bucketName, objectName string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
			gotBucket, gotKey, gotSize, gotType = bucketName, objectName, size, opts.ContentType
			_, _ = io.Copy(io.Discard, reader)
			return minio.UploadInfo{}, nil
		},
	}
	s := &MinioStorage{client: mock, cfg: testConfig()}

	obj, err := s.Upload(context.Background(), port.UploadObjectInput{
		Kind:        model.KindPhoto,
		Key:         "portfolio/photos/a.png",
		ContentType: "image/png",
		Data:        data,
	})
	if err != nil {
		t.Fatalf("Upload() error: %v", err)
	}
	if gotBucket != "photos" || gotKey != "portfolio/photos/a.png" || gotType != "image/png" || gotSize != int64(len(data)) {
		t.Errorf("PutObject got bucket=%q key=%q type=%q size=%d", gotBucket, gotKey, gotType, gotSize)
	}
	if obj.URL != "http://localhost:9000/photos/portfolio/photos/a.png" {
		t.Errorf("URL = %q", obj.URL)
	}
	if obj.ExternalID != "portfolio/photos/a.png" {
		t.Errorf("ExternalID = %q", obj.ExternalID)
	}
	if obj.Dimensions == nil || obj.Dimensions.Width != 12 || obj.Dimensions.Height != 8 {
		t.Errorf("Dimensions = %+v", obj.Dimensions)
	}
}

func TestMinioStorage_Upload_VideoBucketAndError(t *testing.T) {
	var gotBucket string
	mock := &mockMinio{
		putObjectFn: func(_ context.Context, bucketName, _ string, _ io.Reader, _ int64, _ minio.PutObjectOptions) (minio.UploadInfo, error) {
			gotBucket = bucketName
			return minio.UploadInfo{}, minio.ErrorResponse{Code: "NoSuchBucket"}
		},
	}
	s := &MinioStorage{client: mock, cfg: testConfig()}

	_, err := s.Upload(context.Background(), port.UploadObjectInput{Kind: model.KindVideo, Key: "portfolio/videos/a.mp4", Data: []byte("x")})
	if !errors.Is(err, ErrBucketNotFound) {
		t.Fatalf("error = %v; want ErrBucketNotFound", err)
	}
	if gotBucket != "videos" {
		t.Errorf("bucket = %q; want videos", gotBucket)
	}
}

func TestMinioStorage_Remove(t *testing.T) {
	mock := &mockMinio{
		removeObjectFn: func(_ context.Context, bucketName, objectName string, _ minio.RemoveObjectOptions) error {
			if bucketName != "videos" || objectName != "portfolio/videos/a.mp4" {
				t.Errorf("RemoveObject(%q, %q)", bucketName, objectName)
			}
			return minio.ErrorResponse{Code: "NoSuchKey"}
		},
	}
	s := &MinioStorage{client: mock, cfg: testConfig()}

	err := s.Remove(context.Background(), model.KindVideo, "portfolio/videos/a.mp4")
	if !errors.Is(err, ErrObjectNotFound) || !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("error = %v; want ErrObjectNotFound", err)
	}
}

func TestMinioStorage_GetFile_Error(t *testing.T) {
	mock := &mockMinio{
		getObjectFn: func(_ context.Context, _, _ string, _ minio.GetObjectOptions) (*minio.Object, error) {
			return nil, errors.New("network down")
		},
	}
	s := &MinioStorage{client: mock, cfg: testConfig()}

	if _, err := s.GetFile(context.Background(), model.KindPhoto, "k"); !errors.Is(err, ErrInternal) {
		t.Fatalf("error = %v; want ErrInternal", err)
	}
}

func TestMapMinioErr(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{"NoSuchKey", ErrObjectNotFound},
		{"NoSuchBucket", ErrBucketNotFound},
		{"AccessDenied", ErrUnauthorized},
		{"InvalidAccessKeyId", ErrUnauthorized},
		{"SignatureDoesNotMatch", ErrUnauthorized},
		{"SlowDown", ErrInternal},
	}
	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			if got := mapMinioErr(minio.ErrorResponse{Code: tc.code}); !errors.Is(got, tc.want) {
				t.Errorf("mapMinioErr(%s) = %v; want %v", tc.code, got, tc.want)
			}
		})
	}
	if mapMinioErr(nil) != nil {
		t.Error("nil error must stay nil")
	}
}
