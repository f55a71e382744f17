package util

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sunthewhat/easy-cert-form/type/shared"
)

// ObjectStore is the subset of *minio.Client used by the archive.
type ObjectStore interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	FPutObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// MinIOArchiver copies generated certificates into a bucket.
type MinIOArchiver struct {
	store  ObjectStore
	bucket string
}

func InitMinIO(cfg *shared.Config) (*MinIOArchiver, error) {
	if !cfg.ArchiveEnabled() {
		return nil, fmt.Errorf("MinIO configuration is incomplete")
	}

	client, err := minio.New(cfg.MinIoEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIoAccessKey, cfg.MinIoSecretKey, ""),
		Secure: cfg.MinIoSecure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	slog.Info("MinIO archive enabled", "endpoint", cfg.MinIoEndpoint, "bucket", cfg.MinIoBucket)
	return NewMinIOArchiver(client, cfg.MinIoBucket), nil
}

func NewMinIOArchiver(store ObjectStore, bucket string) *MinIOArchiver {
	return &MinIOArchiver{
		store:  store,
		bucket: bucket,
	}
}

// Archive uploads the image and the document under certificates/<id>/.
func (a *MinIOArchiver) Archive(ctx context.Context, artifact *shared.CertificateArtifact) error {
	exists, err := a.store.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		err = a.store.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	uploads := []struct {
		path        string
		contentType string
	}{
		{artifact.ImagePath, imageContentTypes[artifact.ImageFormat]},
		{artifact.DocumentPath, "application/pdf"},
	}

	for _, upload := range uploads {
		objectName := fmt.Sprintf("certificates/%s/%s", artifact.CertificateId, filepath.Base(upload.path))
		_, err := a.store.FPutObject(ctx, a.bucket, objectName, upload.path, minio.PutObjectOptions{
			ContentType: upload.contentType,
		})
		if err != nil {
			return fmt.Errorf("failed to upload file: %w", err)
		}
	}

	slog.Info("Certificate archived", "cert_id", artifact.CertificateId, "bucket", a.bucket)
	return nil
}
