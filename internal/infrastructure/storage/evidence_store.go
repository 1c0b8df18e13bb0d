package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/DevMartinG/selena-api/internal/application/usecase"
	"github.com/DevMartinG/selena-api/pkg/config"
)

var _ usecase.EvidenceStore = (*EvidenceStore)(nil)

// presignExpiry vigencia de las URLs firmadas de descarga de evidencias.
const presignExpiry = 15 * time.Minute

// EvidenceStore almacén de evidencias de reglas de excepción sobre MinIO
// (o cualquier servicio S3 compatible). Un solo bucket; la clave del objeto
// codifica proceso, etapa y campo.
type EvidenceStore struct {
	client *minio.Client
	bucket string
}

// NewEvidenceStore conecta con MinIO y asegura que el bucket exista.
func NewEvidenceStore(ctx context.Context, cfg config.MinioConfig) (*EvidenceStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("crear cliente minio: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("verificar bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("crear bucket %q: %w", cfg.Bucket, err)
		}
	}
	return &EvidenceStore{client: client, bucket: cfg.Bucket}, nil
}

// Put sube un objeto de evidencia.
func (s *EvidenceStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("subir evidencia %q: %w", key, err)
	}
	return nil
}

// PresignedURL devuelve una URL de descarga firmada y temporal.
func (s *EvidenceStore) PresignedURL(ctx context.Context, key string) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, presignExpiry, nil)
	if err != nil {
		return "", fmt.Errorf("firmar URL de %q: %w", key, err)
	}
	return u.String(), nil
}

// Remove elimina un objeto de evidencia.
func (s *EvidenceStore) Remove(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("eliminar evidencia %q: %w", key, err)
	}
	return nil
}
