// Package storage provides object storage backends for receipt attachments.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/opsportal/backend/internal/infrastructure/config"
)

// AttachmentStore abstracts where receipt files live
type AttachmentStore interface {
	Put(ctx context.Context, key string, data io.Reader, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// NewAttachmentStore builds the store selected by the configuration
func NewAttachmentStore(cfg *config.StorageConfig) (AttachmentStore, error) {
	switch cfg.Provider {
	case "s3":
		return NewS3AttachmentStore(&cfg.S3)
	case "local":
		return NewLocalAttachmentStore(cfg.LocalPath)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}

// NewReceiptKey builds a storage key for an expense receipt,
// partitioned by upload date.
func NewReceiptKey(expenseID uuid.UUID, filename string) string {
	return fmt.Sprintf("receipts/%s/%s-%s", time.Now().Format("2006/01"), expenseID, filename)
}
