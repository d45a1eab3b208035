package billing

import (
	"context"
	"time"

	"github.com/jhoicas/Boletas-api/internal/domain/entity"
)

// BlobStore almacenamiento de objetos donde viven las boletas (S3 o memoria).
// Exists devuelve (false, nil) solo cuando el objeto no existe; cualquier otra falla es error.
type BlobStore interface {
	Bucket() string
	Put(ctx context.Context, key string, body []byte, contentType string) error
	Exists(ctx context.Context, key string) (bool, error)
	SignedGetURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// BoletaPDFGenerator dibuja la boleta y devuelve el PDF completo.
type BoletaPDFGenerator interface {
	GenerateBoletaPDF(ctx context.Context, customer entity.Customer, tx entity.Transaction) ([]byte, error)
}
