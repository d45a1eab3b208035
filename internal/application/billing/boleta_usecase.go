package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Boletas-api/internal/application/dto"
	"github.com/jhoicas/Boletas-api/internal/domain"
	"github.com/jhoicas/Boletas-api/internal/domain/boleta"
	"github.com/jhoicas/Boletas-api/internal/domain/entity"
)

// Mensajes visibles para el cliente.
const (
	MsgMissingGenerateFields = "Faltan campos: grupo, usuario, accion"
	MsgMissingFileKey        = "Falta el campo: fileKey"
	MsgFileNotFound          = "El archivo no existe"
	MsgBoletaGenerated       = "Boleta generada"
	MsgURLRefreshed          = "URL regenerada exitosamente"
)

// Vigencia por defecto de las URLs firmadas.
const (
	DefaultBoletaURLTTL  = 600 * time.Second
	DefaultRefreshURLTTL = 3600 * time.Second
)

// URLConfig vigencias de las URLs firmadas.
type URLConfig struct {
	BoletaTTL  time.Duration // URL devuelta al generar
	RefreshTTL time.Duration // URL devuelta al regenerar
}

// BoletaUseCase genera boletas PDF, las almacena y emite URLs de descarga firmadas.
// No guarda estado entre peticiones.
type BoletaUseCase struct {
	store     BlobStore
	generator BoletaPDFGenerator
	urls      URLConfig
	now       func() time.Time
}

// NewBoletaUseCase construye el caso de uso. TTLs en cero toman los valores por defecto.
func NewBoletaUseCase(store BlobStore, generator BoletaPDFGenerator, urls URLConfig) *BoletaUseCase {
	if urls.BoletaTTL <= 0 {
		urls.BoletaTTL = DefaultBoletaURLTTL
	}
	if urls.RefreshTTL <= 0 {
		urls.RefreshTTL = DefaultRefreshURLTTL
	}
	return &BoletaUseCase{store: store, generator: generator, urls: urls, now: time.Now}
}

// WithClock reemplaza time.Now para el timestamp de la key (tests).
func (uc *BoletaUseCase) WithClock(now func() time.Time) *BoletaUseCase {
	uc.now = now
	return uc
}

// GenerateBoleta valida la petición, dibuja el PDF, lo sube y devuelve una URL firmada.
//
// Retorna:
//   - *domain.ValidationError  si falta grupo, usuario o accion (nada se dibuja ni se sube).
//   - domain.ErrConfiguration  si no hay bucket configurado.
//   - domain.ErrDependency     si falla el dibujo, la subida o la firma.
func (uc *BoletaUseCase) GenerateBoleta(ctx context.Context, in dto.GenerateBoletaRequest) (*dto.GenerateBoletaResponse, error) {
	if err := validateGenerate(in); err != nil {
		return nil, err
	}
	bucket := uc.store.Bucket()
	if bucket == "" {
		return nil, fmt.Errorf("%w: BOLETAS_BUCKET no está configurado", domain.ErrConfiguration)
	}

	customer := entity.Customer{Name: in.Usuario.Nombre, ID: in.Usuario.ID, Email: in.Usuario.Email}
	tx := entity.Transaction{
		Name:       in.Accion.Nombre,
		Price:      in.Accion.Precio.Decimal,
		AmountPaid: in.Accion.Pagado.Decimal,

		AmountPaidLabel: in.Accion.Pagado.Label(),
	}

	// ── 1. Dibujar ────────────────────────────────────────────────────────────
	pdfBytes, err := uc.generator.GenerateBoletaPDF(ctx, customer, tx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDependency, err)
	}

	// ── 2. Subir ──────────────────────────────────────────────────────────────
	key := boleta.ObjectKey(string(in.Grupo), customer.Identifier(), uc.now())
	if err := uc.store.Put(ctx, key, pdfBytes, boleta.ContentType); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDependency, err)
	}

	// ── 3. Firmar ─────────────────────────────────────────────────────────────
	url, err := uc.store.SignedGetURL(ctx, key, uc.urls.BoletaTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDependency, err)
	}

	return &dto.GenerateBoletaResponse{
		Message:     MsgBoletaGenerated,
		URLDescarga: url,
		Bucket:      bucket,
		Key:         key,
	}, nil
}

// RefreshURL emite una URL nueva (más larga) para una boleta ya almacenada.
//
// Retorna:
//   - *domain.ValidationError  si falta fileKey.
//   - domain.ErrConfiguration  si no hay bucket configurado.
//   - domain.ErrNotFound       si el objeto no existe.
//   - domain.ErrDependency     si falla la consulta o la firma.
func (uc *BoletaUseCase) RefreshURL(ctx context.Context, in dto.RefreshURLRequest) (*dto.RefreshURLResponse, error) {
	if in.FileKey == "" {
		return nil, domain.NewValidationError(MsgMissingFileKey, "fileKey")
	}
	if uc.store.Bucket() == "" {
		return nil, fmt.Errorf("%w: BOLETAS_BUCKET no está configurado", domain.ErrConfiguration)
	}

	exists, err := uc.store.Exists(ctx, in.FileKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDependency, err)
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	url, err := uc.store.SignedGetURL(ctx, in.FileKey, uc.urls.RefreshTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDependency, err)
	}

	return &dto.RefreshURLResponse{
		Message:     MsgURLRefreshed,
		URLDescarga: url,
		Key:         in.FileKey,
	}, nil
}

// validateGenerate junta todos los campos faltantes en un solo error.
func validateGenerate(in dto.GenerateBoletaRequest) error {
	var missing []string
	if in.Grupo == "" {
		missing = append(missing, "grupo")
	}
	if in.Usuario == nil {
		missing = append(missing, "usuario")
	}
	if in.Accion == nil {
		missing = append(missing, "accion")
	}
	if len(missing) > 0 {
		return domain.NewValidationError(MsgMissingGenerateFields, missing...)
	}
	return nil
}
