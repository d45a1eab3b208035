package objectstorage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/storage/memory/v2"

	"github.com/jhoicas/Boletas-api/internal/domain"
	pkgjwt "github.com/jhoicas/Boletas-api/pkg/jwt"
)

// DownloadPath ruta HTTP que sirve los objetos del store en memoria.
const DownloadPath = "/api/boletas/descarga"

// Cada entrada guarda "<content-type>\x00<body>" bajo la key del objeto.
const entrySep = 0x00

// MemoryConfig store local: los PDFs viven en el proceso y las URLs firmadas son tokens JWT
// que apuntan a DownloadPath en BaseURL.
type MemoryConfig struct {
	Bucket        string
	BaseURL       string
	SigningSecret string
	Issuer        string
}

// MemoryStore implementa billing.BlobStore sin dependencias externas, para desarrollo y pruebas.
type MemoryStore struct {
	cfg     MemoryConfig
	storage *memory.Storage
	now     func() time.Time
}

// NewMemoryStore crea el store vacío.
func NewMemoryStore(cfg MemoryConfig) *MemoryStore {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &MemoryStore{
		cfg:     cfg,
		storage: memory.New(memory.Config{GCInterval: time.Minute}),
		now:     time.Now,
	}
}

func (s *MemoryStore) Bucket() string { return s.cfg.Bucket }

// Put guarda el objeto sin expiración.
func (s *MemoryStore) Put(_ context.Context, key string, body []byte, contentType string) error {
	if key == "" {
		return fmt.Errorf("memoria: key vacía")
	}
	if strings.IndexByte(contentType, entrySep) >= 0 {
		return fmt.Errorf("memoria: content-type inválido para %s", key)
	}
	entry := make([]byte, 0, len(contentType)+1+len(body))
	entry = append(entry, contentType...)
	entry = append(entry, entrySep)
	entry = append(entry, body...)
	if err := s.storage.Set(key, entry, 0); err != nil {
		return fmt.Errorf("memoria: guardar %s: %w", key, err)
	}
	return nil
}

// Exists indica si la key fue guardada.
func (s *MemoryStore) Exists(_ context.Context, key string) (bool, error) {
	entry, err := s.storage.Get(key)
	if err != nil {
		return false, fmt.Errorf("memoria: consultar %s: %w", key, err)
	}
	return entry != nil, nil
}

// Get devuelve el objeto y su content-type; body nil si no existe.
func (s *MemoryStore) Get(_ context.Context, key string) (body []byte, contentType string, err error) {
	entry, err := s.storage.Get(key)
	if err != nil {
		return nil, "", fmt.Errorf("memoria: leer %s: %w", key, err)
	}
	if entry == nil {
		return nil, "", nil
	}
	ct, body, ok := bytes.Cut(entry, []byte{entrySep})
	if !ok {
		return nil, "", fmt.Errorf("memoria: entrada corrupta %s", key)
	}
	return body, string(ct), nil
}

// SignedGetURL arma BaseURL + DownloadPath + ?token=<jwt con key y expiración>.
func (s *MemoryStore) SignedGetURL(_ context.Context, key string, ttl time.Duration) (string, error) {
	tok, err := pkgjwt.GenerateDownload(s.cfg.SigningSecret, s.cfg.Issuer, s.cfg.Bucket, key, s.now(), ttl)
	if err != nil {
		return "", fmt.Errorf("memoria: firmar URL de %s: %w", key, err)
	}
	return s.cfg.BaseURL + DownloadPath + "?token=" + url.QueryEscape(tok), nil
}

// ResolveToken valida un token emitido por SignedGetURL y devuelve la key que autoriza.
// Un token vencido, alterado o de otro bucket es domain.ErrForbidden.
func (s *MemoryStore) ResolveToken(token string) (string, error) {
	bucket, key, err := pkgjwt.ParseDownload(s.cfg.SigningSecret, token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrForbidden, err)
	}
	if bucket != s.cfg.Bucket {
		return "", fmt.Errorf("%w: token de otro bucket", domain.ErrForbidden)
	}
	return key, nil
}

// Close libera el recolector de expirados.
func (s *MemoryStore) Close() error { return s.storage.Close() }
