package http

import (
	"context"
	"errors"
	"path"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Boletas-api/internal/application/billing"
	"github.com/jhoicas/Boletas-api/internal/application/dto"
	"github.com/jhoicas/Boletas-api/internal/domain"
	"github.com/jhoicas/Boletas-api/pkg/logger"
)

// downloadStore lo implementa *objectstorage.MemoryStore. ResolveToken devuelve
// domain.ErrForbidden para tokens inválidos. Con S3 las URLs apuntan al bucket
// y esta ruta no se registra.
type downloadStore interface {
	ResolveToken(token string) (string, error)
	Get(ctx context.Context, key string) (body []byte, contentType string, err error)
}

// DownloadHandler sirve las boletas del almacenamiento local a partir de una URL firmada.
type DownloadHandler struct {
	store downloadStore
	log   *logger.Logger
}

// NewDownloadHandler construye el handler.
func NewDownloadHandler(store downloadStore, log *logger.Logger) *DownloadHandler {
	return &DownloadHandler{store: store, log: log}
}

// Download godoc
// @Summary      Descargar boleta (almacenamiento local)
// @Tags         boletas
// @Produce      application/pdf
// @Param        token  query  string  true  "token firmado de la URL de descarga"
// @Success      200
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.MessageResponse
// @Router       /api/boletas/descarga [get]
func (h *DownloadHandler) Download(c *fiber.Ctx) error {
	key, err := h.store.ResolveToken(c.Query("token"))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "token inválido o expirado"})
		}
		h.log.Error().Err(err).Str("request_id", requestID(c)).Msg("validar token de descarga")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	body, contentType, err := h.store.Get(c.Context(), key)
	if err != nil {
		h.log.Error().Err(err).Str("key", key).Msg("leer boleta")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if body == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: billing.MsgFileNotFound})
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+path.Base(key)+`"`)
	return c.Send(body)
}
