package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Boletas-api/internal/application/billing"
	"github.com/jhoicas/Boletas-api/internal/application/dto"
	"github.com/jhoicas/Boletas-api/internal/domain"
	"github.com/jhoicas/Boletas-api/pkg/logger"
)

// Mensajes de las respuestas 500.
const (
	msgGenerateFailed = "Error generando boleta"
	msgRefreshFailed  = "Error regenerando URL"
)

// BoletaHandler maneja la generación de boletas y la regeneración de URLs (público).
type BoletaHandler struct {
	uc  *billing.BoletaUseCase
	log *logger.Logger
}

// NewBoletaHandler construye el handler.
func NewBoletaHandler(uc *billing.BoletaUseCase, log *logger.Logger) *BoletaHandler {
	return &BoletaHandler{uc: uc, log: log}
}

// Generate godoc
// @Summary      Generar boleta
// @Description  Dibuja la boleta PDF de la acción, la guarda en el bucket y devuelve una URL firmada (10 min).
// @Tags         boletas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateBoletaRequest  true  "grupo, usuario {nombre, id|email}, accion {nombre, precio, pagado}"
// @Success      200   {object}  dto.GenerateBoletaResponse
// @Failure      400   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.FailureResponse
// @Router       /api/boletas [post]
func (h *BoletaHandler) Generate(c *fiber.Ctx) error {
	in, err := dto.DecodeGenerateBoleta(c.Body())
	if err != nil {
		return h.fail(c, msgGenerateFailed, err)
	}
	out, err := h.uc.GenerateBoleta(c.Context(), in)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: verr.Message})
		}
		return h.fail(c, msgGenerateFailed, err)
	}
	h.log.Info().
		Str("request_id", requestID(c)).
		Str("key", out.Key).
		Msg("boleta generada")
	return c.Status(fiber.StatusOK).JSON(out)
}

// RefreshURL godoc
// @Summary      Regenerar URL de descarga
// @Description  Verifica que la boleta exista y emite una URL firmada nueva (1 hora).
// @Tags         boletas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RefreshURLRequest  true  "fileKey devuelto al generar"
// @Success      200   {object}  dto.RefreshURLResponse
// @Failure      400   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.MessageResponse
// @Failure      500   {object}  dto.FailureResponse
// @Router       /api/boletas/url [post]
func (h *BoletaHandler) RefreshURL(c *fiber.Ctx) error {
	in, err := dto.DecodeRefreshURL(c.Body())
	if err != nil {
		return h.fail(c, msgRefreshFailed, err)
	}
	out, err := h.uc.RefreshURL(c.Context(), in)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: verr.Message})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: billing.MsgFileNotFound})
		}
		return h.fail(c, msgRefreshFailed, err)
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// fail registra el error completo y responde 500 con el mensaje genérico más el texto del error.
func (h *BoletaHandler) fail(c *fiber.Ctx, message string, err error) error {
	h.log.Error().
		Err(err).
		Str("request_id", requestID(c)).
		Str("path", c.Path()).
		Bool("config", errors.Is(err, domain.ErrConfiguration)).
		Msg(message)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.FailureResponse{Message: message, Error: err.Error()})
}
