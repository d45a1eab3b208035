package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Boletas-api/internal/application/billing"
	"github.com/jhoicas/Boletas-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BoletaUC *billing.BoletaUseCase
	// Downloads solo con el driver en memoria; con S3 la descarga va directo al bucket.
	Downloads downloadStore
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	api := app.Group("/api")

	// Boletas (público)
	boletas := api.Group("/boletas")
	boletaHandler := NewBoletaHandler(deps.BoletaUC, log)
	boletas.Post("/", boletaHandler.Generate)
	boletas.Post("/url", boletaHandler.RefreshURL)

	if deps.Downloads != nil {
		downloadHandler := NewDownloadHandler(deps.Downloads, log)
		boletas.Get("/descarga", downloadHandler.Download)
	}
}
