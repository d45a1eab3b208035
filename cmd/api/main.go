package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Boletas-api/docs"
	"github.com/jhoicas/Boletas-api/internal/application/billing"
	"github.com/jhoicas/Boletas-api/internal/infrastructure/objectstorage"
	infrapdf "github.com/jhoicas/Boletas-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/Boletas-api/internal/interfaces/http"
	"github.com/jhoicas/Boletas-api/pkg/config"
	"github.com/jhoicas/Boletas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:        cfg.App.Env,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	defer log.Close()
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Almacenamiento: S3 en producción, memoria para desarrollo local
	var (
		store     billing.BlobStore
		downloads *objectstorage.MemoryStore
	)
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		if cfg.Storage.SigningSecret == "" {
			log.Fatal().Msg("DOWNLOAD_SIGNING_SECRET es obligatorio con STORAGE_DRIVER=memory")
		}
		downloads = objectstorage.NewMemoryStore(objectstorage.MemoryConfig{
			Bucket:        cfg.Storage.Bucket,
			BaseURL:       cfg.HTTP.PublicBaseURL,
			SigningSecret: cfg.Storage.SigningSecret,
			Issuer:        cfg.App.Name,
		})
		defer downloads.Close()
		store = downloads
	default:
		if cfg.Storage.Bucket == "" {
			// No es fatal: cada petición responde 500 con error de configuración.
			log.Warn().Msg("BOLETAS_BUCKET no está configurado")
		}
		s3Store, err := objectstorage.NewS3Store(ctx, objectstorage.S3Config{
			Bucket:          cfg.Storage.Bucket,
			Region:          cfg.Storage.Region,
			Endpoint:        cfg.Storage.Endpoint,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			ForcePathStyle:  cfg.Storage.ForcePathStyle,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("cliente S3")
		}
		store = s3Store
	}

	// PDF: boleta electrónica de la reserva
	pdfGenerator := infrapdf.NewBoletaGenerator()
	boletaUC := billing.NewBoletaUseCase(store, pdfGenerator, billing.URLConfig{
		BoletaTTL:  cfg.Boletas.URLTTL,
		RefreshTTL: cfg.Boletas.RefreshURLTTL,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.AccessLog(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Boletas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	deps := httpRouter.RouterDeps{
		BoletaUC: boletaUC,
		Log:      log,
	}
	if downloads != nil {
		deps.Downloads = downloads
	}
	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
