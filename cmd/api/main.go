package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-admin/internal/application/catalogo"
	"github.com/jhoicas/inventario-admin/internal/application/factura"
	"github.com/jhoicas/inventario-admin/internal/application/session"
	"github.com/jhoicas/inventario-admin/internal/application/vendedor"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/backend"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/inventario-admin/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/inventario-admin/internal/interfaces/http"
	"github.com/jhoicas/inventario-admin/pkg/config"
	"github.com/jhoicas/inventario-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando gateway")

	api := backend.New(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout(),
	}, log)
	qc := cache.New()

	catalogoUC := catalogo.NewUseCase(api, qc, log)
	sesionUC := session.NewUseCase(api, qc, session.NewStore(), log)
	vendedorUC := vendedor.NewUseCase(api, qc, log)
	pdfGenerator := infrapdf.NewMarotoFacturaGenerator()
	facturaUC := factura.NewUseCase(api, qc, factura.NewStore(), pdfGenerator, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogoUC: catalogoUC,
		SesionUC:   sesionUC,
		VendedorUC: vendedorUC,
		FacturaUC:  facturaUC,
	})

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

	log.Info().Msg("gateway detenido")
}
