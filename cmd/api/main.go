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

	"github.com/tu-usuario/invoice-studio/internal/application/editing"
	"github.com/tu-usuario/invoice-studio/internal/application/export"
	infrapdf "github.com/tu-usuario/invoice-studio/internal/infrastructure/pdf"
	"github.com/tu-usuario/invoice-studio/internal/infrastructure/raster"
	"github.com/tu-usuario/invoice-studio/internal/infrastructure/share"
	httpRouter "github.com/tu-usuario/invoice-studio/internal/interfaces/http"
	"github.com/tu-usuario/invoice-studio/pkg/config"
	"github.com/tu-usuario/invoice-studio/pkg/logger"
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
		Msg("iniciando aplicación")

	// Sesión de edición única: un documento en memoria, sin persistencia.
	session := editing.NewSession(nil)

	// Pipeline de exportación: PDF (maroto), instantánea JPEG y compartir.
	smtpCfg := share.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}
	var mail export.MailSender
	if smtpCfg.Configured() {
		mail = share.NewMailSender(smtpCfg)
	} else {
		log.Warn().Msg("SMTP sin configurar: share-email degrada a enlace mailto")
	}
	exportUC := export.NewUseCase(
		infrapdf.NewMarotoRenderer(),
		raster.NewJPEGRenderer(),
		mail,
		log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // el render PDF puede tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Invoice Studio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Session:  session,
		ExportUC: exportUC,
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

	log.Info().Msg("aplicación detenida")
}
