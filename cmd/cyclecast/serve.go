package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/cyclecast/internal/api"
	"github.com/terraincognita07/cyclecast/internal/config"
	"github.com/terraincognita07/cyclecast/internal/db"
	"github.com/terraincognita07/cyclecast/internal/logger"
	"github.com/terraincognita07/cyclecast/internal/services"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the Telegram reminder loop",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func runServe(ctx context.Context, opts *rootOptions) error {
	cfg, err := loadConfig(opts, true)
	if err != nil {
		return err
	}
	clock, err := resolveClock(opts, cfg)
	if err != nil {
		return err
	}

	log, logCloser, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("logger init failed: %w", err)
	}
	defer logCloser.Close()

	database, err := db.OpenSQLite(cfg.DBPath, log)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer closeDatabase(database, log)

	svc := api.NewServices(database, clock, cfg.CalendarWorkers, log)
	handler, err := api.NewHandler(svc, api.HandlerConfig{
		SecretKey:    cfg.SecretKey,
		CookieSecure: cfg.CookieSecure,
		Logger:       log,
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}
	app := newApp(handler, cfg.CookieSecure)

	lifecycleCtx, cancelLifecycle := context.WithCancel(ctx)
	defer cancelLifecycle()
	startNotifier(lifecycleCtx, cfg, svc, log)

	go func() {
		<-lifecycleCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
	}()

	log.Info("cyclecast listening",
		"addr", "http://0.0.0.0:"+cfg.Port,
		"db", cfg.DBPath,
		"tz", cfg.Location.String(),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func newApp(handler *api.Handler, cookieSecure bool) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Cyclecast",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())
	app.Use(csrf.New(csrfMiddlewareConfig(cookieSecure)))

	api.RegisterRoutes(app, handler)
	return app
}

// csrfMiddlewareConfig guards cookie sessions only; requests without the auth
// cookie pass through.
func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	return csrf.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Cookies(api.AuthCookieName) == ""
		},
		KeyLookup:      "header:X-CSRF-Token",
		CookieName:     "cyclecast_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: false,
		CookieSecure:   cookieSecure,
		Expiration:     time.Hour,
	}
}

func startNotifier(ctx context.Context, cfg *config.Config, svc *api.Services, log *slog.Logger) {
	if !cfg.Telegram.Enabled() {
		log.Info("telegram reminders disabled")
		return
	}

	sender, err := services.NewTelegramSender(cfg.Telegram.BotToken)
	if err != nil {
		log.Warn("telegram reminders unavailable", "error", err)
		return
	}

	notifier := services.NewNotifier(svc.Stores.Users, svc.Cycles, sender, services.NotifierSettings{
		ChatID:             cfg.Telegram.ChatID,
		PeriodReminderDays: cfg.Telegram.PeriodReminderDays,
		NotifyFertility:    cfg.Telegram.NotifyFertility,
		Language:           cfg.Telegram.Language,
	}, log)
	notifier.Start(ctx)
	log.Info("telegram reminders enabled", "chat_id", cfg.Telegram.ChatID)
}
