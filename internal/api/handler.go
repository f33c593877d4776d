package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/terraincognita07/cyclecast/internal/dates"
	"github.com/terraincognita07/cyclecast/internal/db"
	"github.com/terraincognita07/cyclecast/internal/services"
	"gorm.io/gorm"
)

const defaultAuthTokenTTL = 7 * 24 * time.Hour

// Services is the service graph built over one database.
type Services struct {
	Stores   services.Stores
	Auth     *services.AuthService
	Setup    *services.SetupService
	Settings *services.SettingsService
	Records  *services.RecordService
	Cycles   *services.CycleService
	Calendar *services.CalendarService
	Export   *services.ExportService
}

func NewServices(database *gorm.DB, clock dates.Clock, calendarWorkers int, logger *slog.Logger) *Services {
	repositories := db.NewRepositories(database)
	stores := services.Stores{
		Users:          repositories.Users,
		Periods:        repositories.Periods,
		OvulationTests: repositories.OvulationTests,
		OvulationDays:  repositories.OvulationDays,
		PillPackages:   repositories.PillPackages,
		Pregnancies:    repositories.Pregnancies,
	}
	cycles := services.NewCycleService(stores, clock)

	return &Services{
		Stores:   stores,
		Auth:     services.NewAuthService(repositories.Users),
		Setup:    services.NewSetupService(repositories.Users),
		Settings: services.NewSettingsService(repositories.Users),
		Records:  services.NewRecordService(stores, logger),
		Cycles:   cycles,
		Calendar: services.NewCalendarService(cycles, calendarWorkers),
		Export:   services.NewExportService(stores),
	}
}

type HandlerConfig struct {
	SecretKey    string
	CookieSecure bool
	TokenTTL     time.Duration
	Logger       *slog.Logger
}

type Handler struct {
	services     *Services
	secretKey    []byte
	cookieSecure bool
	tokenTTL     time.Duration
	loginLimiter *attemptLimiter
	logger       *slog.Logger
}

func NewHandler(svc *Services, cfg HandlerConfig) (*Handler, error) {
	if svc == nil {
		return nil, errors.New("services are required")
	}
	if cfg.SecretKey == "" {
		return nil, errors.New("secret key is required")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultAuthTokenTTL
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Handler{
		services:     svc,
		secretKey:    []byte(cfg.SecretKey),
		cookieSecure: cfg.CookieSecure,
		tokenTTL:     cfg.TokenTTL,
		loginLimiter: newAttemptLimiter(),
		logger:       cfg.Logger.With("component", "api"),
	}, nil
}
