package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/terraincognita07/cyclecast/internal/logger"
)

const minSecretKeyLength = 32

var (
	ErrSecretKeyMissing     = errors.New("SECRET_KEY is required")
	ErrSecretKeyPlaceholder = errors.New("SECRET_KEY uses an insecure placeholder value")
	ErrSecretKeyTooShort    = fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	ErrInvalidPort          = errors.New("PORT must be a number between 1 and 65535")
)

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
	"secret":                                     {},
	"changeme":                                   {},
}

type Config struct {
	Port            string
	DBPath          string
	SecretKey       string
	CookieSecure    bool
	Location        *time.Location
	Logger          logger.Config
	Telegram        TelegramConfig
	CalendarWorkers int
}

type TelegramConfig struct {
	BotToken           string
	ChatID             int64
	PeriodReminderDays int
	NotifyFertility    bool
	Language           string
}

// Enabled reports whether both the token and the chat are configured.
func (config TelegramConfig) Enabled() bool {
	return config.BotToken != "" && config.ChatID != 0
}

// Load reads the environment, seeding it from a .env file when one exists.
// Only the server needs a secret key; pass requireSecret=false for offline
// commands.
func Load(requireSecret bool) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	port, err := resolvePort()
	if err != nil {
		return nil, err
	}

	secretKey := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if requireSecret {
		if secretKey, err = resolveSecretKey(); err != nil {
			return nil, err
		}
	}

	return &Config{
		Port:         port,
		DBPath:       getEnv("DB_PATH", filepath.Join("data", "cyclecast.db")),
		SecretKey:    secretKey,
		CookieSecure: parseBool(os.Getenv("COOKIE_SECURE"), false),
		Location:     loadLocation(getEnv("TZ", "UTC")),
		Logger: logger.Config{
			Level:      logger.ParseLevel(getEnv("LOG_LEVEL", "info")),
			OutputPath: getEnv("LOG_OUTPUT", "stdout"),
			Format:     getEnv("LOG_FORMAT", "text"),
		},
		Telegram: TelegramConfig{
			BotToken:           strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")),
			ChatID:             parseInt64(os.Getenv("TELEGRAM_CHAT_ID")),
			PeriodReminderDays: parseNonNegativeInt(os.Getenv("TELEGRAM_PERIOD_REMINDER_DAYS"), 2),
			NotifyFertility:    parseBool(os.Getenv("TELEGRAM_NOTIFY_FERTILITY"), true),
			Language:           getEnv("TELEGRAM_LANGUAGE", "en"),
		},
		CalendarWorkers: parsePositiveInt(os.Getenv("CALENDAR_WORKERS"), 8),
	}, nil
}

func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", ErrSecretKeyMissing
	}
	if _, insecure := insecureSecretKeys[strings.ToLower(secret)]; insecure {
		return "", ErrSecretKeyPlaceholder
	}
	if len(secret) < minSecretKeyLength {
		return "", ErrSecretKeyTooShort
	}
	return secret, nil
}

func resolvePort() (string, error) {
	raw := getEnv("PORT", "8080")
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("%w: %q", ErrInvalidPort, raw)
	}
	return strconv.Itoa(port), nil
}

func loadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("invalid TZ, falling back to UTC", "tz", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func parseInt64(raw string) int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return value
}

func parseNonNegativeInt(raw string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 0 {
		return fallback
	}
	return value
}

func parsePositiveInt(raw string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func parseBool(raw string, fallback bool) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return value
}
