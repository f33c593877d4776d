package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclecast/internal/dates"
	"github.com/terraincognita07/cyclecast/internal/db"
	"github.com/terraincognita07/cyclecast/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const testSecretKey = "test-secret-key-with-at-least-32-characters"

type testResponse struct {
	status  int
	body    []byte
	cookies []*http.Cookie
}

func (response testResponse) decode(t *testing.T, target any) {
	t.Helper()
	if err := json.Unmarshal(response.body, target); err != nil {
		t.Fatalf("decode response %q: %v", string(response.body), err)
	}
}

func newTestApp(t *testing.T, today string) (*fiber.App, *Services) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "cyclecast-api.db"), logger)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	svc := NewServices(database, dates.FixedClock(dates.MustParse(today)), 4, logger)
	handler, err := NewHandler(svc, HandlerConfig{SecretKey: testSecretKey, Logger: logger})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, svc
}

func doRequest(t *testing.T, app *fiber.App, method string, path string, token string, payload any) testResponse {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body: %v", method, path, err)
	}
	return testResponse{status: response.StatusCode, body: raw, cookies: response.Cookies()}
}

func expectStatus(t *testing.T, response testResponse, status int) {
	t.Helper()
	if response.status != status {
		t.Fatalf("expected status %d, got %d: %s", status, response.status, strings.TrimSpace(string(response.body)))
	}
}

func registerAndToken(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	response := doRequest(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":    email,
		"password": "StrongPass1",
	})
	expectStatus(t, response, fiber.StatusCreated)

	var payload struct {
		Token string `json:"token"`
	}
	response.decode(t, &payload)
	if payload.Token == "" {
		t.Fatal("expected session token")
	}
	return payload.Token
}

func createPartner(t *testing.T, svc *Services, email string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("StrongPass1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	partner := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RolePartner,
		CycleLength:  models.DefaultCycleLength,
		PeriodLength: models.DefaultPeriodLength,
		CreatedAt:    time.Now().UTC(),
	}
	if err := svc.Stores.Users.Create(context.Background(), &partner); err != nil {
		t.Fatalf("create partner: %v", err)
	}
}

func loginToken(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	response := doRequest(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    email,
		"password": password,
	})
	expectStatus(t, response, fiber.StatusOK)

	var payload struct {
		Token string `json:"token"`
	}
	response.decode(t, &payload)
	return payload.Token
}
