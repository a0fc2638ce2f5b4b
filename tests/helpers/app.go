package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rosvend/REST-Api-NoSQL/internal/config"
	"github.com/Rosvend/REST-Api-NoSQL/internal/handlers"
	"github.com/Rosvend/REST-Api-NoSQL/internal/logging"
	"github.com/Rosvend/REST-Api-NoSQL/internal/repository"
	"github.com/gofiber/fiber/v2"
)

// TestConfig is a valid sqlite configuration for in-process apps
func TestConfig() *config.Config {
	return &config.Config{
		Port:              "8000",
		Env:               "test",
		DBType:            "sqlite",
		DBDatabase:        ":memory:",
		DBConnectionLimit: 1,
		CORSAllowOrigins:  "*",
		RateLimitRate:     20,
		RateLimitCapacity: 200,
	}
}

// SetupTestApp wires the full route table over a fresh in-memory store
func SetupTestApp(t *testing.T) (*fiber.App, *repository.Store) {
	t.Helper()
	store := SetupTestStore(t)
	return NewTestApp(TestConfig(), store), store
}

// NewTestApp wires the full route table over an existing store, without rate limiting
func NewTestApp(cfg *config.Config, store *repository.Store) *fiber.App {
	log := logging.NewNop()
	app := handlers.NewApp(cfg, log)
	handlers.RegisterRoutes(app, handlers.Deps{Config: cfg, Store: store, Log: log})
	return app
}

// DoRequest runs a request through app.Test; a non-nil body is sent as JSON
func DoRequest(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			if err != nil {
				t.Fatalf("Failed to encode request body: %v", err)
			}
			reader = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	return resp
}
