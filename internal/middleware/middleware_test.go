package middleware

import (
	"bytes"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func TestRequireGameID(t *testing.T) {
	app := fiber.New()
	app.Get("/game/:gameId", RequireGameID(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	tests := []struct {
		id   string
		want int
	}{
		{uuid.New().String(), fiber.StatusNoContent},
		{"abc", fiber.StatusBadRequest},
		{"12345678-1234-1234-1234", fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest("GET", "/game/"+tt.id, nil))
		if err != nil {
			t.Fatalf("GET /game/%s: %v", tt.id, err)
		}
		if resp.StatusCode != tt.want {
			t.Errorf("GET /game/%s = %d, want %d", tt.id, resp.StatusCode, tt.want)
		}
	}
}

func TestEnsureClientID(t *testing.T) {
	app := fiber.New()
	app.Get("/", EnsureClientID(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("clientID").(string))
	})

	tests := []struct {
		name   string
		header string
		query  string
		want   string
	}{
		{"header", "seat-1", "", "seat-1"},
		{"query", "", "seat-2", "seat-2"},
		{"header wins", "seat-1", "seat-2", "seat-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/?clientId="+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("X-Client-ID", tt.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("GET /: %v", err)
			}
			if got := resp.Header.Get("X-Client-ID"); got != tt.want {
				t.Errorf("X-Client-ID = %q, want %q", got, tt.want)
			}
		})
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	if _, err := uuid.Parse(resp.Header.Get("X-Client-ID")); err != nil {
		t.Errorf("generated client ID %q is not a uuid", resp.Header.Get("X-Client-ID"))
	}
}

func TestWebSocketUpgradeRequired(t *testing.T) {
	app := fiber.New()
	app.Get("/ws/:gameId", EnsureClientID(), WebSocketUpgrade(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ws/"+uuid.New().String(), nil))
	if err != nil {
		t.Fatalf("GET /ws: %v", err)
	}
	if resp.StatusCode != fiber.StatusUpgradeRequired {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUpgradeRequired)
	}
}

func TestEnsureClientIDLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	app := fiber.New()
	app.Get("/", EnsureClientID(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	if _, err := app.Test(httptest.NewRequest("GET", "/", nil)); err != nil {
		t.Fatalf("GET /: %v", err)
	}

	if want := `level=DEBUG msg="assigned client ID" package=middleware`; !strings.Contains(buf.String(), want) {
		t.Errorf("log output missing %q:\n%s", want, buf.String())
	}
}
