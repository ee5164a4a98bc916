package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newEchoApp() *fiber.App {
	app := fiber.New()
	app.Use(EnsurePlayerID())
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("playerID").(string))
	})
	app.Get("/ws/game/:gameId", WebSocketUpgrade(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestEnsurePlayerID(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"header", "/whoami", "alice", http.StatusOK, "alice"},
		{"query", "/whoami?playerId=bob", "", http.StatusOK, "bob"},
		{"header wins", "/whoami?playerId=bob", "alice", http.StatusOK, "alice"},
		{"missing", "/whoami", "", http.StatusUnauthorized, ""},
	}
	app := newEchoApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("X-Player-ID", tt.header)
			}
			resp, err := app.Test(req, -1)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantBody != "" {
				body, _ := io.ReadAll(resp.Body)
				if string(body) != tt.wantBody {
					t.Errorf("body = %q, want %q", body, tt.wantBody)
				}
			}
		})
	}
}

func TestWebSocketUpgradeRequiresUpgrade(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ws/game/abc", nil)
	req.Header.Set("X-Player-ID", "alice")
	resp, err := newEchoApp().Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusUpgradeRequired {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUpgradeRequired)
	}
}
