package auth_test

import (
	"net/http/httptest"
	"testing"

	"ship-registry/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(cfg auth.Config) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(cfg))
	app.Get("/ships", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/metrics", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		cfg    auth.Config
		path   string
		header string
		want   int
	}{
		{"Disabled", auth.Config{}, "/ships", "", 200},
		{"Missing", auth.Config{ApiKey: "secret"}, "/ships", "", 401},
		{"Wrong", auth.Config{ApiKey: "secret"}, "/ships", "nope", 401},
		{"Header", auth.Config{ApiKey: "secret"}, "/ships", "secret", 200},
		{"Query", auth.Config{ApiKey: "secret"}, "/ships?api_key=secret", "", 200},
		{"Skipped", auth.Config{ApiKey: "secret", Skip: []string{"/metrics"}}, "/metrics", "", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set(auth.Header, tt.header)
			}
			resp, err := setupApp(tt.cfg).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
