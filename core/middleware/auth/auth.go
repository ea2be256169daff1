package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// HeaderName is the request header carrying the API key.
const HeaderName = "X-API-Key"

// Config holds the auth middleware settings.
type Config struct {
	// ApiKey is the expected key. Empty disables the check.
	ApiKey string
	// Skip lists path prefixes served without a key.
	Skip []string
}

// New returns a middleware rejecting requests without the configured API key.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}
		for _, prefix := range cfg.Skip {
			if strings.HasPrefix(c.Path(), prefix) {
				return c.Next()
			}
		}

		key := c.Get(HeaderName)
		if key == "" {
			key = c.Query("api_key")
		}
		if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.ApiKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or missing API key"})
		}
		return c.Next()
	}
}
