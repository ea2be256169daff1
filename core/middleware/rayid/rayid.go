package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// HeaderName is the response header carrying the ray id.
	HeaderName = "X-Ray-ID"
	// LocalsKey is the Fiber locals key read by logger.WithRayID.
	LocalsKey = "ray_id"
)

// New returns a middleware assigning a ray id to every request. An incoming
// X-Ray-ID header is kept so callers can correlate their own logs.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}
