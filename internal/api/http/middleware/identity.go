package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nidohealth/nido_backend/pkg/reqctx"
)

const (
	HeaderUserID = "X-User-Id"
	LocalUserID  = "user_id"
)

// Identity captures the opaque caller id forwarded by the auth gateway.
// This service never validates identity; it only requires one to scope
// session and history access. Requests without the header are rejected.
func Identity() fiber.Handler {
	return func(c fiber.Ctx) error {
		userID := c.Get(HeaderUserID)
		if userID == "" {
			return fiber.ErrUnauthorized
		}

		c.Locals(LocalUserID, userID)
		c.SetContext(reqctx.WithUserID(c.Context(), userID))

		return c.Next()
	}
}

// UserIDFromFiber retrieves the caller id from Fiber locals.
func UserIDFromFiber(c fiber.Ctx) (string, bool) {
	s, ok := c.Locals(LocalUserID).(string)
	return s, ok && s != ""
}
