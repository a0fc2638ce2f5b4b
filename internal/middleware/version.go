package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// APIVersion is the version of the REST contract served by this build
const APIVersion = "1.0.0"

// VersionMiddleware parses the X-Api-Version header, stores it in context and
// answers with the served version
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := strings.TrimSpace(c.Get("X-Api-Version", APIVersion))

		// Support version aliases
		if version == "1" || version == "1.0" {
			version = "1.0.0"
		}

		// Store version in context
		c.Locals("apiVersion", version)
		c.Set("X-Api-Version", APIVersion)

		return c.Next()
	}
}
