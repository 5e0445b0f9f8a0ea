// helpers/token.go
package helper

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// BearerToken returns the credential of an "Authorization: Bearer <token>"
// header, or "" when absent or of another scheme.
func BearerToken(c *fiber.Ctx) string {
	fields := strings.Fields(c.Get(fiber.HeaderAuthorization))
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return ""
	}
	return strings.Trim(strings.TrimSpace(fields[1]), "\"'")
}

// ReqCtx ambil context standar (kalau Fiber mendukung UserContext)
func ReqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}
