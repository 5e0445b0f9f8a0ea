// internals/middlewares/auth/admin_only.go
package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"dancestudio_backend/internals/constants"
	helper "dancestudio_backend/internals/helpers"
	helperAuth "dancestudio_backend/internals/helpers/auth"
)

const (
	MsgNoToken      = constants.ErrNoTokenProvided
	MsgInvalidToken = constants.ErrInvalidToken
	MsgNotAdmin     = constants.ErrOnlyAdminsCanAccess
)

// AdminOnly: 401 tanpa token / token tidak valid, 403 bila role bukan admin.
// Klaim disimpan di c.Locals(helperAuth.LocAdmin).
func AdminOnly(tokens *helperAuth.AdminTokens) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := tokens.Verify(helper.BearerToken(c))
		switch {
		case errors.Is(err, helperAuth.ErrMissingToken):
			return helper.JsonError(c, fiber.StatusUnauthorized, MsgNoToken)
		case errors.Is(err, helperAuth.ErrInsufficientRole):
			log.Printf("[WARN] role %q ditolak: %s %s", claims.Role, c.Method(), c.Path())
			return helper.JsonError(c, fiber.StatusForbidden, MsgNotAdmin)
		case err != nil:
			return helper.JsonError(c, fiber.StatusUnauthorized, MsgInvalidToken)
		}

		c.Locals(helperAuth.LocAdmin, claims)
		return c.Next()
	}
}

// AdminFromLocals returns the claims stored by AdminOnly, or nil.
func AdminFromLocals(c *fiber.Ctx) *helperAuth.AdminClaims {
	claims, _ := c.Locals(helperAuth.LocAdmin).(*helperAuth.AdminClaims)
	return claims
}
