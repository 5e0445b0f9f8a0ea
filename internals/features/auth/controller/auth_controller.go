// internals/features/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"dancestudio_backend/internals/features/auth/service"
	helper "dancestudio_backend/internals/helpers"
	helperAuth "dancestudio_backend/internals/helpers/auth"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AdminInfo struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	Admin   AdminInfo `json:"admin"`
}

type VerifyResponse struct {
	Valid   bool       `json:"valid"`
	Message string     `json:"message,omitempty"`
	Admin   *AdminInfo `json:"admin,omitempty"`
}

type AuthController struct {
	Svc *service.AuthService
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username and password are required")
	}

	token, err := ctl.Svc.Login(req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrMissingCredentials):
		return helper.JsonError(c, fiber.StatusBadRequest, "Username and password are required")
	case errors.Is(err, service.ErrBadCredentials):
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	case err != nil:
		log.Printf("[ERROR] issue token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error during login")
	}

	return c.JSON(LoginResponse{
		Message: "Login successful",
		Token:   token,
		Admin:   AdminInfo{Username: ctl.Svc.Creds.Username, Role: helperAuth.RoleAdmin},
	})
}

// GET /api/auth/verify
func (ctl *AuthController) Verify(c *fiber.Ctx) error {
	claims, err := ctl.Svc.Verify(helper.BearerToken(c))
	switch {
	case errors.Is(err, helperAuth.ErrMissingToken):
		return c.Status(fiber.StatusUnauthorized).JSON(VerifyResponse{Message: "No token provided"})
	case errors.Is(err, helperAuth.ErrInsufficientRole):
		return c.Status(fiber.StatusForbidden).JSON(VerifyResponse{Message: "Invalid role"})
	case err != nil:
		return c.Status(fiber.StatusUnauthorized).JSON(VerifyResponse{Message: "Invalid token"})
	}

	return c.JSON(VerifyResponse{
		Valid: true,
		Admin: &AdminInfo{Username: claims.Username, Role: claims.Role},
	})
}
