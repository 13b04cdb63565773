package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Stkiag0/dss-group2-projectv1/app/config"
	"github.com/Stkiag0/dss-group2-projectv1/app/models"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	cfg := config.Get()
	if !strings.EqualFold(strings.TrimSpace(req.Email), cfg.AdvisorEmail) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
	}
	if !CheckPasswordHash(req.Password, cfg.AdvisorPasswordHash) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := GenerateJWT(cfg.AdvisorEmail, cfg.AdvisorName)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	// Set JWT as HTTP-only cookie
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    models.Advisor{Email: cfg.AdvisorEmail, Name: cfg.AdvisorName},
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	// Clear JWT cookie
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.Redirect("/auth/login")
}
