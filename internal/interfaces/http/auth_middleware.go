package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/acervotec/patrimonio-api/internal/application/dto"
	"github.com/acervotec/patrimonio-api/pkg/jwt"
)

// Locals keys para identidad en Fiber. Los tokens los emite el servicio de
// auth externo; aquí solo se validan y se extrae la organización propietaria.
const (
	LocalUserID  = "user_id"
	LocalOrgID   = "org_id"
	LocalOrgName = "org_name"
)

// AuthMiddleware valida el Bearer Token JWT y extrae la identidad a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, orgID, orgName, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalOrgID, orgID)
		c.Locals(LocalOrgName, orgName)
		return c.Next()
	}
}

// GetOrgID devuelve la organización propietaria del contexto (después del middleware de auth).
func GetOrgID(c *fiber.Ctx) string {
	v := c.Locals(LocalOrgID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetOrgName devuelve el nombre visible de la organización del contexto.
func GetOrgName(c *fiber.Ctx) string {
	v := c.Locals(LocalOrgName)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
