package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vendaflow/backoffice-api/internal/application/dto"
	"github.com/vendaflow/backoffice-api/pkg/jwt"
)

// Locals keys para UserID e CompanyName no Fiber.
const (
	LocalUserID      = "user_id"
	LocalCompanyName = "company_name"
)

// AuthMiddleware valida o Bearer Token JWT e carrega UserID e CompanyName em c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		userID, companyName, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalCompanyName, companyName)
		return c.Next()
	}
}

// RequireCompany garante que a rota :company_name pertence à empresa do token.
// Todo acesso a recurso de empresa passa por aqui depois do AuthMiddleware.
func RequireCompany() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claimed := GetCompanyName(c)
		if claimed == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_COMPANY", Message: "token sem vínculo de empresa"})
		}
		if param := c.Params("company_name"); param != claimed {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso negado a esta empresa"})
		}
		return c.Next()
	}
}

// GetUserID devolve o UserID do contexto (após o middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetCompanyName devolve o CompanyName do contexto (após o middleware de auth).
func GetCompanyName(c *fiber.Ctx) string {
	v := c.Locals(LocalCompanyName)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
