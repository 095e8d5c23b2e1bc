package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// NewAuthMiddleware проверяет Bearer JWT (HS256) и кладёт subject в
// c.Locals("userId"), флаг админа — в c.Locals("isAdmin").
func NewAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		tokenStr := bearerToken(c.Get("Authorization"))
		if tokenStr == "" {
			return unauthorized(c, "missing bearer token")
		}
		token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.ErrUnauthorized
			}
			return secretBytes, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
		if err != nil || !token.Valid {
			return unauthorized(c, "invalid or expired token")
		}
		claims, ok := token.Claims.(*Claims)
		if !ok {
			return unauthorized(c, "invalid token claims")
		}
		if expectedIssuer != "" && claims.Issuer != expectedIssuer {
			return unauthorized(c, "invalid token issuer")
		}
		c.Locals("userId", claims.Subject)
		if claims.IsAdmin {
			c.Locals("isAdmin", true)
		}
		return c.Next()
	}
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	// нестандартные клиенты шлют токен без префикса
	return header
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": msg})
}
