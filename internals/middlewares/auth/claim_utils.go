package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// extractBearerToken reads Authorization: Bearer xxx, falling back to the access_token cookie
func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && strings.TrimSpace(parts[1]) != "" {
			return strings.TrimSpace(parts[1]), nil
		}
		return "", errors.New("Unauthorized - Malformed Authorization header")
	}

	if cookie := c.Cookies("access_token"); cookie != "" {
		return cookie, nil
	}

	return "", errors.New("Unauthorized - Missing token")
}

// validateTokenExpiry checks the exp claim with a leeway
func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}

	var exp time.Time
	switch v := expRaw.(type) {
	case float64:
		exp = time.Unix(int64(v), 0)
	case int64:
		exp = time.Unix(v, 0)
	default:
		return errors.New("invalid exp claim type")
	}

	if time.Now().After(exp.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

// extractUserID reads the user id claim (sub or user_id)
func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	for _, key := range []string{"user_id", "sub", "id"} {
		if raw, ok := claims[key]; ok {
			if s, ok := raw.(string); ok && s != "" {
				return uuid.Parse(s)
			}
		}
	}
	return uuid.Nil, errors.New("user id claim not found")
}

// storeBasicClaimsToLocals saves role & user_name into request locals
func storeBasicClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if role, ok := claims["role"].(string); ok {
		c.Locals("userRole", role)
	}
	if name, ok := claims["user_name"].(string); ok {
		c.Locals("userName", name)
	}
}
