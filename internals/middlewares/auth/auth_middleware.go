package auth

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	identityService "gymku_backend/internals/features/identity/service"
	helper "gymku_backend/internals/helpers"
)

// AuthMiddleware verifies the bearer credential and resolves the canonical
// identity (role + display name) into locals. Resolution never errors on
// role derivation itself; only a missing or unverifiable credential fails.
func AuthMiddleware(db *gorm.DB, verifier identityService.TokenVerifier) fiber.Handler {
	svc := identityService.NewIdentityService(db, verifier)

	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - No token")
		}

		identity, err := svc.Resolve(c.UserContext(), tokenString)
		if err != nil {
			log.Printf("[ERROR] token verification failed: %v", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid token")
		}

		c.Locals(helper.LocalsSubjectID, identity.SubjectID)
		c.Locals(helper.LocalsUserEmail, identity.Email)
		c.Locals(helper.LocalsUserRole, identity.Role)
		c.Locals(helper.LocalsUserName, identity.FullName)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token != "" {
			return token, nil
		}
	}
	// cookie fallback for browser clients
	if token := strings.TrimSpace(c.Cookies("__session")); token != "" {
		return token, nil
	}
	return "", fiber.ErrUnauthorized
}
