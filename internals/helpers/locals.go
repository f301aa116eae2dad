package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Keys written by the auth middleware after identity resolution.
const (
	LocalsSubjectID = "subject_id"
	LocalsUserEmail = "user_email"
	LocalsUserRole  = "userRole"
	LocalsUserName  = "user_name"
	LocalsGymCode   = "gym_code"
)

func GetSubjectIDFromLocals(c *fiber.Ctx) (string, error) {
	id, ok := c.Locals(LocalsSubjectID).(string)
	if !ok || id == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing subject id")
	}
	return id, nil
}

func GetEmailFromLocals(c *fiber.Ctx) (string, error) {
	email, ok := c.Locals(LocalsUserEmail).(string)
	if !ok || email == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing email")
	}
	return strings.ToLower(strings.TrimSpace(email)), nil
}

func GetRoleFromLocals(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals(LocalsUserRole).(string)
	if !ok || role == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing role information")
	}
	return role, nil
}

// GetGymCodeFromLocals returns the gym code resolved by the tenant
// middleware. An explicit ?gymCode= is honored upstream only after the
// middleware finds an approved row for it, so the raw query value is
// never trusted here.
func GetGymCodeFromLocals(c *fiber.Ctx) (string, error) {
	code, ok := c.Locals(LocalsGymCode).(string)
	if !ok || code == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "No gym context for this user")
	}
	return code, nil
}
