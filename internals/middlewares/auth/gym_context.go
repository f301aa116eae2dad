package auth

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymku_backend/internals/constants"
	gymModel "gymku_backend/internals/features/gyms/model"
	gymService "gymku_backend/internals/features/gyms/service"
	helper "gymku_backend/internals/helpers"
)

const logPrefix = "[GYM_CTX]"

// GymContextMiddleware resolves the caller's gym code from approved gym
// requests and stores it in locals. Admins and superadmins own their gym
// code via ?gymCode= or their own approval rows; members have none.
// Missing context is not an error here; handlers that need a gym code fail
// with 400 via helper.GetGymCodeFromLocals.
func GymContextMiddleware(db *gorm.DB) fiber.Handler {
	directory := gymService.NewTenantDirectory(db)

	return func(c *fiber.Ctx) error {
		email, ok := c.Locals(helper.LocalsUserEmail).(string)
		if !ok || email == "" {
			return c.Next()
		}
		role, _ := c.Locals(helper.LocalsUserRole).(string)

		tc, err := directory.Resolve(c.UserContext(), email, c.Query("gymCode"))
		if err != nil {
			if !errors.Is(err, gymService.ErrNoTenant) {
				log.Printf("%s resolve failed for %s: %v", logPrefix, email, err)
			}
			// Admins may also be the approver side of rows. A requested
			// ?gymCode= still has to match one of their own rows.
			if role == constants.RoleAdmin || role == constants.RoleSuperadmin {
				q := db.WithContext(c.UserContext()).
					Where("LOWER(gym_approval_admin_email) = ?", email)
				if code := strings.TrimSpace(c.Query("gymCode")); code != "" {
					q = q.Where("gym_approval_gym_code = ?", code)
				}
				var row gymModel.GymApprovalModel
				if err := q.
					Order("gym_approval_created_at DESC").
					First(&row).Error; err == nil {
					c.Locals(helper.LocalsGymCode, row.GymApprovalGymCode)
				}
			}
			return c.Next()
		}

		if tc.Status == gymModel.ApprovalStatusApproved {
			c.Locals(helper.LocalsGymCode, tc.GymCode)
		}
		return c.Next()
	}
}
