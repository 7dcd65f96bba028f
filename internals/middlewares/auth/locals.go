package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Actor adalah identitas staf hasil klaim token, dipakai service layer
// untuk otorisasi (auto-confirm, claim بلاغ, dsb).
type Actor struct {
	UserID             uuid.UUID
	Name               string
	NationalID         string
	Role               string
	AssignedGrades     []string
	AssignedCommittees []string
}

func localString(c *fiber.Ctx, key string) string {
	if v, ok := c.Locals(key).(string); ok {
		return v
	}
	return ""
}

func localStrings(c *fiber.Ctx, key string) []string {
	if v, ok := c.Locals(key).([]string); ok {
		return v
	}
	return nil
}

// ActorFromLocals membangun Actor dari klaim yang disimpan AuthMiddleware.
func ActorFromLocals(c *fiber.Ctx) (Actor, error) {
	idStr := localString(c, "user_id")
	if idStr == "" {
		return Actor{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return Actor{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid user id")
	}
	return Actor{
		UserID:             userID,
		Name:               localString(c, "userName"),
		NationalID:         localString(c, "userNationalID"),
		Role:               localString(c, "userRole"),
		AssignedGrades:     localStrings(c, "assignedGrades"),
		AssignedCommittees: localStrings(c, "assignedCommittees"),
	}, nil
}
