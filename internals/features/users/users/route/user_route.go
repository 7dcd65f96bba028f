// file: internals/features/users/users/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"examcontrol_backend/internals/constants"
	userCtl "examcontrol_backend/internals/features/users/users/controller"
	authmw "examcontrol_backend/internals/middlewares/auth"
)

// UserRoutes: profil sendiri di group user, manajemen akun khusus admin.
func UserRoutes(user fiber.Router, admin fiber.Router, db *gorm.DB) {
	ctl := userCtl.NewUserController(db)

	user.Get("/me", ctl.Me)

	grp := admin.Group("/users",
		authmw.OnlyRoles(constants.ErrOnlyAdminsCanAccess, constants.AdminOnly...))
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Patch("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
