// file: internals/features/system/config/route/config_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"examcontrol_backend/internals/constants"
	configCtl "examcontrol_backend/internals/features/system/config/controller"
	authmw "examcontrol_backend/internals/middlewares/auth"
)

func ConfigRoutes(r fiber.Router, db *gorm.DB) {
	ctl := configCtl.NewConfigController(db)

	grp := r.Group("/config")
	grp.Get("/", ctl.Get)
	grp.Patch("/",
		authmw.OnlyRoles(constants.ErrOnlyManagersCanAccess, constants.ManagerAndAbove...),
		ctl.Update)
}
