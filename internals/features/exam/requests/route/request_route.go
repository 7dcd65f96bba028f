// file: internals/features/exam/requests/route/request_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"examcontrol_backend/internals/constants"
	requestCtl "examcontrol_backend/internals/features/exam/requests/controller"
	authmw "examcontrol_backend/internals/middlewares/auth"
)

func RequestRoutes(r fiber.Router, db *gorm.DB) {
	ctl := requestCtl.NewRequestController(db)

	grp := r.Group("/requests")
	grp.Get("/", ctl.History)
	grp.Get("/active",
		authmw.OnlyRoles(constants.ErrOnlyDeskCanAccess, constants.RequestHandlerRoles...),
		ctl.Active)
	grp.Post("/",
		authmw.OnlyRoles(constants.ErrOnlyProctorsCanAccess, constants.RoleProctor),
		ctl.Create)
	grp.Patch("/:id/status",
		authmw.OnlyRoles(constants.ErrOnlyDeskCanAccess, constants.RequestHandlerRoles...),
		ctl.Transition)
}
