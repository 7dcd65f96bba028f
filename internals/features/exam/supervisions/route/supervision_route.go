// file: internals/features/exam/supervisions/route/supervision_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"examcontrol_backend/internals/constants"
	supervisionCtl "examcontrol_backend/internals/features/exam/supervisions/controller"
	authmw "examcontrol_backend/internals/middlewares/auth"
)

func SupervisionRoutes(r fiber.Router, db *gorm.DB) {
	ctl := supervisionCtl.NewSupervisionController(db)

	grp := r.Group("/supervisions")
	grp.Get("/", ctl.List)
	grp.Post("/join",
		authmw.OnlyRoles(constants.ErrOnlyProctorsCanAccess, constants.RoleProctor),
		ctl.Join)
	grp.Post("/assign",
		authmw.OnlyRoles(constants.ErrOnlyManagersCanAccess, constants.ManagerAndAbove...),
		ctl.AssignTeacher)
	grp.Post("/reset-day",
		authmw.OnlyRoles(constants.ErrOnlyAdminsCanAccess, constants.AdminOnly...),
		ctl.ResetDay)
}
