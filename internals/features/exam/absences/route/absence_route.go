// file: internals/features/exam/absences/route/absence_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"examcontrol_backend/internals/constants"
	absenceCtl "examcontrol_backend/internals/features/exam/absences/controller"
	authmw "examcontrol_backend/internals/middlewares/auth"
)

func AbsenceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := absenceCtl.NewAbsenceController(db)

	grp := r.Group("/absences")
	grp.Get("/", ctl.List)
	grp.Post("/toggle",
		authmw.OnlyRoles(constants.ErrOnlyProctorsCanAccess, constants.RoleProctor),
		ctl.Toggle)
}
