// file: internals/features/school/students/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"examcontrol_backend/internals/constants"
	studentCtl "examcontrol_backend/internals/features/school/students/controller"
	authmw "examcontrol_backend/internals/middlewares/auth"
)

// Data siswa dikelola admin; daftar boleh dibaca semua staf (layar monitor &
// penandaan absensi butuh daftar per lajnah).
func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := studentCtl.NewStudentController(db)

	grp := r.Group("/students")
	grp.Get("/", ctl.List)
	grp.Post("/import",
		authmw.OnlyRoles(constants.ErrOnlyAdminsCanAccess, constants.AdminOnly...),
		ctl.Import)
	grp.Delete("/:id",
		authmw.OnlyRoles(constants.ErrOnlyAdminsCanAccess, constants.AdminOnly...),
		ctl.Delete)
}
