// file: internals/features/exam/reports/route/report_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportCtl "examcontrol_backend/internals/features/exam/reports/controller"
)

func ReportRoutes(r fiber.Router, db *gorm.DB) {
	ctl := reportCtl.NewReportController(db)

	grp := r.Group("/reports")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
}
