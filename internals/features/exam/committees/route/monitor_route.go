// file: internals/features/exam/committees/route/monitor_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	monitorCtl "examcontrol_backend/internals/features/exam/committees/controller"
	"examcontrol_backend/internals/poller"
)

func MonitorRoutes(r fiber.Router, p *poller.Poller) {
	ctl := monitorCtl.NewMonitorController(p)

	grp := r.Group("/monitor")
	grp.Get("/committees", ctl.Committees)
	grp.Get("/grade-progress", ctl.GradeProgress)
}
