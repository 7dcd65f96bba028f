// file: internals/features/exam/committees/controller/monitor_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	service "examcontrol_backend/internals/features/exam/committees/service"
	helper "examcontrol_backend/internals/helpers"
	"examcontrol_backend/internals/poller"
)

// MonitorController menyajikan dashboard dari snapshot poller — tidak
// menyentuh store di jalur baca. Status lajnah dan anomali dihitung ulang
// per request supaya anomali (fungsi dari now) selalu segar.
type MonitorController struct {
	Poller *poller.Poller
}

func NewMonitorController(p *poller.Poller) *MonitorController {
	return &MonitorController{Poller: p}
}

/* =========================
   OVERVIEW — GET /api/a/monitor/committees
   ========================= */
func (ctl *MonitorController) Committees(c *fiber.Ctx) error {
	snap, cfg, err := ctl.Poller.Current()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	rows := service.BuildOverview(snap, cfg, time.Now())
	return helper.JsonList(c, "", rows, nil)
}

/* =========================
   GRADE PROGRESS — GET /api/a/monitor/grade-progress
   ========================= */
func (ctl *MonitorController) GradeProgress(c *fiber.Ctx) error {
	snap, _, err := ctl.Poller.Current()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	rows := service.GradeProgress(snap)
	return helper.JsonList(c, "", rows, nil)
}
