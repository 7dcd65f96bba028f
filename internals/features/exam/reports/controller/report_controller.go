// file: internals/features/exam/reports/controller/report_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "examcontrol_backend/internals/features/exam/reports/dto"
	model "examcontrol_backend/internals/features/exam/reports/model"
	configService "examcontrol_backend/internals/features/system/config/service"
	helper "examcontrol_backend/internals/helpers"
	authmw "examcontrol_backend/internals/middlewares/auth"
)

type ReportController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db, Validator: validator.New()}
}

/* =========================
   CREATE — POST /api/a/reports
   Catatan bebas akhir ujian; boleh lebih dari satu per lajnah.
   ========================= */
func (ctl *ReportController) Create(c *fiber.Ctx) error {
	actor, err := authmw.ActorFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format data tidak valid")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"body": {err.Error()}})
	}

	cfg, err := configService.Load(ctl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	row := model.CommitteeReportModel{
		ReportCommitteeNumber: req.CommitteeNumber,
		ReportDate:            helper.DateOnly(cfg.ConfigActiveExamDate),
		ReportText:            req.Text,
		ReportAuthorName:      actor.Name,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "تم حفظ تقرير اللجنة", dto.FromModel(&row))
}

/* =========================
   LIST — GET /api/a/reports?committee=
   ========================= */
func (ctl *ReportController) List(c *fiber.Ctx) error {
	cfg, err := configService.Load(ctl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	q := ctl.DB.Model(&model.CommitteeReportModel{}).
		Where("report_date = ?", helper.DateOnly(cfg.ConfigActiveExamDate))
	if committee := c.Query("committee"); committee != "" {
		q = q.Where("report_committee_number = ?", committee)
	}

	var rows []model.CommitteeReportModel
	if err := q.Order("report_created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", dto.FromModels(rows), nil)
}
