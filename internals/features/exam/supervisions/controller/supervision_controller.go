// file: internals/features/exam/supervisions/controller/supervision_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "examcontrol_backend/internals/features/exam/supervisions/dto"
	model "examcontrol_backend/internals/features/exam/supervisions/model"
	service "examcontrol_backend/internals/features/exam/supervisions/service"
	configService "examcontrol_backend/internals/features/system/config/service"
	userModel "examcontrol_backend/internals/features/users/users/model"
	helper "examcontrol_backend/internals/helpers"
	authmw "examcontrol_backend/internals/middlewares/auth"
)

type SupervisionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSupervisionController(db *gorm.DB) *SupervisionController {
	return &SupervisionController{DB: db, Validator: validator.New()}
}

func mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrCommitteeTaken),
		errors.Is(err, service.ErrManualJoinOff):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrMissingCommittee):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}

/* =========================
   JOIN (self-service pengawas)
   POST /api/a/supervisions/join
   ========================= */
func (ctl *SupervisionController) Join(c *fiber.Ctx) error {
	actor, err := authmw.ActorFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.JoinCommitteeRequest
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
	if !cfg.ConfigAllowManualJoin {
		return mapServiceError(c, service.ErrManualJoinOff)
	}

	row, err := service.Assign(ctl.DB, actor.UserID, actor.Name, req.CommitteeNumber, cfg.ConfigActiveExamDate, req.Period)
	if err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonCreated(c, "تم الانضمام إلى اللجنة", dto.FromModel(&row))
}

/* =========================
   ASSIGN (admin)
   POST /api/a/supervisions/assign
   ========================= */
func (ctl *SupervisionController) AssignTeacher(c *fiber.Ctx) error {
	var req dto.AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format data tidak valid")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"body": {err.Error()}})
	}

	var teacher userModel.UserModel
	if err := ctl.DB.Where("user_national_id = ?", req.TeacherNationalID).First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengawas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	cfg, err := configService.Load(ctl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	row, err := service.Assign(ctl.DB, teacher.UserID, teacher.UserFullName, req.CommitteeNumber, cfg.ConfigActiveExamDate, req.Period)
	if err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonCreated(c, "تم تكليف المراقب باللجنة", dto.FromModel(&row))
}

/* =========================
   LIST — GET /api/a/supervisions
   ========================= */
func (ctl *SupervisionController) List(c *fiber.Ctx) error {
	cfg, err := configService.Load(ctl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.SupervisionModel
	if err := ctl.DB.
		Where("supervision_date = ?", helper.DateOnly(cfg.ConfigActiveExamDate)).
		Order("supervision_committee_number ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", dto.FromModels(rows), nil)
}

/* =========================
   RESET DAY — POST /api/a/supervisions/reset-day
   ========================= */
func (ctl *SupervisionController) ResetDay(c *fiber.Ctx) error {
	cfg, err := configService.Load(ctl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	deleted, err := service.ResetDay(ctl.DB, cfg.ConfigActiveExamDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "تمت إعادة تعيين توزيع اللجان", fiber.Map{"deleted": deleted})
}
