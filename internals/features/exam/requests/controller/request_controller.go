// file: internals/features/exam/requests/controller/request_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "examcontrol_backend/internals/features/exam/requests/dto"
	model "examcontrol_backend/internals/features/exam/requests/model"
	service "examcontrol_backend/internals/features/exam/requests/service"
	supervisionModel "examcontrol_backend/internals/features/exam/supervisions/model"
	configService "examcontrol_backend/internals/features/system/config/service"
	helper "examcontrol_backend/internals/helpers"
	authmw "examcontrol_backend/internals/middlewares/auth"
)

type RequestController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewRequestController(db *gorm.DB) *RequestController {
	return &RequestController{DB: db, Validator: validator.New()}
}

/* =========================
   CREATE — POST /api/a/requests
   Pengawas membuat بلاغ untuk lajnahnya sendiri (diambil dari supervision).
   ========================= */
func (ctl *RequestController) Create(c *fiber.Ctx) error {
	actor, err := authmw.ActorFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateRequestRequest
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
	day := helper.DateOnly(cfg.ConfigActiveExamDate)

	var sup supervisionModel.SupervisionModel
	if err := ctl.DB.
		Where("supervision_teacher_id = ? AND supervision_date = ?", actor.UserID, day).
		First(&sup).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusForbidden, "لم يتم تكليفك بأي لجنة اليوم")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	row := model.ControlRequestModel{
		ControlRequestCommitteeNumber: sup.SupervisionCommitteeNumber,
		ControlRequestText:            req.Text,
		ControlRequestStatus:          model.StatusPending,
		ControlRequestProctorID:       actor.UserID,
		ControlRequestProctorName:     actor.Name,
		ControlRequestDate:            day,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "تم إرسال البلاغ إلى الكنترول", dto.FromModel(&row))
}

/* =========================
   TRANSITION — PATCH /api/a/requests/:id/status
   PENDING → IN_PROGRESS → DONE, REJECTED terminal. Mundur ditolak.
   ========================= */
func (ctl *RequestController) Transition(c *fiber.Ctx) error {
	actor, err := authmw.ActorFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.TransitionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format data tidak valid")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"body": {err.Error()}})
	}

	var row model.ControlRequestModel
	if err := ctl.DB.First(&row, "control_request_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "البلاغ غير موجود")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if !service.AuthorizedForCommittee(actor.Role, actor.AssignedCommittees, row.ControlRequestCommitteeNumber) {
		return helper.JsonError(c, fiber.StatusForbidden, service.ErrNotAuthorized.Error())
	}
	if !service.CanTransition(row.ControlRequestStatus, req.Status) {
		return helper.JsonError(c, fiber.StatusConflict, service.ErrInvalidTransition.Error())
	}

	updates := map[string]any{"control_request_status": req.Status}
	if req.Status == model.StatusInProgress {
		updates["control_request_assistant_name"] = actor.Name
	}
	if err := ctl.DB.Model(&row).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	row.ControlRequestStatus = req.Status
	if req.Status == model.StatusInProgress {
		row.ControlRequestAssistantName = &actor.Name
	}
	return helper.JsonUpdated(c, "تم تحديث حالة البلاغ", dto.FromModel(&row))
}

/* =========================
   ACTIVE — GET /api/a/requests/active
   Antrean terbuka (PENDING + IN_PROGRESS) tanggal aktif, terlama dulu.
   ========================= */
func (ctl *RequestController) Active(c *fiber.Ctx) error {
	cfg, err := configService.Load(ctl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.ControlRequestModel
	if err := ctl.DB.
		Where("control_request_date = ? AND control_request_status IN ?",
			helper.DateOnly(cfg.ConfigActiveExamDate),
			[]string{model.StatusPending, model.StatusInProgress}).
		Order("control_request_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", dto.FromModels(rows), nil)
}

/* =========================
   HISTORY — GET /api/a/requests?status=&committee=
   ========================= */
func (ctl *RequestController) History(c *fiber.Ctx) error {
	cfg, err := configService.Load(ctl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.ResolvePaging(c, 50, 200)
	q := ctl.DB.Model(&model.ControlRequestModel{}).
		Where("control_request_date = ?", helper.DateOnly(cfg.ConfigActiveExamDate))
	if status := c.Query("status"); status != "" {
		q = q.Where("control_request_status = ?", status)
	}
	if committee := c.Query("committee"); committee != "" {
		q = q.Where("control_request_committee_number = ?", committee)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.ControlRequestModel
	if err := q.Order("control_request_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
