// file: internals/features/exam/deliveries/controller/delivery_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "examcontrol_backend/internals/features/exam/deliveries/dto"
	deliveryModel "examcontrol_backend/internals/features/exam/deliveries/model"
	service "examcontrol_backend/internals/features/exam/deliveries/service"
	supervisionModel "examcontrol_backend/internals/features/exam/supervisions/model"
	studentModel "examcontrol_backend/internals/features/school/students/model"
	configService "examcontrol_backend/internals/features/system/config/service"
	userModel "examcontrol_backend/internals/features/users/users/model"
	helper "examcontrol_backend/internals/helpers"
	authmw "examcontrol_backend/internals/middlewares/auth"
)

type DeliveryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDeliveryController(db *gorm.DB) *DeliveryController {
	return &DeliveryController{DB: db, Validator: validator.New()}
}

func mapDeliveryError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrSessionAlreadyClosed),
		errors.Is(err, service.ErrAlreadyReceived):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrCommitteeNotClosed):
		return helper.JsonError(c, fiber.StatusPreconditionFailed, err.Error())
	case errors.Is(err, service.ErrTargetNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotProctorToday):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// committeeGrades: daftar kelas distinct dari siswa lajnah (label asli).
func (ctl *DeliveryController) committeeGrades(committee string) ([]string, error) {
	var grades []string
	err := ctl.DB.Model(&studentModel.StudentModel{}).
		Where("student_committee_number = ?", committee).
		Distinct("student_grade").
		Order("student_grade ASC").
		Pluck("student_grade", &grades).Error
	return grades, err
}

/* =========================
   FINISH SESSION (pengawas)
   POST /api/a/deliveries/finish-session
   ========================= */
func (ctl *DeliveryController) FinishSession(c *fiber.Ctx) error {
	actor, err := authmw.ActorFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
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

	grades, err := ctl.committeeGrades(sup.SupervisionCommitteeNumber)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(grades) == 0 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "لا يوجد طلاب مسجلون في هذه اللجنة")
	}

	row, err := service.FinishSession(ctl.DB, sup.SupervisionCommitteeNumber, grades, actor.Name, day)
	if err != nil {
		return mapDeliveryError(c, err)
	}
	return helper.JsonCreated(c, "تم إغلاق اللجنة وتسليم المظاريف", dto.FromModel(&row))
}

/* =========================
   CONFIRM (meja estilam)
   POST /api/a/deliveries/confirm
   ========================= */
func (ctl *DeliveryController) Confirm(c *fiber.Ctx) error {
	actor, err := authmw.ActorFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.ConfirmReceiptRequest
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

	var users []userModel.UserModel
	if err := ctl.DB.Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var sups []supervisionModel.SupervisionModel
	if err := ctl.DB.Where("supervision_date = ?", day).Find(&sups).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	committee, err := service.ResolveTarget(req.Identifier, users, sups)
	if err != nil {
		return mapDeliveryError(c, err)
	}

	grades, err := ctl.committeeGrades(committee)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(grades) == 0 {
		return mapDeliveryError(c, service.ErrTargetNotFound)
	}

	// Nama pengawas diambil dari log penutupan lajnah bila ada.
	proctorName := "-"
	var closure deliveryModel.DeliveryLogModel
	if err := ctl.DB.
		Where("delivery_log_committee_number = ? AND delivery_log_date = ? AND delivery_log_status = ?",
			committee, day, deliveryModel.StatusPending).
		First(&closure).Error; err == nil {
		proctorName = closure.DeliveryLogProctorName
	}

	results, err := service.ConfirmReceipt(ctl.DB, committee, grades, proctorName, actor.Name, day)
	if err != nil {
		if results != nil {
			// partial failure: laporkan per item apa adanya
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": err.Error(),
				"data":    results,
			})
		}
		return mapDeliveryError(c, err)
	}
	return helper.JsonOK(c, "تم تأكيد استلام المظاريف", fiber.Map{
		"committee_number": committee,
		"items":            results,
	})
}

/* =========================
   EMERGENCY CONFIRM (manajer)
   POST /api/a/deliveries/emergency-confirm
   ========================= */
func (ctl *DeliveryController) Emergency(c *fiber.Ctx) error {
	actor, err := authmw.ActorFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.EmergencyConfirmRequest
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

	row, written, err := service.EmergencyConfirm(ctl.DB, req.CommitteeNumber, req.Grade, actor.Name, cfg.ConfigActiveExamDate)
	if err != nil {
		return mapDeliveryError(c, err)
	}
	if !written {
		return helper.JsonOK(c, "تم الاستلام مسبقًا — لا تغيير", dto.FromModel(&row))
	}
	return helper.JsonCreated(c, "تم التأكيد الطارئ للاستلام", dto.FromModel(&row))
}

/* =========================
   LIST — GET /api/a/deliveries?status=&committee=
   ========================= */
func (ctl *DeliveryController) List(c *fiber.Ctx) error {
	cfg, err := configService.Load(ctl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.ResolvePaging(c, 50, 200)
	q := ctl.DB.Model(&deliveryModel.DeliveryLogModel{}).
		Where("delivery_log_date = ?", helper.DateOnly(cfg.ConfigActiveExamDate))
	if status := c.Query("status"); status != "" {
		q = q.Where("delivery_log_status = ?", status)
	}
	if committee := c.Query("committee"); committee != "" {
		q = q.Where("delivery_log_committee_number = ?", committee)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []deliveryModel.DeliveryLogModel
	if err := q.Order("delivery_log_time DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* =========================
   PENDING QUEUE — GET /api/a/deliveries/pending
   Lajnah yang sudah ditutup tapi amplopnya belum semua dicocokkan.
   ========================= */
func (ctl *DeliveryController) PendingQueue(c *fiber.Ctx) error {
	cfg, err := configService.Load(ctl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	day := helper.DateOnly(cfg.ConfigActiveExamDate)

	var logs []deliveryModel.DeliveryLogModel
	if err := ctl.DB.Where("delivery_log_date = ?", day).Find(&logs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	type queueItem struct {
		CommitteeNumber string    `json:"committee_number"`
		ProctorName     string    `json:"proctor_name"`
		ClosedAt        time.Time `json:"closed_at"`
		GradesPending   []string  `json:"grades_pending"`
	}

	items := []queueItem{}
	for committee := range service.SubmittedCommittees(logs) {
		grades, err := ctl.committeeGrades(committee)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		item := queueItem{CommitteeNumber: committee}
		for _, g := range grades {
			st := service.DeriveGradeState(committee, g, logs)
			if st.Kind == service.StateFieldClosed {
				item.GradesPending = append(item.GradesPending, g)
				item.ProctorName = st.ProctorName
				item.ClosedAt = st.Time
			}
		}
		if len(item.GradesPending) > 0 {
			items = append(items, item)
		}
	}
	return helper.JsonList(c, "", items, nil)
}
