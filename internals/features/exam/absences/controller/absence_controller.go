// file: internals/features/exam/absences/controller/absence_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "examcontrol_backend/internals/features/exam/absences/dto"
	model "examcontrol_backend/internals/features/exam/absences/model"
	service "examcontrol_backend/internals/features/exam/absences/service"
	supervisionModel "examcontrol_backend/internals/features/exam/supervisions/model"
	studentModel "examcontrol_backend/internals/features/school/students/model"
	configService "examcontrol_backend/internals/features/system/config/service"
	helper "examcontrol_backend/internals/helpers"
	authmw "examcontrol_backend/internals/middlewares/auth"
)

type AbsenceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAbsenceController(db *gorm.DB) *AbsenceController {
	return &AbsenceController{DB: db, Validator: validator.New()}
}

/* =========================
   TOGGLE — POST /api/a/absences/toggle
   Pengawas hanya boleh menandai siswa lajnahnya sendiri.
   ========================= */
func (ctl *AbsenceController) Toggle(c *fiber.Ctx) error {
	actor, err := authmw.ActorFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.ToggleAbsenceRequest
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

	// Lajnah pengawas hari ini — sumber kebenaran otorisasinya.
	var sup supervisionModel.SupervisionModel
	if err := ctl.DB.
		Where("supervision_teacher_id = ? AND supervision_date = ?", actor.UserID, day).
		First(&sup).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusForbidden, "لم يتم تكليفك بأي لجنة اليوم")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var student studentModel.StudentModel
	if err := ctl.DB.
		Where("student_national_id = ?", req.StudentNationalID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "الطالب غير موجود")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if student.StudentCommitteeNumber != sup.SupervisionCommitteeNumber {
		return helper.JsonError(c, fiber.StatusForbidden, "الطالب ليس ضمن لجنتك")
	}

	var existing model.AbsenceModel
	var existingPtr *model.AbsenceModel
	if err := ctl.DB.
		Where("absence_student_id = ?", req.StudentNationalID).
		First(&existing).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	} else {
		existingPtr = &existing
	}

	switch service.DecideToggle(existingPtr, req.AbsenceType) {
	case service.ActionDelete:
		if err := ctl.DB.Delete(&existing).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonDeleted(c, "تم إلغاء العلامة", fiber.Map{
			"student_national_id": req.StudentNationalID,
		})

	case service.ActionOverwrite:
		existing.AbsenceType = req.AbsenceType
		existing.AbsenceCommitteeNumber = sup.SupervisionCommitteeNumber
		existing.AbsenceDate = day
		existing.AbsenceProctorID = actor.UserID
		if err := ctl.DB.Save(&existing).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonUpdated(c, "تم تحديث الحالة", dto.FromModel(&existing))

	default: // ActionInsert
		row := model.AbsenceModel{
			AbsenceStudentID:       req.StudentNationalID,
			AbsenceType:            req.AbsenceType,
			AbsenceCommitteeNumber: sup.SupervisionCommitteeNumber,
			AbsenceDate:            day,
			AbsenceProctorID:       actor.UserID,
		}
		if err := ctl.DB.Create(&row).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonCreated(c, "تم تسجيل الحالة", dto.FromModel(&row))
	}
}

/* =========================
   LIST — GET /api/a/absences?committee=&type=
   ========================= */
func (ctl *AbsenceController) List(c *fiber.Ctx) error {
	cfg, err := configService.Load(ctl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	q := ctl.DB.Model(&model.AbsenceModel{}).
		Where("absence_date = ?", helper.DateOnly(cfg.ConfigActiveExamDate))
	if committee := c.Query("committee"); committee != "" {
		q = q.Where("absence_committee_number = ?", committee)
	}
	if typ := c.Query("type"); typ != "" {
		q = q.Where("absence_type = ?", typ)
	}

	var rows []model.AbsenceModel
	if err := q.Order("absence_committee_number ASC, absence_created_at ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", dto.FromModels(rows), nil)
}
