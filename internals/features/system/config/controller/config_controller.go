// file: internals/features/system/config/controller/config_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "examcontrol_backend/internals/features/system/config/dto"
	service "examcontrol_backend/internals/features/system/config/service"
	helper "examcontrol_backend/internals/helpers"
)

type ConfigController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewConfigController(db *gorm.DB) *ConfigController {
	return &ConfigController{DB: db, Validator: validator.New()}
}

/* =========================
   GET — /api/a/config
   ========================= */
func (ctl *ConfigController) Get(c *fiber.Ctx) error {
	cfg, err := service.Load(ctl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromModel(cfg))
}

/* =========================
   UPDATE — PATCH /api/a/config
   Merge-upsert baris singleton; field yang tak dikirim tidak berubah.
   ========================= */
func (ctl *ConfigController) Update(c *fiber.Ctx) error {
	var req dto.UpdateConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format data tidak valid")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"body": {err.Error()}})
	}

	cfg, err := service.Load(ctl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := req.Apply(&cfg); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "تنسيق التاريخ غير صحيح")
	}
	if req.ExamStartTime != nil {
		if _, err := helper.ParseClock(cfg.ConfigExamStartTime, cfg.ConfigActiveExamDate); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "تنسيق وقت بدء الاختبار غير صحيح")
		}
	}

	if err := service.Save(ctl.DB, cfg); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "تم تحديث إعدادات النظام", dto.FromModel(cfg))
}
