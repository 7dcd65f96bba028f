// file: internals/features/system/notifications/controller/notification_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "examcontrol_backend/internals/features/system/notifications/dto"
	model "examcontrol_backend/internals/features/system/notifications/model"
	helper "examcontrol_backend/internals/helpers"
	authmw "examcontrol_backend/internals/middlewares/auth"
)

type NotificationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db, Validator: validator.New()}
}

/* =========================
   BROADCAST — POST /api/a/notifications
   Fire-and-forget: klien mengambil lewat polling, tidak ada push channel.
   ========================= */
func (ctl *NotificationController) Broadcast(c *fiber.Ctx) error {
	actor, err := authmw.ActorFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.BroadcastRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format data tidak valid")
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"body": {err.Error()}})
	}

	row := model.NotificationModel{
		NotificationSenderName: actor.Name,
		NotificationTarget:     req.Target,
		NotificationMessage:    req.Message,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "تم إرسال التنبيه", dto.FromModel(&row))
}

/* =========================
   LIST — GET /api/a/notifications
   Tertarget "all" + role pembaca, terbaru dulu.
   ========================= */
func (ctl *NotificationController) List(c *fiber.Ctx) error {
	actor, err := authmw.ActorFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	p := helper.ResolvePaging(c, 30, 100)
	q := ctl.DB.Model(&model.NotificationModel{}).
		Where("notification_target IN ?", []string{model.TargetAll, actor.Role})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.NotificationModel
	if err := q.Order("notification_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
