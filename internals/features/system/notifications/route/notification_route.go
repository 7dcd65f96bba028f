// file: internals/features/system/notifications/route/notification_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"examcontrol_backend/internals/constants"
	notificationCtl "examcontrol_backend/internals/features/system/notifications/controller"
	authmw "examcontrol_backend/internals/middlewares/auth"
)

func NotificationRoutes(r fiber.Router, db *gorm.DB) {
	ctl := notificationCtl.NewNotificationController(db)

	grp := r.Group("/notifications")
	grp.Get("/", ctl.List)
	grp.Post("/",
		authmw.OnlyRoles(constants.ErrOnlyManagersCanAccess, constants.ManagerAndAbove...),
		ctl.Broadcast)
}
