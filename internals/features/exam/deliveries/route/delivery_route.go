// file: internals/features/exam/deliveries/route/delivery_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"examcontrol_backend/internals/constants"
	deliveryCtl "examcontrol_backend/internals/features/exam/deliveries/controller"
	authmw "examcontrol_backend/internals/middlewares/auth"
)

func DeliveryRoutes(r fiber.Router, db *gorm.DB) {
	ctl := deliveryCtl.NewDeliveryController(db)

	grp := r.Group("/deliveries")
	grp.Get("/", ctl.List)
	grp.Get("/pending", ctl.PendingQueue)
	grp.Post("/finish-session",
		authmw.OnlyRoles(constants.ErrOnlyProctorsCanAccess, constants.RoleProctor),
		ctl.FinishSession)
	grp.Post("/confirm",
		authmw.OnlyRoles(constants.ErrOnlyDeskCanAccess, constants.DeskRoles...),
		ctl.Confirm)
	grp.Post("/emergency-confirm",
		authmw.OnlyRoles(constants.ErrOnlyManagersCanAccess, constants.ManagerAndAbove...),
		ctl.Emergency)
}
