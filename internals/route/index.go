// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	absenceRoute "examcontrol_backend/internals/features/exam/absences/route"
	monitorRoute "examcontrol_backend/internals/features/exam/committees/route"
	deliveryRoute "examcontrol_backend/internals/features/exam/deliveries/route"
	reportRoute "examcontrol_backend/internals/features/exam/reports/route"
	requestRoute "examcontrol_backend/internals/features/exam/requests/route"
	supervisionRoute "examcontrol_backend/internals/features/exam/supervisions/route"
	studentRoute "examcontrol_backend/internals/features/school/students/route"
	configRoute "examcontrol_backend/internals/features/system/config/route"
	notificationRoute "examcontrol_backend/internals/features/system/notifications/route"
	authRoute "examcontrol_backend/internals/features/users/auth/route"
	userRoute "examcontrol_backend/internals/features/users/users/route"
	authmw "examcontrol_backend/internals/middlewares/auth"
	"examcontrol_backend/internals/poller"
)

// SetupRoutes memasang seluruh surface HTTP:
//   /api/auth — publik (login/refresh)
//   /api/u    — profil pengguna login
//   /api/a    — seluruh operasi hari ujian (butuh token)
func SetupRoutes(app *fiber.App, db *gorm.DB, p *poller.Poller) {
	BaseRoutes(app)
	authRoute.AuthRoutes(app, db)

	user := app.Group("/api/u", authmw.AuthMiddleware())
	staff := app.Group("/api/a", authmw.AuthMiddleware())

	userRoute.UserRoutes(user, staff, db)
	studentRoute.StudentRoutes(staff, db)
	supervisionRoute.SupervisionRoutes(staff, db)
	absenceRoute.AbsenceRoutes(staff, db)
	deliveryRoute.DeliveryRoutes(staff, db)
	requestRoute.RequestRoutes(staff, db)
	reportRoute.ReportRoutes(staff, db)
	monitorRoute.MonitorRoutes(staff, p)
	configRoute.ConfigRoutes(staff, db)
	notificationRoute.NotificationRoutes(staff, db)
}
