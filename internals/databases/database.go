package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"examcontrol_backend/internals/configs"

	absenceModel "examcontrol_backend/internals/features/exam/absences/model"
	deliveryModel "examcontrol_backend/internals/features/exam/deliveries/model"
	requestModel "examcontrol_backend/internals/features/exam/requests/model"
	reportModel "examcontrol_backend/internals/features/exam/reports/model"
	supervisionModel "examcontrol_backend/internals/features/exam/supervisions/model"
	studentModel "examcontrol_backend/internals/features/school/students/model"
	configModel "examcontrol_backend/internals/features/system/config/model"
	notificationModel "examcontrol_backend/internals/features/system/notifications/model"
	userModel "examcontrol_backend/internals/features/users/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=examcontrol&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&studentModel.StudentModel{},
		&supervisionModel.SupervisionModel{},
		&absenceModel.AbsenceModel{},
		&deliveryModel.DeliveryLogModel{},
		&requestModel.ControlRequestModel{},
		&reportModel.CommitteeReportModel{},
		&notificationModel.NotificationModel{},
		&configModel.SystemConfigModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrasi: %v", err)
	}
	log.Println("✅ Migrasi selesai.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	// ping ringan supaya pool siap sebelum trafik masuk
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
