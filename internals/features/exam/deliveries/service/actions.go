// file: internals/features/exam/deliveries/service/actions.go
package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	deliveryModel "examcontrol_backend/internals/features/exam/deliveries/model"
	studentModel "examcontrol_backend/internals/features/school/students/model"
	helper "examcontrol_backend/internals/helpers"
)

// loadDayLogs mengambil semua log (lajnah, tanggal aktif) — sumber kebenaran
// untuk setiap pengecekan prasyarat sebelum menulis.
func loadDayLogs(db *gorm.DB, date time.Time) ([]deliveryModel.DeliveryLogModel, error) {
	var logs []deliveryModel.DeliveryLogModel
	if err := db.
		Where("delivery_log_date = ?", helper.DateOnly(date)).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// FinishSession: penutupan lajnah oleh pengawas. Idempoten dari sisi UI —
// log apa pun yang sudah ada untuk (lajnah, tanggal) menolak penulisan ulang.
func FinishSession(db *gorm.DB, committee string, grades []string, proctorName string, date time.Time) (deliveryModel.DeliveryLogModel, error) {
	logs, err := loadDayLogs(db, date)
	if err != nil {
		return deliveryModel.DeliveryLogModel{}, err
	}
	if err := CanFinishSession(committee, logs); err != nil {
		return deliveryModel.DeliveryLogModel{}, err
	}

	row := NewClosureLog(committee, grades, proctorName, date, time.Now())
	if err := db.Create(&row).Error; err != nil {
		return deliveryModel.DeliveryLogModel{}, err
	}
	return row, nil
}

// ConfirmItemResult: hasil per kelas — penulisan per kelas adalah call
// terpisah, jadi kegagalan di tengah dilaporkan per item, tidak ditelan.
type ConfirmItemResult struct {
	Grade   string `json:"grade"`
	Written bool   `json:"written"`
	Skipped bool   `json:"skipped"` // sudah CONFIRMED sebelumnya
	Error   string `json:"error,omitempty"`
}

// ConfirmReceipt: alur estilam normal. Prasyarat: lajnah sudah FIELD_CLOSED
// pada tanggal itu. Menulis satu baris CONFIRMED per kelas; idempoten per
// (lajnah, kelas, tanggal) lewat cek-lalu-tulis.
func ConfirmReceipt(db *gorm.DB, committee string, grades []string, proctorName, receiverName string, date time.Time) ([]ConfirmItemResult, error) {
	logs, err := loadDayLogs(db, date)
	if err != nil {
		return nil, err
	}
	if err := CheckConfirmable(committee, grades, logs); err != nil {
		return nil, err
	}

	results := make([]ConfirmItemResult, 0, len(grades))
	failed := 0
	for _, grade := range grades {
		res := ConfirmItemResult{Grade: grade}
		if DeriveGradeState(committee, grade, logs).Kind == StateConfirmed {
			res.Skipped = true
			results = append(results, res)
			continue
		}
		row := NewConfirmation(committee, grade, proctorName, receiverName, date, time.Now())
		if err := db.Create(&row).Error; err != nil {
			res.Error = err.Error()
			failed++
		} else {
			res.Written = true
			logs = append(logs, row)
		}
		results = append(results, res)
	}

	if failed > 0 {
		return results, fmt.Errorf("gagal menulis %d dari %d konfirmasi", failed, len(grades))
	}
	return results, nil
}

// EmergencyConfirm: jalur pintas manajer — menulis CONFIRMED tanpa prasyarat
// FIELD_CLOSED (untuk pengawas yang tidak bisa menutup digital). Tetap
// menghormati paling-banyak-satu-CONFIRMED per (lajnah, kelas, tanggal).
func EmergencyConfirm(db *gorm.DB, committee, grade, receiverName string, date time.Time) (deliveryModel.DeliveryLogModel, bool, error) {
	var existing deliveryModel.DeliveryLogModel
	err := db.
		Where("delivery_log_committee_number = ? AND delivery_log_grade_key = ? AND delivery_log_date = ? AND delivery_log_status = ?",
			committee, helper.GradeKey(grade), helper.DateOnly(date), deliveryModel.StatusConfirmed).
		First(&existing).Error
	if err == nil {
		return existing, false, nil // sudah ada → no-op
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return deliveryModel.DeliveryLogModel{}, false, err
	}

	row := NewConfirmation(committee, grade, "-", receiverName, date, time.Now())
	if err := db.Create(&row).Error; err != nil {
		return deliveryModel.DeliveryLogModel{}, false, err
	}
	return row, true, nil
}

// AutoConfirmPending menjalankan rencana PlanAutoConfirm terhadap store.
// Dipanggil poller saat snapshot memuat log PENDING dan flag config menyala;
// seluruh antrean pending diproses dalam siklus refresh yang sama. Kegagalan
// satu baris tidak menghentikan sisanya.
func AutoConfirmPending(db *gorm.DB, actor Actor, date time.Time) (int, error) {
	logs, err := loadDayLogs(db, date)
	if err != nil {
		return 0, err
	}

	var students []studentModel.StudentModel
	if err := db.Find(&students).Error; err != nil {
		return 0, err
	}

	plan := PlanAutoConfirm(actor, logs, students, time.Now())
	written := 0
	for i := range plan {
		if err := db.Create(&plan[i]).Error; err != nil {
			log.Printf("[AUTO-CONFIRM] gagal tulis %s/%s: %v",
				plan[i].DeliveryLogCommitteeNumber, plan[i].DeliveryLogGrade, err)
			continue
		}
		written++
	}
	return written, nil
}
