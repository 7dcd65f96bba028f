// file: internals/features/exam/supervisions/service/supervision_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	supervisionModel "examcontrol_backend/internals/features/exam/supervisions/model"
	helper "examcontrol_backend/internals/helpers"
)

var (
	ErrCommitteeTaken  = errors.New("اللجنة مشغولة بمراقب آخر")
	ErrManualJoinOff   = errors.New("الانضمام الذاتي للجان معطل من الإدارة")
	ErrMissingCommittee = errors.New("رقم اللجنة مطلوب")
)

// CanJoin: paling banyak satu pengawas per lajnah per tanggal (ditegakkan di
// aplikasi, bukan store). Pengawas yang sama boleh "join" ulang lajnahnya.
func CanJoin(teacherID uuid.UUID, committee string, existing []supervisionModel.SupervisionModel) error {
	if committee == "" {
		return ErrMissingCommittee
	}
	for _, s := range existing {
		if s.SupervisionCommitteeNumber == committee && s.SupervisionTeacherID != teacherID {
			return ErrCommitteeTaken
		}
	}
	return nil
}

// Assign memindahkan pengawas ke lajnah: delete-then-insert dalam satu
// transaksi, sehingga invariant satu-supervision-per-pengawas terjaga.
func Assign(db *gorm.DB, teacherID uuid.UUID, teacherName, committee string, date time.Time, period *string) (supervisionModel.SupervisionModel, error) {
	day := helper.DateOnly(date)

	var existing []supervisionModel.SupervisionModel
	if err := db.Where("supervision_date = ?", day).Find(&existing).Error; err != nil {
		return supervisionModel.SupervisionModel{}, err
	}
	if err := CanJoin(teacherID, committee, existing); err != nil {
		return supervisionModel.SupervisionModel{}, err
	}

	row := supervisionModel.SupervisionModel{
		SupervisionTeacherID:       teacherID,
		SupervisionTeacherName:     teacherName,
		SupervisionCommitteeNumber: committee,
		SupervisionDate:            day,
		SupervisionPeriod:          period,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("supervision_teacher_id = ? AND supervision_date = ?", teacherID, day).
			Delete(&supervisionModel.SupervisionModel{}).Error; err != nil {
			return err
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return supervisionModel.SupervisionModel{}, err
	}
	return row, nil
}

// ResetDay menghapus seluruh penugasan tanggal aktif ("hari baru").
func ResetDay(db *gorm.DB, date time.Time) (int64, error) {
	res := db.
		Where("supervision_date = ?", helper.DateOnly(date)).
		Delete(&supervisionModel.SupervisionModel{})
	return res.RowsAffected, res.Error
}
