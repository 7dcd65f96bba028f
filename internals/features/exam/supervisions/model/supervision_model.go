// file: internals/features/exam/supervisions/model/supervision_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SupervisionModel: penugasan satu pengawas ke satu lajnah untuk satu tanggal.
// Invariant "satu supervision aktif per pengawas" ditegakkan lewat
// delete-then-insert di service, bukan constraint DB.
type SupervisionModel struct {
	SupervisionID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:supervision_id" json:"supervision_id"`
	SupervisionTeacherID       uuid.UUID `gorm:"type:uuid;not null;index;column:supervision_teacher_id"               json:"supervision_teacher_id"`
	SupervisionTeacherName     string    `gorm:"type:varchar(120);not null;column:supervision_teacher_name"           json:"supervision_teacher_name"`
	SupervisionCommitteeNumber string    `gorm:"type:varchar(16);not null;index;column:supervision_committee_number"  json:"supervision_committee_number"`
	SupervisionDate            time.Time `gorm:"type:date;not null;index;column:supervision_date"                     json:"supervision_date"`
	SupervisionPeriod          *string   `gorm:"type:varchar(32);column:supervision_period"                           json:"supervision_period,omitempty"`

	SupervisionCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:supervision_created_at" json:"supervision_created_at"`
}

func (SupervisionModel) TableName() string { return "supervisions" }
