// file: internals/features/exam/absences/model/absence_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeAbsent = "ABSENT"
	TypeLate   = "LATE"
)

// AbsenceModel: satu baris per siswa (upsert key = NIK siswa).
// Tandai ulang dengan status lain → overwrite; tandai status yang sama → hapus.
type AbsenceModel struct {
	AbsenceID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:absence_id"   json:"absence_id"`
	AbsenceStudentID string    `gorm:"type:varchar(20);not null;uniqueIndex;column:absence_student_id"    json:"absence_student_id"`

	// ABSENT | LATE
	AbsenceType string `gorm:"type:varchar(12);not null;column:absence_type" json:"absence_type"`

	AbsenceCommitteeNumber string    `gorm:"type:varchar(16);not null;index;column:absence_committee_number" json:"absence_committee_number"`
	AbsenceDate            time.Time `gorm:"type:date;not null;index;column:absence_date"                    json:"absence_date"`
	AbsenceProctorID       uuid.UUID `gorm:"type:uuid;not null;column:absence_proctor_id"                    json:"absence_proctor_id"`

	AbsenceCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:absence_created_at" json:"absence_created_at"`
	AbsenceUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:absence_updated_at" json:"absence_updated_at"`
}

func (AbsenceModel) TableName() string { return "absences" }
