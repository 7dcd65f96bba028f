// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentModel: data siswa hasil import massal. Kunci identitas = NIK siswa.
// GradeKey disimpan saat ingest supaya pencocokan kelas bisa exact-match
// (lihat helpers/grade.go).
type StudentModel struct {
	StudentID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentNationalID string    `gorm:"type:varchar(20);not null;uniqueIndex;column:student_national_id" json:"student_national_id"`
	StudentName       string    `gorm:"type:varchar(160);not null;column:student_name"                   json:"student_name"`

	StudentGrade    string `gorm:"type:varchar(64);not null;column:student_grade"     json:"student_grade"`
	StudentGradeKey string `gorm:"type:varchar(64);not null;index;column:student_grade_key" json:"student_grade_key"`
	StudentSection  string `gorm:"type:varchar(32);column:student_section"            json:"student_section"`

	StudentCommitteeNumber string `gorm:"type:varchar(16);not null;index;column:student_committee_number" json:"student_committee_number"`
	StudentSeatingNumber   string `gorm:"type:varchar(16);column:student_seating_number"                  json:"student_seating_number"`
	StudentParentPhone     string `gorm:"type:varchar(20);column:student_parent_phone"                    json:"student_parent_phone"`

	StudentCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:student_updated_at" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }
