// file: internals/features/exam/deliveries/model/delivery_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeReceive = "RECEIVE"

	StatusPending   = "PENDING"   // lajnah ditutup di lapangan, amplop dalam perjalanan
	StatusConfirmed = "CONFIRMED" // amplop dicocokkan & diterima meja estilam
)

// DeliveryLogModel: satu transaksi amplop.
//   - Baris PENDING ditulis sekali per lajnah saat penutupan (finish session);
//     labelnya gabungan semua kelas di lajnah itu ("1-1، 1-2").
//   - Baris CONFIRMED ditulis per (lajnah, kelas) saat estilam; paling banyak
//     satu per (committee, grade_key, date) — ditegakkan lewat upsert.
type DeliveryLogModel struct {
	DeliveryLogID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:delivery_log_id" json:"delivery_log_id"`
	DeliveryLogCommitteeNumber string    `gorm:"type:varchar(16);not null;index;column:delivery_log_committee_number"  json:"delivery_log_committee_number"`

	DeliveryLogGrade    string `gorm:"type:varchar(160);not null;column:delivery_log_grade"          json:"delivery_log_grade"`
	DeliveryLogGradeKey string `gorm:"type:varchar(160);not null;index;column:delivery_log_grade_key" json:"delivery_log_grade_key"`

	// RECEIVE (satu-satunya tipe yang dipakai saat ini)
	DeliveryLogType string `gorm:"type:varchar(12);not null;default:'RECEIVE';column:delivery_log_type" json:"delivery_log_type"`

	// PENDING | CONFIRMED
	DeliveryLogStatus string `gorm:"type:varchar(12);not null;index;column:delivery_log_status" json:"delivery_log_status"`

	DeliveryLogProctorName string `gorm:"type:varchar(120);not null;column:delivery_log_proctor_name" json:"delivery_log_proctor_name"`
	DeliveryLogTeacherName string `gorm:"type:varchar(120);not null;column:delivery_log_teacher_name" json:"delivery_log_teacher_name"`

	DeliveryLogDate time.Time `gorm:"type:date;not null;index;column:delivery_log_date"       json:"delivery_log_date"`
	DeliveryLogTime time.Time `gorm:"type:timestamptz;not null;column:delivery_log_time"      json:"delivery_log_time"`

	DeliveryLogCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:delivery_log_created_at" json:"delivery_log_created_at"`
}

func (DeliveryLogModel) TableName() string { return "delivery_logs" }
