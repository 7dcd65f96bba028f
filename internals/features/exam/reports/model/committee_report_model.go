// file: internals/features/exam/reports/model/committee_report_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CommitteeReportModel: catatan bebas akhir ujian per lajnah/tanggal,
// independen dari state machine estilam.
type CommitteeReportModel struct {
	ReportID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:report_id" json:"report_id"`
	ReportCommitteeNumber string    `gorm:"type:varchar(16);not null;index;column:report_committee_number"  json:"report_committee_number"`
	ReportDate            time.Time `gorm:"type:date;not null;index;column:report_date"                     json:"report_date"`
	ReportText            string    `gorm:"type:text;not null;column:report_text"                           json:"report_text"`
	ReportAuthorName      string    `gorm:"type:varchar(120);not null;column:report_author_name"            json:"report_author_name"`

	ReportCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:report_created_at" json:"report_created_at"`
}

func (CommitteeReportModel) TableName() string { return "committee_reports" }
