// file: internals/features/exam/requests/model/control_request_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending    = "PENDING"
	StatusInProgress = "IN_PROGRESS"
	StatusDone       = "DONE"
	StatusRejected   = "REJECTED"
)

// ControlRequestModel: بلاغ dari pengawas untuk lajnahnya. State machine
// maju-saja: PENDING → IN_PROGRESS → DONE (REJECTED = terminal alternatif).
type ControlRequestModel struct {
	ControlRequestID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:control_request_id" json:"control_request_id"`
	ControlRequestCommitteeNumber string    `gorm:"type:varchar(16);not null;index;column:control_request_committee_number"  json:"control_request_committee_number"`
	ControlRequestText            string    `gorm:"type:text;not null;column:control_request_text"                           json:"control_request_text"`

	// PENDING | IN_PROGRESS | DONE | REJECTED
	ControlRequestStatus string `gorm:"type:varchar(16);not null;default:'PENDING';index;column:control_request_status" json:"control_request_status"`

	ControlRequestAssistantName *string   `gorm:"type:varchar(120);column:control_request_assistant_name" json:"control_request_assistant_name,omitempty"`
	ControlRequestProctorID     uuid.UUID `gorm:"type:uuid;not null;column:control_request_proctor_id"    json:"control_request_proctor_id"`
	ControlRequestProctorName   string    `gorm:"type:varchar(120);not null;column:control_request_proctor_name" json:"control_request_proctor_name"`
	ControlRequestDate          time.Time `gorm:"type:date;not null;index;column:control_request_date"    json:"control_request_date"`

	ControlRequestCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:control_request_created_at" json:"control_request_created_at"`
	ControlRequestUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:control_request_updated_at" json:"control_request_updated_at"`
}

func (ControlRequestModel) TableName() string { return "control_requests" }
