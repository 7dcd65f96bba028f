// file: internals/features/system/notifications/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const TargetAll = "all"

// NotificationModel: pesan broadcast fire-and-forget. Target = "all" atau
// nama role. Payload opsional untuk data terstruktur (mis. nomor lajnah
// pada alert بلاغ baru).
type NotificationModel struct {
	NotificationID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:notification_id" json:"notification_id"`
	NotificationSenderName string         `gorm:"type:varchar(120);not null;column:notification_sender_name"            json:"notification_sender_name"`
	NotificationTarget     string         `gorm:"type:varchar(24);not null;default:'all';index;column:notification_target" json:"notification_target"`
	NotificationMessage    string         `gorm:"type:text;not null;column:notification_message"                        json:"notification_message"`
	NotificationPayload    datatypes.JSON `gorm:"type:jsonb;column:notification_payload"                                json:"notification_payload,omitempty"`

	NotificationCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:notification_created_at" json:"notification_created_at"`
}

func (NotificationModel) TableName() string { return "notifications" }
