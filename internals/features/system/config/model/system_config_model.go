// file: internals/features/system/config/model/system_config_model.go
package model

import (
	"time"
)

const MainConfigID = "main_config"

// SystemConfigModel: baris tunggal (config_id = 'main_config').
// Mengganti ConfigActiveExamDate efektif memulai hari operasional baru:
// semua query ber-scope tanggal mengikutinya.
type SystemConfigModel struct {
	ConfigID string `gorm:"type:varchar(32);primaryKey;column:config_id" json:"config_id"`

	ConfigExamStartTime  string    `gorm:"type:varchar(5);not null;default:'07:30';column:config_exam_start_time" json:"config_exam_start_time"` // "HH:MM"
	ConfigActiveExamDate time.Time `gorm:"type:date;not null;column:config_active_exam_date"                      json:"config_active_exam_date"`

	ConfigAllowManualJoin    bool `gorm:"not null;default:true;column:config_allow_manual_join"     json:"config_allow_manual_join"`
	ConfigAutoConfirmEnabled bool `gorm:"not null;default:false;column:config_auto_confirm_enabled" json:"config_auto_confirm_enabled"`

	ConfigUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:config_updated_at" json:"config_updated_at"`
}

func (SystemConfigModel) TableName() string { return "system_config" }
