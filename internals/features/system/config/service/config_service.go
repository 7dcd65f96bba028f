// file: internals/features/system/config/service/config_service.go
package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	configModel "examcontrol_backend/internals/features/system/config/model"
	helper "examcontrol_backend/internals/helpers"
)

// Load mengambil baris singleton; kalau belum ada, kembalikan default untuk
// hari ini tanpa menulis (explicit load-at-startup, explicit-write-on-change).
func Load(db *gorm.DB) (configModel.SystemConfigModel, error) {
	var cfg configModel.SystemConfigModel
	err := db.Where("config_id = ?", configModel.MainConfigID).First(&cfg).Error
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Defaults(), nil
	}
	return configModel.SystemConfigModel{}, err
}

func Defaults() configModel.SystemConfigModel {
	return configModel.SystemConfigModel{
		ConfigID:             configModel.MainConfigID,
		ConfigExamStartTime:  "07:30",
		ConfigActiveExamDate: helper.DateOnly(time.Now()),
		ConfigAllowManualJoin: true,
	}
}

// Save melakukan merge-upsert baris singleton.
func Save(db *gorm.DB, cfg configModel.SystemConfigModel) error {
	cfg.ConfigID = configModel.MainConfigID
	return db.Save(&cfg).Error
}
