// file: internals/features/system/config/dto/config_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	configModel "examcontrol_backend/internals/features/system/config/model"
)

// UpdateConfigRequest: partial update — field nil tidak disentuh.
type UpdateConfigRequest struct {
	ExamStartTime     *string `json:"exam_start_time"     validate:"omitempty,len=5"`       // "HH:MM"
	ActiveExamDate    *string `json:"active_exam_date"    validate:"omitempty,datetime=2006-01-02"`
	AllowManualJoin   *bool   `json:"allow_manual_join"`
	AutoConfirmEnabled *bool  `json:"auto_confirm_enabled"`
}

func (r *UpdateConfigRequest) Normalize() {
	if r.ExamStartTime != nil {
		t := strings.TrimSpace(*r.ExamStartTime)
		r.ExamStartTime = &t
	}
	if r.ActiveExamDate != nil {
		d := strings.TrimSpace(*r.ActiveExamDate)
		r.ActiveExamDate = &d
	}
}

func (r *UpdateConfigRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// Apply menimpa field yang dikirim saja (merge-upsert).
func (r *UpdateConfigRequest) Apply(cfg *configModel.SystemConfigModel) error {
	if r.ExamStartTime != nil {
		cfg.ConfigExamStartTime = *r.ExamStartTime
	}
	if r.ActiveExamDate != nil {
		d, err := time.Parse(time.DateOnly, *r.ActiveExamDate)
		if err != nil {
			return err
		}
		cfg.ConfigActiveExamDate = d
	}
	if r.AllowManualJoin != nil {
		cfg.ConfigAllowManualJoin = *r.AllowManualJoin
	}
	if r.AutoConfirmEnabled != nil {
		cfg.ConfigAutoConfirmEnabled = *r.AutoConfirmEnabled
	}
	return nil
}

type ConfigResponse struct {
	ExamStartTime      string `json:"exam_start_time"`
	ActiveExamDate     string `json:"active_exam_date"`
	AllowManualJoin    bool   `json:"allow_manual_join"`
	AutoConfirmEnabled bool   `json:"auto_confirm_enabled"`
}

func FromModel(cfg configModel.SystemConfigModel) ConfigResponse {
	return ConfigResponse{
		ExamStartTime:      cfg.ConfigExamStartTime,
		ActiveExamDate:     cfg.ConfigActiveExamDate.Format(time.DateOnly),
		AllowManualJoin:    cfg.ConfigAllowManualJoin,
		AutoConfirmEnabled: cfg.ConfigAutoConfirmEnabled,
	}
}
