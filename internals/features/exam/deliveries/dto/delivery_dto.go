// file: internals/features/exam/deliveries/dto/delivery_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	deliveryModel "examcontrol_backend/internals/features/exam/deliveries/model"
)

// ConfirmReceiptRequest: input meja estilam — boleh nomor lajnah atau NIK
// pengawas (barcode kartu staf).
type ConfirmReceiptRequest struct {
	Identifier string `json:"identifier" validate:"required,max=20"`
}

func (r *ConfirmReceiptRequest) Normalize() {
	r.Identifier = strings.TrimSpace(r.Identifier)
}

func (r *ConfirmReceiptRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

type EmergencyConfirmRequest struct {
	CommitteeNumber string `json:"committee_number" validate:"required,max=16"`
	Grade           string `json:"grade"            validate:"required,max=64"`
}

func (r *EmergencyConfirmRequest) Normalize() {
	r.CommitteeNumber = strings.TrimSpace(r.CommitteeNumber)
	r.Grade = strings.TrimSpace(r.Grade)
}

func (r *EmergencyConfirmRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

type DeliveryLogResponse struct {
	DeliveryLogID   string `json:"delivery_log_id"`
	CommitteeNumber string `json:"delivery_log_committee_number"`
	Grade           string `json:"delivery_log_grade"`
	Type            string `json:"delivery_log_type"`
	Status          string `json:"delivery_log_status"`
	ProctorName     string `json:"delivery_log_proctor_name"`
	TeacherName     string `json:"delivery_log_teacher_name"`
	Date            string `json:"delivery_log_date"`
	Time            string `json:"delivery_log_time"`
}

func FromModel(m *deliveryModel.DeliveryLogModel) DeliveryLogResponse {
	return DeliveryLogResponse{
		DeliveryLogID:   m.DeliveryLogID.String(),
		CommitteeNumber: m.DeliveryLogCommitteeNumber,
		Grade:           m.DeliveryLogGrade,
		Type:            m.DeliveryLogType,
		Status:          m.DeliveryLogStatus,
		ProctorName:     m.DeliveryLogProctorName,
		TeacherName:     m.DeliveryLogTeacherName,
		Date:            m.DeliveryLogDate.Format(time.DateOnly),
		Time:            m.DeliveryLogTime.Format(time.RFC3339),
	}
}

func FromModels(list []deliveryModel.DeliveryLogModel) []DeliveryLogResponse {
	out := make([]DeliveryLogResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
