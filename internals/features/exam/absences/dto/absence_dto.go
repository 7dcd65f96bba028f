// file: internals/features/exam/absences/dto/absence_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	absenceModel "examcontrol_backend/internals/features/exam/absences/model"
)

// ToggleAbsenceRequest: pengawas menandai siswa ABSENT/LATE dari layar lajnah.
type ToggleAbsenceRequest struct {
	StudentNationalID string `json:"student_national_id" validate:"required,max=20"`
	AbsenceType       string `json:"absence_type"        validate:"required,oneof=ABSENT LATE"`
}

func (r *ToggleAbsenceRequest) Normalize() {
	r.StudentNationalID = strings.TrimSpace(r.StudentNationalID)
	r.AbsenceType = strings.ToUpper(strings.TrimSpace(r.AbsenceType))
}

func (r *ToggleAbsenceRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

type AbsenceResponse struct {
	AbsenceID       string `json:"absence_id"`
	StudentID       string `json:"absence_student_id"`
	AbsenceType     string `json:"absence_type"`
	CommitteeNumber string `json:"absence_committee_number"`
	Date            string `json:"absence_date"`
}

func FromModel(m *absenceModel.AbsenceModel) AbsenceResponse {
	return AbsenceResponse{
		AbsenceID:       m.AbsenceID.String(),
		StudentID:       m.AbsenceStudentID,
		AbsenceType:     m.AbsenceType,
		CommitteeNumber: m.AbsenceCommitteeNumber,
		Date:            m.AbsenceDate.Format(time.DateOnly),
	}
}

func FromModels(list []absenceModel.AbsenceModel) []AbsenceResponse {
	out := make([]AbsenceResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
