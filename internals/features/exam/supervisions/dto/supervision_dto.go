// file: internals/features/exam/supervisions/dto/supervision_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	supervisionModel "examcontrol_backend/internals/features/exam/supervisions/model"
)

type JoinCommitteeRequest struct {
	CommitteeNumber string  `json:"committee_number" validate:"required,max=16"`
	Period          *string `json:"period"           validate:"omitempty,max=32"`
}

func (r *JoinCommitteeRequest) Normalize() {
	r.CommitteeNumber = strings.TrimSpace(r.CommitteeNumber)
	if r.Period != nil {
		p := strings.TrimSpace(*r.Period)
		if p == "" {
			r.Period = nil
		} else {
			r.Period = &p
		}
	}
}

func (r *JoinCommitteeRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// AssignRequest: versi admin — pengawasnya ditentukan lewat NIK.
type AssignRequest struct {
	TeacherNationalID string  `json:"teacher_national_id" validate:"required,max=20"`
	CommitteeNumber   string  `json:"committee_number"    validate:"required,max=16"`
	Period            *string `json:"period"              validate:"omitempty,max=32"`
}

func (r *AssignRequest) Normalize() {
	r.TeacherNationalID = strings.TrimSpace(r.TeacherNationalID)
	r.CommitteeNumber = strings.TrimSpace(r.CommitteeNumber)
}

func (r *AssignRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

type SupervisionResponse struct {
	SupervisionID   string  `json:"supervision_id"`
	TeacherID       string  `json:"supervision_teacher_id"`
	TeacherName     string  `json:"supervision_teacher_name"`
	CommitteeNumber string  `json:"supervision_committee_number"`
	Date            string  `json:"supervision_date"`
	Period          *string `json:"supervision_period,omitempty"`
}

func FromModel(m *supervisionModel.SupervisionModel) SupervisionResponse {
	return SupervisionResponse{
		SupervisionID:   m.SupervisionID.String(),
		TeacherID:       m.SupervisionTeacherID.String(),
		TeacherName:     m.SupervisionTeacherName,
		CommitteeNumber: m.SupervisionCommitteeNumber,
		Date:            m.SupervisionDate.Format(time.DateOnly),
		Period:          m.SupervisionPeriod,
	}
}

func FromModels(list []supervisionModel.SupervisionModel) []SupervisionResponse {
	out := make([]SupervisionResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
