// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	studentModel "examcontrol_backend/internals/features/school/students/model"
	helper "examcontrol_backend/internals/helpers"
)

/* =========================================================
   Requests: UPSERT (import massal memakai slice request ini)
   ========================================================= */

type UpsertStudentRequest struct {
	StudentNationalID      string `json:"student_national_id" validate:"required,max=20"`
	StudentName            string `json:"student_name"        validate:"required,max=160"`
	StudentGrade           string `json:"student_grade"       validate:"required,max=64"`
	StudentSection         string `json:"student_section"     validate:"omitempty,max=32"`
	StudentCommitteeNumber string `json:"student_committee_number" validate:"required,max=16"`
	StudentSeatingNumber   string `json:"student_seating_number"   validate:"omitempty,max=16"`
	StudentParentPhone     string `json:"student_parent_phone"     validate:"omitempty,max=20"`
}

func (r *UpsertStudentRequest) Normalize() {
	r.StudentNationalID = strings.TrimSpace(r.StudentNationalID)
	r.StudentName = strings.TrimSpace(r.StudentName)
	r.StudentGrade = strings.TrimSpace(r.StudentGrade)
	r.StudentSection = strings.TrimSpace(r.StudentSection)
	r.StudentCommitteeNumber = strings.TrimSpace(r.StudentCommitteeNumber)
	r.StudentSeatingNumber = strings.TrimSpace(r.StudentSeatingNumber)
	r.StudentParentPhone = strings.TrimSpace(r.StudentParentPhone)
}

func (r *UpsertStudentRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *UpsertStudentRequest) ToModel() studentModel.StudentModel {
	return studentModel.StudentModel{
		StudentNationalID:      r.StudentNationalID,
		StudentName:            r.StudentName,
		StudentGrade:           r.StudentGrade,
		StudentGradeKey:        helper.GradeKey(r.StudentGrade), // kunci stabil saat ingest
		StudentSection:         r.StudentSection,
		StudentCommitteeNumber: r.StudentCommitteeNumber,
		StudentSeatingNumber:   r.StudentSeatingNumber,
		StudentParentPhone:     r.StudentParentPhone,
	}
}

/* =========================================================
   Response DTO
   ========================================================= */

type StudentResponse struct {
	StudentID              string `json:"student_id"`
	StudentNationalID      string `json:"student_national_id"`
	StudentName            string `json:"student_name"`
	StudentGrade           string `json:"student_grade"`
	StudentSection         string `json:"student_section,omitempty"`
	StudentCommitteeNumber string `json:"student_committee_number"`
	StudentSeatingNumber   string `json:"student_seating_number,omitempty"`
	StudentParentPhone     string `json:"student_parent_phone,omitempty"`
	StudentCreatedAt       string `json:"student_created_at"`
}

func FromModel(m *studentModel.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:              m.StudentID.String(),
		StudentNationalID:      m.StudentNationalID,
		StudentName:            m.StudentName,
		StudentGrade:           m.StudentGrade,
		StudentSection:         m.StudentSection,
		StudentCommitteeNumber: m.StudentCommitteeNumber,
		StudentSeatingNumber:   m.StudentSeatingNumber,
		StudentParentPhone:     m.StudentParentPhone,
		StudentCreatedAt:       m.StudentCreatedAt.Format(time.RFC3339),
	}
}

func FromModels(list []studentModel.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
