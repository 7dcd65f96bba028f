// file: internals/features/exam/reports/dto/report_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	reportModel "examcontrol_backend/internals/features/exam/reports/model"
)

type CreateReportRequest struct {
	CommitteeNumber string `json:"committee_number" validate:"required,max=16"`
	Text            string `json:"text"             validate:"required,min=2,max=4000"`
}

func (r *CreateReportRequest) Normalize() {
	r.CommitteeNumber = strings.TrimSpace(r.CommitteeNumber)
	r.Text = strings.TrimSpace(r.Text)
}

func (r *CreateReportRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

type ReportResponse struct {
	ReportID        string `json:"report_id"`
	CommitteeNumber string `json:"report_committee_number"`
	Date            string `json:"report_date"`
	Text            string `json:"report_text"`
	AuthorName      string `json:"report_author_name"`
	CreatedAt       string `json:"report_created_at"`
}

func FromModel(m *reportModel.CommitteeReportModel) ReportResponse {
	return ReportResponse{
		ReportID:        m.ReportID.String(),
		CommitteeNumber: m.ReportCommitteeNumber,
		Date:            m.ReportDate.Format(time.DateOnly),
		Text:            m.ReportText,
		AuthorName:      m.ReportAuthorName,
		CreatedAt:       m.ReportCreatedAt.Format(time.RFC3339),
	}
}

func FromModels(list []reportModel.CommitteeReportModel) []ReportResponse {
	out := make([]ReportResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
