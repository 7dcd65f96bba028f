// file: internals/features/exam/requests/dto/request_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	requestModel "examcontrol_backend/internals/features/exam/requests/model"
)

type CreateRequestRequest struct {
	Text string `json:"text" validate:"required,min=2,max=2000"`
}

func (r *CreateRequestRequest) Normalize() {
	r.Text = strings.TrimSpace(r.Text)
}

func (r *CreateRequestRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

type TransitionRequest struct {
	Status string `json:"status" validate:"required,oneof=IN_PROGRESS DONE REJECTED"`
}

func (r *TransitionRequest) Normalize() {
	r.Status = strings.ToUpper(strings.TrimSpace(r.Status))
}

func (r *TransitionRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

type RequestResponse struct {
	ControlRequestID string  `json:"control_request_id"`
	CommitteeNumber  string  `json:"control_request_committee_number"`
	Text             string  `json:"control_request_text"`
	Status           string  `json:"control_request_status"`
	AssistantName    *string `json:"control_request_assistant_name,omitempty"`
	ProctorName      string  `json:"control_request_proctor_name"`
	Date             string  `json:"control_request_date"`
	CreatedAt        string  `json:"control_request_created_at"`
}

func FromModel(m *requestModel.ControlRequestModel) RequestResponse {
	return RequestResponse{
		ControlRequestID: m.ControlRequestID.String(),
		CommitteeNumber:  m.ControlRequestCommitteeNumber,
		Text:             m.ControlRequestText,
		Status:           m.ControlRequestStatus,
		AssistantName:    m.ControlRequestAssistantName,
		ProctorName:      m.ControlRequestProctorName,
		Date:             m.ControlRequestDate.Format(time.DateOnly),
		CreatedAt:        m.ControlRequestCreatedAt.Format(time.RFC3339),
	}
}

func FromModels(list []requestModel.ControlRequestModel) []RequestResponse {
	out := make([]RequestResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
