// file: internals/features/system/notifications/dto/notification_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	notificationModel "examcontrol_backend/internals/features/system/notifications/model"
)

type BroadcastRequest struct {
	Target  string `json:"target"  validate:"omitempty,max=24"`
	Message string `json:"message" validate:"required,min=2,max=2000"`
}

func (r *BroadcastRequest) Normalize() {
	r.Target = strings.TrimSpace(r.Target)
	if r.Target == "" {
		r.Target = notificationModel.TargetAll
	}
	r.Message = strings.TrimSpace(r.Message)
}

func (r *BroadcastRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

type NotificationResponse struct {
	NotificationID string `json:"notification_id"`
	SenderName     string `json:"notification_sender_name"`
	Target         string `json:"notification_target"`
	Message        string `json:"notification_message"`
	Payload        any    `json:"notification_payload,omitempty"`
	CreatedAt      string `json:"notification_created_at"`
}

func FromModel(m *notificationModel.NotificationModel) NotificationResponse {
	resp := NotificationResponse{
		NotificationID: m.NotificationID.String(),
		SenderName:     m.NotificationSenderName,
		Target:         m.NotificationTarget,
		Message:        m.NotificationMessage,
		CreatedAt:      m.NotificationCreatedAt.Format(time.RFC3339),
	}
	if len(m.NotificationPayload) > 0 {
		resp.Payload = m.NotificationPayload
	}
	return resp
}

func FromModels(list []notificationModel.NotificationModel) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
