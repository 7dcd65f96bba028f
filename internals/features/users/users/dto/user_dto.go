// file: internals/features/users/users/dto/user_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"

	userModel "examcontrol_backend/internals/features/users/users/model"
)

/* =========================================================
   Requests: CREATE
   ========================================================= */

type CreateUserRequest struct {
	UserNationalID string   `json:"user_national_id" validate:"required,max=20"`
	UserFullName   string   `json:"user_full_name"   validate:"required,max=120"`
	UserPassword   string   `json:"user_password"    validate:"required,min=6,max=72"`
	UserRole       string   `json:"user_role"        validate:"required,oneof=ADMIN CONTROL_MANAGER PROCTOR CONTROL ASSISTANT_CONTROL COUNSELOR"`
	AssignedGrades     []string `json:"user_assigned_grades"     validate:"omitempty,dive,max=64"`
	AssignedCommittees []string `json:"user_assigned_committees" validate:"omitempty,dive,max=16"`
}

func (r *CreateUserRequest) Normalize() {
	r.UserNationalID = strings.TrimSpace(r.UserNationalID)
	r.UserFullName = strings.TrimSpace(r.UserFullName)
	r.UserRole = strings.ToUpper(strings.TrimSpace(r.UserRole))
	for i := range r.AssignedGrades {
		r.AssignedGrades[i] = strings.TrimSpace(r.AssignedGrades[i])
	}
	for i := range r.AssignedCommittees {
		r.AssignedCommittees[i] = strings.TrimSpace(r.AssignedCommittees[i])
	}
}

func (r *CreateUserRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreateUserRequest) ToModel(hashedPassword string) *userModel.UserModel {
	return &userModel.UserModel{
		UserNationalID:         r.UserNationalID,
		UserFullName:           r.UserFullName,
		UserPassword:           hashedPassword,
		UserRole:               r.UserRole,
		UserAssignedGrades:     pq.StringArray(r.AssignedGrades),
		UserAssignedCommittees: pq.StringArray(r.AssignedCommittees),
	}
}

/* =========================================================
   Requests: UPDATE (partial — field kosong tidak diubah)
   ========================================================= */

type UpdateUserRequest struct {
	UserFullName       *string   `json:"user_full_name"           validate:"omitempty,max=120"`
	UserPassword       *string   `json:"user_password"            validate:"omitempty,min=6,max=72"`
	UserRole           *string   `json:"user_role"                validate:"omitempty,oneof=ADMIN CONTROL_MANAGER PROCTOR CONTROL ASSISTANT_CONTROL COUNSELOR"`
	AssignedGrades     *[]string `json:"user_assigned_grades"     validate:"omitempty,dive,max=64"`
	AssignedCommittees *[]string `json:"user_assigned_committees" validate:"omitempty,dive,max=16"`
}

func (r *UpdateUserRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

/* =========================================================
   Response DTO
   ========================================================= */

type UserResponse struct {
	UserID             string   `json:"user_id"`
	UserNationalID     string   `json:"user_national_id"`
	UserFullName       string   `json:"user_full_name"`
	UserRole           string   `json:"user_role"`
	AssignedGrades     []string `json:"user_assigned_grades,omitempty"`
	AssignedCommittees []string `json:"user_assigned_committees,omitempty"`
	UserCreatedAt      string   `json:"user_created_at"`
}

func FromModel(m *userModel.UserModel) UserResponse {
	return UserResponse{
		UserID:             m.UserID.String(),
		UserNationalID:     m.UserNationalID,
		UserFullName:       m.UserFullName,
		UserRole:           m.UserRole,
		AssignedGrades:     m.UserAssignedGrades,
		AssignedCommittees: m.UserAssignedCommittees,
		UserCreatedAt:      m.UserCreatedAt.Format(time.RFC3339),
	}
}

func FromModels(list []userModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
