// file: internals/features/users/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserNationalID string    `gorm:"type:varchar(20);not null;uniqueIndex;column:user_national_id" json:"user_national_id"`
	UserFullName   string    `gorm:"type:varchar(120);not null;column:user_full_name"              json:"user_full_name"`
	UserPassword   string    `gorm:"type:varchar(100);not null;column:user_password"               json:"-"`

	// ADMIN | CONTROL_MANAGER | PROCTOR | CONTROL | ASSISTANT_CONTROL | COUNSELOR
	UserRole string `gorm:"type:varchar(24);not null;default:'PROCTOR';column:user_role" json:"user_role"`

	// Scope tambahan: CONTROL dibatasi per kelas, ASSISTANT_CONTROL per lajnah.
	UserAssignedGrades     pq.StringArray `gorm:"type:text[];column:user_assigned_grades"     json:"user_assigned_grades,omitempty"`
	UserAssignedCommittees pq.StringArray `gorm:"type:text[];column:user_assigned_committees" json:"user_assigned_committees,omitempty"`

	UserCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:user_updated_at" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at"                                                        json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
