// file: internals/features/exam/requests/service/transitions.go
package service

import (
	"errors"

	"examcontrol_backend/internals/constants"
	requestModel "examcontrol_backend/internals/features/exam/requests/model"
)

var (
	ErrInvalidTransition = errors.New("لا يمكن إرجاع البلاغ إلى حالة سابقة")
	ErrNotAuthorized     = errors.New("لا تملك صلاحية التعامل مع بلاغات هذه اللجنة")
)

// CanTransition: state machine maju-saja.
// PENDING → IN_PROGRESS → DONE; REJECTED terminal dan dapat dicapai dari
// kedua state terbuka. DONE/REJECTED arsip — tidak ada transisi keluar.
func CanTransition(from, to string) bool {
	switch from {
	case requestModel.StatusPending:
		return to == requestModel.StatusInProgress || to == requestModel.StatusRejected
	case requestModel.StatusInProgress:
		return to == requestModel.StatusDone || to == requestModel.StatusRejected
	default:
		return false
	}
}

// AuthorizedForCommittee: ADMIN/CONTROL_MANAGER/CONTROL bebas;
// ASSISTANT_CONTROL dibatasi assigned_committees miliknya.
func AuthorizedForCommittee(role string, assignedCommittees []string, committee string) bool {
	if !constants.RoleIn(role, constants.RequestHandlerRoles) {
		return false
	}
	if role != constants.RoleAssistantControl {
		return true
	}
	for _, c := range assignedCommittees {
		if c == committee {
			return true
		}
	}
	return false
}
