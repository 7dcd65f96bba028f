// file: internals/features/exam/requests/service/transitions_test.go
package service

import (
	"testing"

	"examcontrol_backend/internals/constants"
	requestModel "examcontrol_backend/internals/features/exam/requests/model"
)

func TestCanTransition(t *testing.T) {
	allowed := map[[2]string]bool{
		{requestModel.StatusPending, requestModel.StatusInProgress}: true,
		{requestModel.StatusPending, requestModel.StatusRejected}:   true,
		{requestModel.StatusInProgress, requestModel.StatusDone}:    true,
		{requestModel.StatusInProgress, requestModel.StatusRejected}: true,
	}

	states := []string{
		requestModel.StatusPending,
		requestModel.StatusInProgress,
		requestModel.StatusDone,
		requestModel.StatusRejected,
	}
	for _, from := range states {
		for _, to := range states {
			want := allowed[[2]string{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestAuthorizedForCommittee(t *testing.T) {
	cases := []struct {
		name       string
		role       string
		committees []string
		committee  string
		want       bool
	}{
		{"admin bebas", constants.RoleAdmin, nil, "7", true},
		{"manager bebas", constants.RoleControlManager, nil, "7", true},
		{"control bebas", constants.RoleControl, nil, "7", true},
		{"assistant dalam assigned", constants.RoleAssistantControl, []string{"7", "8"}, "7", true},
		{"assistant luar assigned", constants.RoleAssistantControl, []string{"8"}, "7", false},
		{"proctor tidak pernah", constants.RoleProctor, []string{"7"}, "7", false},
		{"counselor tidak pernah", constants.RoleCounselor, nil, "7", false},
	}
	for _, c := range cases {
		if got := AuthorizedForCommittee(c.role, c.committees, c.committee); got != c.want {
			t.Errorf("%s: %v, want %v", c.name, got, c.want)
		}
	}
}
