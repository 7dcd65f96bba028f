// file: internals/features/exam/supervisions/service/supervision_service_test.go
package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	supervisionModel "examcontrol_backend/internals/features/exam/supervisions/model"
)

func TestCanJoin(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	me := uuid.New()
	other := uuid.New()

	taken := []supervisionModel.SupervisionModel{
		{SupervisionTeacherID: other, SupervisionCommitteeNumber: "5", SupervisionDate: day},
	}

	if err := CanJoin(me, "7", taken); err != nil {
		t.Errorf("lajnah kosong: %v", err)
	}
	if err := CanJoin(me, "5", taken); !errors.Is(err, ErrCommitteeTaken) {
		t.Errorf("lajnah terisi: %v, want ErrCommitteeTaken", err)
	}
	if err := CanJoin(other, "5", taken); err != nil {
		t.Errorf("re-join lajnah sendiri: %v", err)
	}
	if err := CanJoin(me, "", taken); !errors.Is(err, ErrMissingCommittee) {
		t.Errorf("lajnah kosong string: %v, want ErrMissingCommittee", err)
	}
}
