// file: internals/features/exam/absences/service/toggle_test.go
package service

import (
	"testing"

	absenceModel "examcontrol_backend/internals/features/exam/absences/model"
)

func TestDecideToggle(t *testing.T) {
	if got := DecideToggle(nil, absenceModel.TypeAbsent); got != ActionInsert {
		t.Errorf("tanpa baris: %v, want Insert", got)
	}

	existing := &absenceModel.AbsenceModel{AbsenceType: absenceModel.TypeAbsent}
	if got := DecideToggle(existing, absenceModel.TypeAbsent); got != ActionDelete {
		t.Errorf("status sama: %v, want Delete", got)
	}
	if got := DecideToggle(existing, absenceModel.TypeLate); got != ActionOverwrite {
		t.Errorf("status berbeda: %v, want Overwrite", got)
	}
}
