// file: internals/features/exam/absences/service/toggle.go
package service

import (
	absenceModel "examcontrol_backend/internals/features/exam/absences/model"
)

type ToggleAction int

const (
	ActionInsert    ToggleAction = iota // belum ada baris → tulis baru
	ActionDelete                        // status sama di-toggle lagi → hapus
	ActionOverwrite                     // status berbeda → timpa (upsert per siswa)
)

// DecideToggle: satu baris terbuka per siswa. Menandai ABSENT lalu LATE
// harus MENGGANTI baris (bukan menduplikasi); menandai status yang sama dua
// kali berarti membatalkannya.
func DecideToggle(existing *absenceModel.AbsenceModel, newType string) ToggleAction {
	if existing == nil {
		return ActionInsert
	}
	if existing.AbsenceType == newType {
		return ActionDelete
	}
	return ActionOverwrite
}
