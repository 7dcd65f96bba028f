// file: internals/features/exam/deliveries/service/autoconfirm.go
package service

import (
	"time"

	"examcontrol_backend/internals/constants"
	deliveryModel "examcontrol_backend/internals/features/exam/deliveries/model"
	studentModel "examcontrol_backend/internals/features/school/students/model"
	helper "examcontrol_backend/internals/helpers"
)

// Actor: identitas staf yang memicu kebijakan (dibangun controller/poller
// dari klaim token — service ini tidak menyentuh lapisan HTTP).
type Actor struct {
	Name           string
	Role           string
	AssignedGrades []string
}

// AutoConfirmLabel: penanda penerima untuk baris yang dikonfirmasi otomatis,
// menyematkan nama staf yang sedang aktif.
func AutoConfirmLabel(actorName string) string {
	return "آلي - " + actorName
}

// AuthorizedForGrade: ADMIN dan CONTROL_MANAGER bebas; CONTROL hanya untuk
// kelas dalam assigned_grades miliknya. Role lain tidak pernah.
func AuthorizedForGrade(actor Actor, grade string) bool {
	switch actor.Role {
	case constants.RoleAdmin, constants.RoleControlManager:
		return true
	case constants.RoleControl:
		for _, g := range actor.AssignedGrades {
			if helper.GradeMatches(grade, g) || helper.GradeMatches(g, grade) {
				return true
			}
		}
	}
	return false
}

// PlanAutoConfirm memilih konfirmasi yang boleh ditulis otomatis: untuk tiap
// log PENDING, tiap kelas pada labelnya ikut rencana hanya jika (a) actor
// berwenang untuk kelas itu dan (b) ada siswa yang cocok di (lajnah, kelas).
// Hanya log PENDING yang dilihat, jadi konfirmasi ganda tidak mungkin dari
// konstruksi; kelas yang sudah CONFIRMED di snapshot juga dilewati.
func PlanAutoConfirm(actor Actor, logs []deliveryModel.DeliveryLogModel, students []studentModel.StudentModel, now time.Time) []deliveryModel.DeliveryLogModel {
	plan := []deliveryModel.DeliveryLogModel{}
	for _, l := range logs {
		if l.DeliveryLogStatus != deliveryModel.StatusPending {
			continue
		}
		for _, grade := range helper.SplitGrades(l.DeliveryLogGrade) {
			if !AuthorizedForGrade(actor, grade) {
				continue
			}
			if !hasMatchingStudents(l.DeliveryLogCommitteeNumber, grade, students) {
				continue
			}
			if DeriveGradeState(l.DeliveryLogCommitteeNumber, grade, logs).Kind == StateConfirmed {
				continue
			}
			plan = append(plan, NewConfirmation(
				l.DeliveryLogCommitteeNumber,
				grade,
				l.DeliveryLogProctorName,
				AutoConfirmLabel(actor.Name),
				l.DeliveryLogDate,
				now,
			))
		}
	}
	return plan
}

func hasMatchingStudents(committee, grade string, students []studentModel.StudentModel) bool {
	for _, s := range students {
		if s.StudentCommitteeNumber == committee && helper.GradeMatches(s.StudentGrade, grade) {
			return true
		}
	}
	return false
}
