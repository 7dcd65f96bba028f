// file: internals/features/exam/deliveries/service/autoconfirm_test.go
package service

import (
	"testing"
	"time"

	"examcontrol_backend/internals/constants"
	deliveryModel "examcontrol_backend/internals/features/exam/deliveries/model"
	studentModel "examcontrol_backend/internals/features/school/students/model"
)

func testStudent(grade, committee string) studentModel.StudentModel {
	return studentModel.StudentModel{
		StudentGrade:           grade,
		StudentCommitteeNumber: committee,
	}
}

func TestAuthorizedForGrade(t *testing.T) {
	cases := []struct {
		name  string
		actor Actor
		grade string
		want  bool
	}{
		{"admin bebas", Actor{Role: constants.RoleAdmin}, "1-1", true},
		{"manager bebas", Actor{Role: constants.RoleControlManager}, "1-1", true},
		{"control dalam assigned", Actor{Role: constants.RoleControl, AssignedGrades: []string{"1-1"}}, "1-1", true},
		{"control luar assigned", Actor{Role: constants.RoleControl, AssignedGrades: []string{"2-1"}}, "1-1", false},
		{"proctor tidak pernah", Actor{Role: constants.RoleProctor}, "1-1", false},
	}
	for _, c := range cases {
		if got := AuthorizedForGrade(c.actor, c.grade); got != c.want {
			t.Errorf("%s: %v, want %v", c.name, got, c.want)
		}
	}
}

func TestPlanAutoConfirm(t *testing.T) {
	now := examDay.Add(10 * time.Hour)
	students := []studentModel.StudentModel{
		testStudent("1-1", "12"),
		testStudent("1-2", "12"),
	}
	logs := []deliveryModel.DeliveryLogModel{pending("12", "1-1، 1-2")}

	manager := Actor{Name: "خالد", Role: constants.RoleControlManager}
	plan := PlanAutoConfirm(manager, logs, students, now)
	if len(plan) != 2 {
		t.Fatalf("len(plan) = %d, want 2", len(plan))
	}
	for _, row := range plan {
		if row.DeliveryLogStatus != deliveryModel.StatusConfirmed {
			t.Errorf("status = %q", row.DeliveryLogStatus)
		}
		if row.DeliveryLogTeacherName != "آلي - خالد" {
			t.Errorf("label penerima = %q", row.DeliveryLogTeacherName)
		}
		if row.DeliveryLogProctorName != "أحمد" {
			t.Errorf("nama pengawas tidak terbawa: %q", row.DeliveryLogProctorName)
		}
	}

	// CONTROL hanya kelas assigned-nya
	control := Actor{Name: "سعد", Role: constants.RoleControl, AssignedGrades: []string{"1-1"}}
	plan = PlanAutoConfirm(control, logs, students, now)
	if len(plan) != 1 || plan[0].DeliveryLogGrade != "1-1" {
		t.Fatalf("plan CONTROL = %+v, want hanya 1-1", plan)
	}

	// kelas yang sudah CONFIRMED dilewati
	logs = append(logs, confirmed("12", "1-1"))
	plan = PlanAutoConfirm(manager, logs, students, now)
	if len(plan) != 1 || plan[0].DeliveryLogGrade != "1-2" {
		t.Fatalf("plan setelah 1-1 confirmed = %+v, want hanya 1-2", plan)
	}

	// tanpa siswa yang cocok → tidak ada rencana
	plan = PlanAutoConfirm(manager, []deliveryModel.DeliveryLogModel{pending("99", "3-1")}, students, now)
	if len(plan) != 0 {
		t.Fatalf("plan lajnah tanpa siswa = %+v, want kosong", plan)
	}
}
