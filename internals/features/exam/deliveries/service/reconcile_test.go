// file: internals/features/exam/deliveries/service/reconcile_test.go
package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"examcontrol_backend/internals/constants"
	deliveryModel "examcontrol_backend/internals/features/exam/deliveries/model"
	supervisionModel "examcontrol_backend/internals/features/exam/supervisions/model"
	userModel "examcontrol_backend/internals/features/users/users/model"
)

var examDay = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func pending(committee, grade string) deliveryModel.DeliveryLogModel {
	return deliveryModel.DeliveryLogModel{
		DeliveryLogCommitteeNumber: committee,
		DeliveryLogGrade:           grade,
		DeliveryLogStatus:          deliveryModel.StatusPending,
		DeliveryLogProctorName:     "أحمد",
		DeliveryLogDate:            examDay,
		DeliveryLogTime:            examDay.Add(9 * time.Hour),
	}
}

func confirmed(committee, grade string) deliveryModel.DeliveryLogModel {
	return deliveryModel.DeliveryLogModel{
		DeliveryLogCommitteeNumber: committee,
		DeliveryLogGrade:           grade,
		DeliveryLogStatus:          deliveryModel.StatusConfirmed,
		DeliveryLogProctorName:     "أحمد",
		DeliveryLogTeacherName:     "موظف الكنترول",
		DeliveryLogDate:            examDay,
		DeliveryLogTime:            examDay.Add(10 * time.Hour),
	}
}

func TestDeriveGradeState(t *testing.T) {
	if st := DeriveGradeState("1", "1-1", nil); st.Kind != StateNotStarted {
		t.Errorf("tanpa log: %v, want NotStarted", st.Kind)
	}

	logs := []deliveryModel.DeliveryLogModel{pending("1", "1-1، 1-2")}
	if st := DeriveGradeState("1", "1-1", logs); st.Kind != StateFieldClosed {
		t.Errorf("hanya PENDING: %v, want FieldClosed", st.Kind)
	}
	if st := DeriveGradeState("1", "1-2", logs); st.Kind != StateFieldClosed {
		t.Errorf("kelas kedua label gabungan: %v, want FieldClosed", st.Kind)
	}
	if st := DeriveGradeState("2", "1-1", logs); st.Kind != StateNotStarted {
		t.Errorf("lajnah lain: %v, want NotStarted", st.Kind)
	}

	// CONFIRMED menang apa pun urutan baris
	logs = append(logs, confirmed("1", "1-1"))
	st := DeriveGradeState("1", "1-1", logs)
	if st.Kind != StateConfirmed {
		t.Fatalf("PENDING+CONFIRMED: %v, want Confirmed", st.Kind)
	}
	if st.ReceiverName != "موظف الكنترول" {
		t.Errorf("ReceiverName = %q", st.ReceiverName)
	}

	reversed := []deliveryModel.DeliveryLogModel{confirmed("1", "1-1"), pending("1", "1-1، 1-2")}
	if st := DeriveGradeState("1", "1-1", reversed); st.Kind != StateConfirmed {
		t.Errorf("urutan terbalik: %v, want Confirmed", st.Kind)
	}
}

func TestCanFinishSession(t *testing.T) {
	if err := CanFinishSession("1", nil); err != nil {
		t.Errorf("lajnah bersih: %v", err)
	}
	logs := []deliveryModel.DeliveryLogModel{pending("1", "1-1")}
	if err := CanFinishSession("1", logs); !errors.Is(err, ErrSessionAlreadyClosed) {
		t.Errorf("penutupan ulang: %v, want ErrSessionAlreadyClosed", err)
	}
	if err := CanFinishSession("2", logs); err != nil {
		t.Errorf("lajnah lain tidak terdampak: %v", err)
	}
}

func TestResolveTarget(t *testing.T) {
	proctorID := uuid.New()
	users := []userModel.UserModel{
		{UserID: proctorID, UserNationalID: "111", UserRole: constants.RoleProctor, UserFullName: "أحمد"},
		{UserID: uuid.New(), UserNationalID: "222", UserRole: constants.RoleControl, UserFullName: "خالد"},
	}
	sups := []supervisionModel.SupervisionModel{
		{SupervisionTeacherID: proctorID, SupervisionCommitteeNumber: "7", SupervisionDate: examDay},
	}

	committee, err := ResolveTarget("111", users, sups)
	if err != nil || committee != "7" {
		t.Errorf("NIK pengawas: (%q, %v), want (7, nil)", committee, err)
	}

	if _, err := ResolveTarget("222", users, sups); !errors.Is(err, ErrNotProctorToday) {
		t.Errorf("NIK non-PROCTOR: %v, want ErrNotProctorToday", err)
	}

	noSup := []supervisionModel.SupervisionModel{}
	if _, err := ResolveTarget("111", users, noSup); !errors.Is(err, ErrNotProctorToday) {
		t.Errorf("PROCTOR tanpa supervision: %v, want ErrNotProctorToday", err)
	}

	// bukan NIK dikenal → perlakukan sebagai nomor lajnah
	committee, err = ResolveTarget("12", users, sups)
	if err != nil || committee != "12" {
		t.Errorf("nomor lajnah literal: (%q, %v)", committee, err)
	}

	if _, err := ResolveTarget("", users, sups); !errors.Is(err, ErrTargetNotFound) {
		t.Errorf("kosong: %v, want ErrTargetNotFound", err)
	}
}

func TestCheckConfirmable(t *testing.T) {
	grades := []string{"1-1", "1-2"}

	if err := CheckConfirmable("1", grades, nil); !errors.Is(err, ErrCommitteeNotClosed) {
		t.Errorf("belum ditutup: %v, want ErrCommitteeNotClosed", err)
	}

	logs := []deliveryModel.DeliveryLogModel{pending("1", "1-1، 1-2")}
	if err := CheckConfirmable("1", grades, logs); err != nil {
		t.Errorf("siap estilam: %v", err)
	}

	logs = append(logs, confirmed("1", "1-1"))
	if err := CheckConfirmable("1", grades, logs); err != nil {
		t.Errorf("sebagian dikonfirmasi: %v", err)
	}

	logs = append(logs, confirmed("1", "1-2"))
	if err := CheckConfirmable("1", grades, logs); !errors.Is(err, ErrAlreadyReceived) {
		t.Errorf("semua dikonfirmasi: %v, want ErrAlreadyReceived", err)
	}
}

func TestNewClosureLog(t *testing.T) {
	now := examDay.Add(9 * time.Hour)
	row := NewClosureLog("12", []string{"1-1", "1-2"}, "أحمد", examDay, now)

	if row.DeliveryLogGrade != "1-1، 1-2" {
		t.Errorf("label gabungan = %q", row.DeliveryLogGrade)
	}
	if row.DeliveryLogStatus != deliveryModel.StatusPending {
		t.Errorf("status = %q", row.DeliveryLogStatus)
	}
	if row.DeliveryLogTeacherName != "-" {
		t.Errorf("teacher name placeholder = %q", row.DeliveryLogTeacherName)
	}
}
