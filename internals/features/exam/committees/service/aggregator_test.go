// file: internals/features/exam/committees/service/aggregator_test.go
package service

import (
	"testing"
	"time"

	absenceModel "examcontrol_backend/internals/features/exam/absences/model"
	deliveryModel "examcontrol_backend/internals/features/exam/deliveries/model"
	supervisionModel "examcontrol_backend/internals/features/exam/supervisions/model"
	studentModel "examcontrol_backend/internals/features/school/students/model"
	configModel "examcontrol_backend/internals/features/system/config/model"
)

var examDay = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func testConfig() configModel.SystemConfigModel {
	return configModel.SystemConfigModel{
		ConfigID:             configModel.MainConfigID,
		ConfigExamStartTime:  "07:30",
		ConfigActiveExamDate: examDay,
	}
}

func student(nik, grade, committee string) studentModel.StudentModel {
	return studentModel.StudentModel{
		StudentNationalID:      nik,
		StudentName:            "طالب " + nik,
		StudentGrade:           grade,
		StudentCommitteeNumber: committee,
	}
}

func supervision(committee, teacherName string) supervisionModel.SupervisionModel {
	return supervisionModel.SupervisionModel{
		SupervisionCommitteeNumber: committee,
		SupervisionTeacherName:     teacherName,
		SupervisionDate:            examDay,
	}
}

func confirmedLog(committee, grade string) deliveryModel.DeliveryLogModel {
	return deliveryModel.DeliveryLogModel{
		DeliveryLogCommitteeNumber: committee,
		DeliveryLogGrade:           grade,
		DeliveryLogStatus:          deliveryModel.StatusConfirmed,
		DeliveryLogDate:            examDay,
	}
}

func pendingLog(committee, grade string) deliveryModel.DeliveryLogModel {
	return deliveryModel.DeliveryLogModel{
		DeliveryLogCommitteeNumber: committee,
		DeliveryLogGrade:           grade,
		DeliveryLogStatus:          deliveryModel.StatusPending,
		DeliveryLogDate:            examDay,
	}
}

func findOverview(t *testing.T, rows []CommitteeOverview, committee string) CommitteeOverview {
	t.Helper()
	for _, r := range rows {
		if r.CommitteeNumber == committee {
			return r
		}
	}
	t.Fatalf("lajnah %s tidak ada di overview", committee)
	return CommitteeOverview{}
}

func TestBuildOverviewStatusPriority(t *testing.T) {
	now := time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC) // sebelum jam mulai

	snap := Snapshot{
		Students: []studentModel.StudentModel{
			student("1", "1-1", "1"), // IDLE: tanpa pengawas
			student("2", "1-1", "2"), // ACTIVE: ada pengawas
			student("3", "1-1", "3"), // PROBLEM: ada pengawas + absen
			student("4", "1-1", "4"), // DONE: confirmed mengalahkan problem
		},
		Supervisions: []supervisionModel.SupervisionModel{
			supervision("2", "أحمد"),
			supervision("3", "خالد"),
			supervision("4", "سعد"),
		},
		Absences: []absenceModel.AbsenceModel{
			{AbsenceStudentID: "3", AbsenceType: absenceModel.TypeAbsent, AbsenceCommitteeNumber: "3", AbsenceDate: examDay},
			{AbsenceStudentID: "4", AbsenceType: absenceModel.TypeLate, AbsenceCommitteeNumber: "4", AbsenceDate: examDay},
		},
		DeliveryLogs: []deliveryModel.DeliveryLogModel{
			confirmedLog("4", "1-1"),
		},
	}

	rows := BuildOverview(snap, testConfig(), now)
	if len(rows) != 4 {
		t.Fatalf("len = %d, want 4", len(rows))
	}

	if got := findOverview(t, rows, "1").Status; got != StatusIdle {
		t.Errorf("lajnah 1 = %s, want IDLE", got)
	}
	if got := findOverview(t, rows, "2").Status; got != StatusActive {
		t.Errorf("lajnah 2 = %s, want ACTIVE", got)
	}
	if got := findOverview(t, rows, "3").Status; got != StatusProblem {
		t.Errorf("lajnah 3 = %s, want PROBLEM", got)
	}
	if got := findOverview(t, rows, "4").Status; got != StatusDone {
		t.Errorf("lajnah 4 = %s, want DONE (prioritas di atas PROBLEM)", got)
	}
}

func TestBuildOverviewSkipsCommitteesWithoutStudents(t *testing.T) {
	snap := Snapshot{
		Students: []studentModel.StudentModel{
			student("1", "1-1", "1"),
		},
		Supervisions: []supervisionModel.SupervisionModel{
			supervision("99", "معلم بلا طلاب"),
		},
	}
	rows := BuildOverview(snap, testConfig(), examDay)
	if len(rows) != 1 || rows[0].CommitteeNumber != "1" {
		t.Fatalf("overview = %+v, want hanya lajnah 1", rows)
	}
}

func TestBuildOverviewAnomaly(t *testing.T) {
	snap := Snapshot{
		Students: []studentModel.StudentModel{
			student("1", "1-1", "1"),
		},
	}
	cfg := testConfig()

	before := time.Date(2026, 3, 10, 7, 34, 0, 0, time.UTC) // grace 5 menit belum lewat
	rows := BuildOverview(snap, cfg, before)
	if findOverview(t, rows, "1").Anomaly {
		t.Error("anomali menyala sebelum batas grace")
	}

	after := time.Date(2026, 3, 10, 7, 36, 0, 0, time.UTC)
	rows = BuildOverview(snap, cfg, after)
	if !findOverview(t, rows, "1").Anomaly {
		t.Error("anomali tidak menyala setelah batas grace")
	}

	// lajnah berpengawas tidak pernah anomali
	snap.Supervisions = []supervisionModel.SupervisionModel{supervision("1", "أحمد")}
	rows = BuildOverview(snap, cfg, after)
	if findOverview(t, rows, "1").Anomaly {
		t.Error("anomali menyala padahal ada pengawas")
	}
}

// Lajnah multi-kelas: label penutupan gabungan harus dihitung "tersubmit"
// untuk kedua kelas, lalu selesai hanya setelah keduanya CONFIRMED.
func TestGradeProgressCombinedClosureLabel(t *testing.T) {
	snap := Snapshot{
		Students: []studentModel.StudentModel{
			student("1", "1-1", "12"),
			student("2", "1-2", "12"),
		},
		DeliveryLogs: []deliveryModel.DeliveryLogModel{
			pendingLog("12", "1-1، 1-2"),
		},
	}

	rows := GradeProgress(snap)
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}
	for _, r := range rows {
		if r.IsDone {
			t.Errorf("kelas %s IsDone=true sebelum konfirmasi", r.Grade)
		}
		if !r.IsSubmitted {
			t.Errorf("kelas %s IsSubmitted=false padahal lajnah sudah ditutup", r.Grade)
		}
	}

	// satu kelas dikonfirmasi → kelas itu done, lajnah masih tersubmit
	snap.DeliveryLogs = append(snap.DeliveryLogs, confirmedLog("12", "1-1"))
	rows = GradeProgress(snap)
	for _, r := range rows {
		switch r.Grade {
		case "1-1":
			if !r.IsDone {
				t.Error("1-1 belum done setelah konfirmasi")
			}
		case "1-2":
			if r.IsDone {
				t.Error("1-2 done padahal belum dikonfirmasi")
			}
			if !r.IsSubmitted {
				t.Error("1-2 kehilangan status tersubmit")
			}
		}
	}

	// kedua kelas dikonfirmasi → semuanya done, tidak lagi tersubmit
	snap.DeliveryLogs = append(snap.DeliveryLogs, confirmedLog("12", "1-2"))
	rows = GradeProgress(snap)
	for _, r := range rows {
		if !r.IsDone {
			t.Errorf("kelas %s belum done", r.Grade)
		}
		if r.IsSubmitted {
			t.Errorf("kelas %s masih tersubmit setelah semua done", r.Grade)
		}
	}
}
