// file: internals/features/exam/committees/service/aggregator.go
package service

import (
	"sort"
	"strconv"
	"time"

	absenceModel "examcontrol_backend/internals/features/exam/absences/model"
	deliveryModel "examcontrol_backend/internals/features/exam/deliveries/model"
	supervisionModel "examcontrol_backend/internals/features/exam/supervisions/model"
	studentModel "examcontrol_backend/internals/features/school/students/model"
	configModel "examcontrol_backend/internals/features/system/config/model"
	userModel "examcontrol_backend/internals/features/users/users/model"
	helper "examcontrol_backend/internals/helpers"
)

// Status tampilan lajnah, urutan prioritas: DONE > PROBLEM > ACTIVE > IDLE.
const (
	StatusDone    = "DONE"
	StatusProblem = "PROBLEM"
	StatusActive  = "ACTIVE"
	StatusIdle    = "IDLE"
)

// AnomalyGrace: toleransi setelah jam mulai ujian sebelum lajnah tanpa
// pengawas ditandai anomali.
const AnomalyGrace = 5 * time.Minute

// Snapshot: seluruh koleksi yang sudah difilter ke tanggal ujian aktif
// (students tidak ber-scope tanggal). Diisi oleh poller; semua fungsi di
// package ini murni terhadap snapshot — hasilnya idempoten.
type Snapshot struct {
	Students     []studentModel.StudentModel
	Users        []userModel.UserModel
	Supervisions []supervisionModel.SupervisionModel
	Absences     []absenceModel.AbsenceModel
	DeliveryLogs []deliveryModel.DeliveryLogModel
}

// CommitteeOverview: satu baris dashboard per lajnah.
type CommitteeOverview struct {
	CommitteeNumber string   `json:"committee_number"`
	Grades          []string `json:"grades"`
	StudentCount    int      `json:"student_count"`
	AbsenceCount    int      `json:"absence_count"`
	LateCount       int      `json:"late_count"`
	ProctorName     string   `json:"proctor_name,omitempty"`
	ReceivedGrades  []string `json:"received_grades"`
	Status          string   `json:"status"`
	Anomaly         bool     `json:"anomaly"`
}

// GradeProgressRow: progres estilam per (lajnah, kelas) untuk layar monitor.
type GradeProgressRow struct {
	CommitteeNumber string `json:"committee_number"`
	Grade           string `json:"grade"`
	StudentCount    int    `json:"student_count"`
	IsDone          bool   `json:"is_done"`
	IsSubmitted     bool   `json:"is_submitted"`
}

// BuildOverview menghitung status seluruh lajnah dari snapshot.
// Lajnah tanpa siswa tidak pernah muncul. Anomali adalah fungsi murni dari
// now vs jam mulai di config, jadi wajib dihitung ulang tiap tick (≤10s),
// bukan hanya saat refresh data.
func BuildOverview(snap Snapshot, cfg configModel.SystemConfigModel, now time.Time) []CommitteeOverview {
	byCommittee := groupStudentsByCommittee(snap.Students)
	if len(byCommittee) == 0 {
		return []CommitteeOverview{}
	}

	proctorByCommittee := map[string]string{}
	for _, s := range snap.Supervisions {
		proctorByCommittee[s.SupervisionCommitteeNumber] = s.SupervisionTeacherName
	}

	absences := map[string]int{}
	lates := map[string]int{}
	for _, a := range snap.Absences {
		switch a.AbsenceType {
		case absenceModel.TypeAbsent:
			absences[a.AbsenceCommitteeNumber]++
		case absenceModel.TypeLate:
			lates[a.AbsenceCommitteeNumber]++
		}
	}

	confirmedByCommittee := map[string][]string{}
	for _, l := range snap.DeliveryLogs {
		if l.DeliveryLogStatus == deliveryModel.StatusConfirmed {
			confirmedByCommittee[l.DeliveryLogCommitteeNumber] = append(
				confirmedByCommittee[l.DeliveryLogCommitteeNumber], l.DeliveryLogGrade)
		}
	}

	anomalyThreshold, thresholdOK := anomalyDeadline(cfg, now)

	out := make([]CommitteeOverview, 0, len(byCommittee))
	for committee, students := range byCommittee {
		row := CommitteeOverview{
			CommitteeNumber: committee,
			Grades:          distinctGrades(students),
			StudentCount:    len(students),
			AbsenceCount:    absences[committee],
			LateCount:       lates[committee],
			ProctorName:     proctorByCommittee[committee],
			ReceivedGrades:  confirmedByCommittee[committee],
		}
		if row.ReceivedGrades == nil {
			row.ReceivedGrades = []string{}
		}

		switch {
		case len(row.ReceivedGrades) > 0:
			row.Status = StatusDone
		case row.AbsenceCount > 0 || row.LateCount > 0:
			row.Status = StatusProblem
		case row.ProctorName != "":
			row.Status = StatusActive
		default:
			row.Status = StatusIdle
		}

		if thresholdOK && row.ProctorName == "" && now.After(anomalyThreshold) {
			row.Anomaly = true
		}
		out = append(out, row)
	}

	sortByCommitteeNumber(out)
	return out
}

// GradeProgress menghitung penyelesaian per (lajnah, kelas):
//   - IsDone: setiap kelompok kelas punya log CONFIRMED yang cocok (exact key,
//     fallback containment untuk label lama) pada tanggal aktif;
//   - IsSubmitted: lajnah sudah ditutup di lapangan (ada log yang mencakup
//     semua kelasnya) tapi belum semuanya CONFIRMED.
func GradeProgress(snap Snapshot) []GradeProgressRow {
	byCommittee := groupStudentsByCommittee(snap.Students)

	logsByCommittee := map[string][]deliveryModel.DeliveryLogModel{}
	for _, l := range snap.DeliveryLogs {
		logsByCommittee[l.DeliveryLogCommitteeNumber] = append(logsByCommittee[l.DeliveryLogCommitteeNumber], l)
	}

	out := []GradeProgressRow{}
	for committee, students := range byCommittee {
		grades := distinctGrades(students)
		logs := logsByCommittee[committee]

		counts := map[string]int{}
		for _, s := range students {
			counts[s.StudentGrade]++
		}

		allDone := true
		allCovered := true
		doneByGrade := map[string]bool{}
		for _, g := range grades {
			confirmed := false
			covered := false
			for _, l := range logs {
				if !helper.GradeMatches(g, l.DeliveryLogGrade) {
					continue
				}
				covered = true
				if l.DeliveryLogStatus == deliveryModel.StatusConfirmed {
					confirmed = true
				}
			}
			doneByGrade[g] = confirmed
			if !confirmed {
				allDone = false
			}
			if !covered {
				allCovered = false
			}
		}

		submitted := allCovered && !allDone
		for _, g := range grades {
			out = append(out, GradeProgressRow{
				CommitteeNumber: committee,
				Grade:           g,
				StudentCount:    counts[g],
				IsDone:          doneByGrade[g],
				IsSubmitted:     submitted,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CommitteeNumber != out[j].CommitteeNumber {
			return committeeLess(out[i].CommitteeNumber, out[j].CommitteeNumber)
		}
		return out[i].Grade < out[j].Grade
	})
	return out
}

/* =========================
   Internal helpers
   ========================= */

func groupStudentsByCommittee(students []studentModel.StudentModel) map[string][]studentModel.StudentModel {
	byCommittee := map[string][]studentModel.StudentModel{}
	for _, s := range students {
		if s.StudentCommitteeNumber == "" {
			continue
		}
		byCommittee[s.StudentCommitteeNumber] = append(byCommittee[s.StudentCommitteeNumber], s)
	}
	return byCommittee
}

func distinctGrades(students []studentModel.StudentModel) []string {
	seen := map[string]bool{}
	grades := []string{}
	for _, s := range students {
		key := helper.GradeKey(s.StudentGrade)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		grades = append(grades, s.StudentGrade)
	}
	sort.Strings(grades)
	return grades
}

func anomalyDeadline(cfg configModel.SystemConfigModel, now time.Time) (time.Time, bool) {
	start, err := helper.ParseClock(cfg.ConfigExamStartTime, cfg.ConfigActiveExamDate)
	if err != nil {
		return time.Time{}, false
	}
	// jam mulai dibaca pada zona "now" supaya perbandingan wall-clock adil
	y, m, d := cfg.ConfigActiveExamDate.Date()
	start = time.Date(y, m, d, start.Hour(), start.Minute(), 0, 0, now.Location())
	return start.Add(AnomalyGrace), true
}

func committeeLess(a, b string) bool {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		return ai < bi
	}
	return a < b
}

func sortByCommitteeNumber(rows []CommitteeOverview) {
	sort.Slice(rows, func(i, j int) bool {
		return committeeLess(rows[i].CommitteeNumber, rows[j].CommitteeNumber)
	})
}
