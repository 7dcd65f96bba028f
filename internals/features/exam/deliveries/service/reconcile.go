// file: internals/features/exam/deliveries/service/reconcile.go
package service

import (
	"errors"
	"time"

	"examcontrol_backend/internals/constants"
	deliveryModel "examcontrol_backend/internals/features/exam/deliveries/model"
	supervisionModel "examcontrol_backend/internals/features/exam/supervisions/model"
	userModel "examcontrol_backend/internals/features/users/users/model"
	helper "examcontrol_backend/internals/helpers"
)

// Pesan-pesan ini tampil langsung ke petugas, jadi memakai bahasa antarmuka
// sekolah (Arab), bukan bahasa log internal.
var (
	ErrSessionAlreadyClosed = errors.New("تم إغلاق اللجنة مسبقًا ولا يمكن إعادة فتحها")
	ErrTargetNotFound       = errors.New("لم يتم العثور على لجنة أو مستخدم بهذا الرقم")
	ErrNotProctorToday      = errors.New("هذا المستخدم ليس مراقبًا مكلفًا بلجنة اليوم")
	ErrCommitteeNotClosed   = errors.New("اللجنة لم تُغلق بعد من قبل المراقب")
	ErrAlreadyReceived      = errors.New("تم استلام جميع مظاريف هذه اللجنة مسبقًا")
)

// State per (lajnah, kelas) — tipe ber-tag eksplisit, diturunkan murni dari
// kumpulan baris log. Kehadiran baris PENDING = lajnah ditutup di lapangan;
// baris CONFIRMED per kelas = amplop sudah dicocokkan di meja.
type StateKind int

const (
	StateNotStarted StateKind = iota
	StateFieldClosed
	StateConfirmed
)

type GradeState struct {
	Kind         StateKind
	ProctorName  string    // pengawas yang menutup (FieldClosed/Confirmed)
	ReceiverName string    // petugas meja (Confirmed)
	Time         time.Time // waktu event terakhir yang menentukan state
}

// DeriveGradeState menurunkan state satu (lajnah, kelas) dari baris log
// tanggal aktif. Idempoten: snapshot sama → hasil sama.
func DeriveGradeState(committee, grade string, logs []deliveryModel.DeliveryLogModel) GradeState {
	state := GradeState{Kind: StateNotStarted}
	for _, l := range logs {
		if l.DeliveryLogCommitteeNumber != committee {
			continue
		}
		if !helper.GradeMatches(grade, l.DeliveryLogGrade) {
			continue
		}
		switch l.DeliveryLogStatus {
		case deliveryModel.StatusConfirmed:
			// CONFIRMED menang atas FieldClosed apa pun urutannya
			state = GradeState{
				Kind:         StateConfirmed,
				ProctorName:  l.DeliveryLogProctorName,
				ReceiverName: l.DeliveryLogTeacherName,
				Time:         l.DeliveryLogTime,
			}
		case deliveryModel.StatusPending:
			if state.Kind == StateNotStarted {
				state = GradeState{
					Kind:        StateFieldClosed,
					ProctorName: l.DeliveryLogProctorName,
					Time:        l.DeliveryLogTime,
				}
			}
		}
	}
	return state
}

// SubmittedCommittees: himpunan lajnah yang sudah punya log apa pun pada
// tanggal aktif ("jaheza" — siap diambil meja estilam).
func SubmittedCommittees(logs []deliveryModel.DeliveryLogModel) map[string]struct{} {
	out := map[string]struct{}{}
	for _, l := range logs {
		out[l.DeliveryLogCommitteeNumber] = struct{}{}
	}
	return out
}

// CanFinishSession: penutupan bersifat sekali-jalan. Log apa pun yang sudah
// ada untuk (lajnah, tanggal) berarti penutupan ulang ditolak tanpa menulis.
func CanFinishSession(committee string, logs []deliveryModel.DeliveryLogModel) error {
	if _, ok := SubmittedCommittees(logs)[committee]; ok {
		return ErrSessionAlreadyClosed
	}
	return nil
}

// NewClosureLog membangun baris PENDING tunggal untuk penutupan lajnah,
// membawa label gabungan semua kelas yang hadir di lajnah itu.
func NewClosureLog(committee string, grades []string, proctorName string, date, now time.Time) deliveryModel.DeliveryLogModel {
	label := helper.JoinGrades(grades)
	return deliveryModel.DeliveryLogModel{
		DeliveryLogCommitteeNumber: committee,
		DeliveryLogGrade:           label,
		DeliveryLogGradeKey:        helper.GradeKey(label),
		DeliveryLogType:            deliveryModel.TypeReceive,
		DeliveryLogStatus:          deliveryModel.StatusPending,
		DeliveryLogProctorName:     proctorName,
		DeliveryLogTeacherName:     "-",
		DeliveryLogDate:            helper.DateOnly(date),
		DeliveryLogTime:            now,
	}
}

// NewConfirmation membangun satu baris CONFIRMED per (lajnah, kelas).
func NewConfirmation(committee, grade, proctorName, receiverName string, date, now time.Time) deliveryModel.DeliveryLogModel {
	return deliveryModel.DeliveryLogModel{
		DeliveryLogCommitteeNumber: committee,
		DeliveryLogGrade:           grade,
		DeliveryLogGradeKey:        helper.GradeKey(grade),
		DeliveryLogType:            deliveryModel.TypeReceive,
		DeliveryLogStatus:          deliveryModel.StatusConfirmed,
		DeliveryLogProctorName:     proctorName,
		DeliveryLogTeacherName:     receiverName,
		DeliveryLogDate:            helper.DateOnly(date),
		DeliveryLogTime:            now,
	}
}

// ResolveTarget menerjemahkan input meja estilam menjadi nomor lajnah.
// Input boleh nomor lajnah literal atau NIK staf; NIK harus milik PROCTOR
// yang punya supervision pada tanggal aktif.
func ResolveTarget(identifier string, users []userModel.UserModel, supervisions []supervisionModel.SupervisionModel) (string, error) {
	if identifier == "" {
		return "", ErrTargetNotFound
	}

	// NIK staf?
	for _, u := range users {
		if u.UserNationalID != identifier {
			continue
		}
		if u.UserRole != constants.RoleProctor {
			return "", ErrNotProctorToday
		}
		for _, s := range supervisions {
			if s.SupervisionTeacherID == u.UserID {
				return s.SupervisionCommitteeNumber, nil
			}
		}
		return "", ErrNotProctorToday
	}

	// Kalau bukan NIK yang dikenal, perlakukan sebagai nomor lajnah.
	return identifier, nil
}

// CheckConfirmable: prasyarat estilam normal — lajnah harus sudah ditutup di
// lapangan, dan belum semua kelasnya CONFIRMED.
func CheckConfirmable(committee string, expectedGrades []string, logs []deliveryModel.DeliveryLogModel) error {
	if _, ok := SubmittedCommittees(logs)[committee]; !ok {
		return ErrCommitteeNotClosed
	}
	if len(expectedGrades) == 0 {
		return ErrTargetNotFound
	}
	for _, g := range expectedGrades {
		if DeriveGradeState(committee, g, logs).Kind != StateConfirmed {
			return nil
		}
	}
	return ErrAlreadyReceived
}
