// file: internals/helpers/grade.go
package helper

import (
	"strings"
)

// Pemisah label gabungan: pencatatan lama memakai koma Arab maupun Latin.
const gradeJoinSeparator = "، "

var arabicDigits = map[rune]rune{
	'٠': '0', '١': '1', '٢': '2', '٣': '3', '٤': '4',
	'٥': '5', '٦': '6', '٧': '7', '٨': '8', '٩': '9',
}

// GradeKey menormalkan label kelas menjadi kunci stabil:
// trim, lowercase, digit Arab → ASCII, dan seluruh whitespace internal dibuang.
// Kunci ini disimpan saat ingest (students & delivery_logs) supaya pencocokan
// utama bisa exact-match, bukan substring.
func GradeKey(label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(label)) {
		if mapped, ok := arabicDigits[r]; ok {
			r = mapped
		}
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SplitGrades memecah label gabungan ("1-1، 1-2") menjadi label per kelas.
func SplitGrades(label string) []string {
	normalized := strings.ReplaceAll(label, "،", ",")
	parts := strings.Split(normalized, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinGrades menggabungkan daftar kelas menjadi satu label (format pencatatan lapangan).
func JoinGrades(grades []string) string {
	return strings.Join(grades, gradeJoinSeparator)
}

// GradeMatches menguji apakah label log pengiriman mencakup kelas tertentu.
// Urutan pengecekan:
//  1. exact match per bagian label (kunci ternormalisasi) — jalur utama;
//  2. substring containment — shim kompatibilitas untuk baris lama yang
//     labelnya tidak pernah dinormalkan. Jangan dipakai untuk data baru.
func GradeMatches(gradeLabel, logGradeLabel string) bool {
	want := GradeKey(gradeLabel)
	if want == "" {
		return false
	}
	for _, part := range SplitGrades(logGradeLabel) {
		if GradeKey(part) == want {
			return true
		}
	}
	full := GradeKey(logGradeLabel)
	return strings.Contains(full, want) || strings.Contains(want, full)
}
