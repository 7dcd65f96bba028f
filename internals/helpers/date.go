// file: internals/helpers/date.go
package helper

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateOnly membuang komponen jam (kolom bertipe DATE dibandingkan per hari).
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay: perbandingan tanggal tanpa peduli jam/zona penyimpanan.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ParseClock mem-parse "HH:MM" (jam mulai ujian di system_config) menjadi
// time.Time pada tanggal yang diberikan.
func ParseClock(clock string, onDate time.Time) (time.Time, error) {
	parts := strings.SplitN(strings.TrimSpace(clock), ":", 2)
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("format jam tidak valid: %q", clock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return time.Time{}, fmt.Errorf("format jam tidak valid: %q", clock)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return time.Time{}, fmt.Errorf("format jam tidak valid: %q", clock)
	}
	y, mo, d := onDate.Date()
	return time.Date(y, mo, d, h, m, 0, 0, onDate.Location()), nil
}
