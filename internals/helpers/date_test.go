// file: internals/helpers/date_test.go
package helper

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	day := time.Date(2026, 3, 10, 15, 42, 0, 0, time.UTC)

	got, err := ParseClock("07:30", day)
	if err != nil {
		t.Fatalf("ParseClock: %v", err)
	}
	if got.Hour() != 7 || got.Minute() != 30 || got.Day() != 10 {
		t.Errorf("ParseClock = %v", got)
	}

	for _, bad := range []string{"", "0730", "25:00", "07:61", "ab:cd"} {
		if _, err := ParseClock(bad, day); err == nil {
			t.Errorf("ParseClock(%q): expected error", bad)
		}
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 3, 10, 1, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	c := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Error("SameDay(a, b) = false")
	}
	if SameDay(a, c) {
		t.Error("SameDay(a, c) = true")
	}
}
