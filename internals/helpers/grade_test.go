// file: internals/helpers/grade_test.go
package helper

import (
	"reflect"
	"testing"
)

func TestGradeKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1-1", "1-1"},
		{" 1-1 ", "1-1"},
		{"١-٢", "1-2"},          // digit Arab → ASCII
		{"Grade 1-1", "grade1-1"}, // lowercase + whitespace dibuang
		{"1 - 1", "1-1"},
		{"", ""},
	}
	for _, c := range cases {
		if got := GradeKey(c.in); got != c.want {
			t.Errorf("GradeKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSplitGrades(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"1-1، 1-2", []string{"1-1", "1-2"}},
		{"1-1,1-2", []string{"1-1", "1-2"}},
		{"1-1", []string{"1-1"}},
		{"  ", []string{}},
	}
	for _, c := range cases {
		if got := SplitGrades(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("SplitGrades(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestJoinGrades(t *testing.T) {
	got := JoinGrades([]string{"1-1", "1-2"})
	if got != "1-1، 1-2" {
		t.Errorf("JoinGrades = %q", got)
	}
}

func TestGradeMatches(t *testing.T) {
	cases := []struct {
		grade string
		label string
		want  bool
	}{
		{"1-1", "1-1", true},
		{"1-1", "1-1، 1-2", true},  // label gabungan penutupan lajnah
		{"1-2", "1-1، 1-2", true},
		{"1-3", "1-1، 1-2", false},
		{"1-1", "١-١", true},        // digit Arab di baris lama
		{"1-1", " 1-1 ", true},
		{"", "1-1", false},
	}
	for _, c := range cases {
		if got := GradeMatches(c.grade, c.label); got != c.want {
			t.Errorf("GradeMatches(%q, %q) = %v, want %v", c.grade, c.label, got, c.want)
		}
	}
}
