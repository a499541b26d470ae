package utils

import (
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"Иванов И.И.", []string{"Иванов И.И."}},
		{"Иванов И.И.\n Петров П.П. ", []string{"Иванов И.И.", "Петров П.П."}},
		{"101\r\n\n203", []string{"101", "", "203"}},
	}
	for _, tt := range tests {
		if got := SplitLines(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitLines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetOrString(t *testing.T) {
	s := []string{"a", "b"}
	if got := GetOrString(s, 1, "-"); got != "b" {
		t.Errorf("got %q", got)
	}
	if got := GetOrString(s, 2, "-"); got != "-" {
		t.Errorf("got %q", got)
	}
	if got := GetOrString(s, -1, "-"); got != "-" {
		t.Errorf("got %q", got)
	}
}

func TestSlotStart(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"8.20-9.50", 8*60 + 20, true},
		{"18.55 - 20.25", 18*60 + 55, true},
		{"10:00-11:30", 10 * 60, true},
		{"", 0, false},
		{"после обеда", 0, false},
	}
	for _, tt := range tests {
		got, ok := SlotStart(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("SlotStart(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDayMonth(t *testing.T) {
	d, m, ok := DayMonth("02.09")
	if !ok || d != 2 || m != 9 {
		t.Errorf("DayMonth(02.09) = %d %d %v", d, m, ok)
	}
	if _, _, ok := DayMonth("9.1.2025"); !ok {
		t.Error("DayMonth(9.1.2025) should parse")
	}
	for _, bad := range []string{"", "Н/Д", "32.01", "01.13"} {
		if _, _, ok := DayMonth(bad); ok {
			t.Errorf("DayMonth(%q) should fail", bad)
		}
	}
}

func TestStringEnum(t *testing.T) {
	var e StringEnum
	_ = e.Set("a")
	_ = e.Set("b")
	if e.String() != "a,b" || e.Type() != "strings" {
		t.Errorf("unexpected enum %q", e.String())
	}
}

func TestStripSpaces(t *testing.T) {
	if got := StripSpaces(" Группа\tИСП 21 \n"); got != "ГруппаИСП21" {
		t.Errorf("got %q", got)
	}
}
