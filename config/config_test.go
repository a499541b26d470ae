package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMatcher(t *testing.T) {
	m := Matcher{}
	if !m.Match("Группа ИСП-21") {
		t.Fatal("empty matcher must match everything")
	}

	_ = m.MatchRaw.Set("исп")
	_ = m.MatchRaw.Set("~^Группа ПКС")
	if err := m.Compile(); err != nil {
		t.Fatal(err)
	}

	tests := map[string]bool{
		"Группа ИСП-21": true,
		"Группа ПКС-11": true,
		"ПКС-11":        false,
		"Группа ЭК-31":  false,
	}
	for name, want := range tests {
		if got := m.Match(name); got != want {
			t.Errorf("Match(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestMatcherBadRegexp(t *testing.T) {
	m := Matcher{MatchRaw: []string{"~("}}
	if err := m.Compile(); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()
	if err := l.Validate(); err != nil {
		t.Fatal(err)
	}
	if got := len(l.SlotsFor(0)); got != 7 {
		t.Errorf("monday slots = %d, want 7", got)
	}
	if got := len(l.SlotsFor(4)); got != 7 {
		t.Errorf("friday slots = %d, want 7", got)
	}
	if got := len(l.SlotsFor(5)); got != 6 {
		t.Errorf("saturday slots = %d, want 6", got)
	}
	if got := len(l.SlotsFor(9)); got != 6 {
		t.Errorf("day 9 slots = %d, want 6", got)
	}
	if got := l.WeekdayName(7); got != "Вторник" {
		t.Errorf("WeekdayName(7) = %q", got)
	}
}

func TestLoadLayoutOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	data := []byte("sheet_name: Лист1\nregion:\n  start_row: 2\n  rows: 10\n  start_col: 0\n  cols: 8\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	l, err := LoadLayout(path)
	if err != nil {
		t.Fatal(err)
	}
	if l.SheetName != "Лист1" || l.Region.Rows != 10 {
		t.Errorf("overlay not applied: %+v", l.Region)
	}
	if l.Sentinel != "Дисциплина,модуль" {
		t.Errorf("defaults lost: sentinel %q", l.Sentinel)
	}
}

func TestLayoutValidate(t *testing.T) {
	l := DefaultLayout()
	l.Slots = []SlotTable{{FromDay: 5, Times: []string{"1"}}, {FromDay: 0, Times: []string{"2"}}}
	if err := l.Validate(); !errors.Is(err, ErrInvalidLayout) {
		t.Errorf("unordered slot tables: got %v", err)
	}

	l = DefaultLayout()
	l.Region.Rows = 1
	if err := l.Validate(); !errors.Is(err, ErrInvalidLayout) {
		t.Errorf("region without data rows: got %v", err)
	}
}

func TestBotConfig(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_IDS", "1, 42")
	t.Setenv("SCHEDULE_FILE", "")

	cfg, err := LoadBotConfig(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ScheduleFile != "schedule_file.xlsx" {
		t.Errorf("ScheduleFile = %q", cfg.ScheduleFile)
	}
	if !cfg.IsAdmin(42) || cfg.IsAdmin(7) {
		t.Errorf("admins = %v", cfg.AdminIDs)
	}

	t.Setenv("ADMIN_IDS", "x")
	if _, err := LoadBotConfig(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("expected error for bad ADMIN_IDS")
	}
}

func TestBotConfigNoToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	if _, err := LoadBotConfig(filepath.Join(t.TempDir(), "missing.env")); !errors.Is(err, ErrNoToken) {
		t.Errorf("got %v", err)
	}
}
