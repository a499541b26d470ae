package vyatsu

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/notaneet/rasp43/config"
	"github.com/notaneet/rasp43/query"
	"github.com/tealeg/xlsx/v3"
	"go.uber.org/zap"
)

func fixtureLayout() config.Layout {
	layout := smallLayout()
	layout.Region = config.Region{StartRow: 0, Rows: 5, StartCol: 0, Cols: 4}
	layout.Dates = config.DateRegion{Region: config.Region{StartRow: 0, Rows: 5, StartCol: 4, Cols: 1}, Step: 7, Token: 1}
	return layout
}

func fixtureWorkbook(t *testing.T) *xlsx.File {
	t.Helper()

	f := xlsx.NewFile()
	sh, err := f.AddSheet(fixtureLayout().SheetName)
	if err != nil {
		t.Fatal(err)
	}
	for _, cells := range [][]string{
		{"Группа А-1", "", "", "", "Понедельник 02.09"},
		{sentinel, "", "", "", ""},
		{"Математика", "лк", "Иванов", "101", ""},
		{"", "", "", "", ""},
		{"История", "", "Сидоров", "103", ""},
	} {
		row := sh.AddRow()
		for _, v := range cells {
			row.AddCell().SetString(v)
		}
	}
	return f
}

const wantMonday = "<b>Понедельник, 02.09:</b>\n" +
	"<u>8.20-9.50</u> - Математика [лк], Преп: Иванов, Ауд: 101\n" +
	"<u>11.45-13.15</u> - История Преп: Сидоров, Ауд: 103\n"

func TestGetTimetableFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.xlsx")
	if err := fixtureWorkbook(t).Save(path); err != nil {
		t.Fatal(err)
	}

	p := GetPlugin(config.ParserConfig{Source: path, Layout: fixtureLayout()}, zap.NewNop())
	tt, err := p.GetTimetable()
	if err != nil {
		t.Fatal(err)
	}
	if got := query.DayView(tt, "Группа А-1", 0); got != wantMonday {
		t.Errorf("DayView() = %q, want %q", got, wantMonday)
	}
}

func TestGetTimetableMissingFile(t *testing.T) {
	p := GetPlugin(config.ParserConfig{Source: filepath.Join(t.TempDir(), "none.xlsx"), Layout: fixtureLayout()}, zap.NewNop())
	if _, err := p.GetTimetable(); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetTimetableFromSite(t *testing.T) {
	var buf bytes.Buffer
	if err := fixtureWorkbook(t).Write(&buf); err != nil {
		t.Fatal(err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, `<html><body>
			<a href="/files/rules.pdf">Правила</a>
			<a href="/files/university.xlsx">Расписание института</a>
			<a href="/files/college.xlsx">Расписание колледжа</a>
		</body></html>`)
	})
	mux.HandleFunc("/files/college.xlsx", func(w http.ResponseWriter, r *http.Request) {
		w.Write(buf.Bytes())
	})
	mux.HandleFunc("/files/university.xlsx", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "wrong file", http.StatusTeapot)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p := GetPlugin(config.ParserConfig{
		Source:      srv.URL + "/",
		Layout:      fixtureLayout(),
		LinkMatcher: config.Matcher{MatchRaw: []string{"колледж"}},
	}, zap.NewNop())

	tt, err := p.GetTimetable()
	if err != nil {
		t.Fatal(err)
	}
	if got := query.DayView(tt, "Группа А-1", 0); got != wantMonday {
		t.Errorf("DayView() = %q, want %q", got, wantMonday)
	}
}

func TestScrapNoLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, `<html><body><a href="/files/rules.pdf">Правила</a></body></html>`)
	}))
	defer srv.Close()

	p := GetPlugin(config.ParserConfig{Source: srv.URL + "/", Layout: fixtureLayout()}, zap.NewNop())
	if _, err := p.GetTimetable(); !errors.Is(err, ErrNoTimetableLink) {
		t.Errorf("err = %v, want ErrNoTimetableLink", err)
	}
}

func TestIsSpreadsheet(t *testing.T) {
	tests := []struct {
		link string
		want bool
	}{
		{"https://example.org/files/rasp.xlsx", true},
		{"https://example.org/files/RASP.XLS?v=2", true},
		{"https://example.org/files/rasp.pdf", false},
		{"https://example.org/files/", false},
	}
	for _, tt := range tests {
		if got := isSpreadsheet(tt.link); got != tt.want {
			t.Errorf("isSpreadsheet(%q) = %v, want %v", tt.link, got, tt.want)
		}
	}
}
