package converter

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/notaneet/rasp43/model"
)

type JSONConverter struct {
	Pretty bool
}

// Write кириллица и <> пишутся как есть, без \u-экранирования
func (j JSONConverter) Write(tt *model.Timetable, out string) error {
	if out == "" {
		return fmt.Errorf("json: %w", ErrEmptyOutput)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	if j.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(tt); err != nil {
		return err
	}
	return f.Close()
}
