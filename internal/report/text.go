package report

import (
	"fmt"
	"io"
)

// TextEncoder writes one "key: value" pair per line.
type TextEncoder struct{}

func NewTextEncoder() *TextEncoder {
	return &TextEncoder{}
}

func (e *TextEncoder) Format() string {
	return "text"
}

func (e *TextEncoder) Encode(w io.Writer, r Report) error {
	lines := [][2]string{
		{"input", fmt.Sprintf("%q", r.Input)},
		{"number", r.Number},
		{"area_code", r.AreaCode},
		{"exchange_code", r.ExchangeCode},
		{"base_code", r.BaseCode},
		{"display", r.Display},
		{"valid", fmt.Sprint(r.Valid)},
		{"assigned", fmt.Sprint(r.Assigned)},
		{"region", r.Region},
		{"e164", r.E164},
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%s: %s\n", line[0], line[1]); err != nil {
			return fmt.Errorf("failed to write text: %w", err)
		}
	}
	return nil
}
