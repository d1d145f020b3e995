package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONEncoder handles JSON output
type JSONEncoder struct{}

// NewJSONEncoder creates a new JSON encoder
func NewJSONEncoder() *JSONEncoder {
	return &JSONEncoder{}
}

// Format returns the encoder format identifier
func (e *JSONEncoder) Format() string {
	return "json"
}

// Encode writes r as indented JSON
func (e *JSONEncoder) Encode(w io.Writer, r Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
