package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLEncoder handles YAML output
type YAMLEncoder struct{}

// NewYAMLEncoder creates a new YAML encoder
func NewYAMLEncoder() *YAMLEncoder {
	return &YAMLEncoder{}
}

// Format returns the encoder format identifier
func (e *YAMLEncoder) Format() string {
	return "yaml"
}

// Encode writes r as a YAML document
func (e *YAMLEncoder) Encode(w io.Writer, r Report) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close()
}
