// Package report renders a decomposed phone number for command-line output.
package report

import (
	"fmt"
	"io"

	"nanp_normalizer/platform/apperr"
	"nanp_normalizer/platform/phone"
)

// Report is the flattened view of a normalized number.
type Report struct {
	Input        string `json:"input" yaml:"input"`
	Number       string `json:"number" yaml:"number"`
	AreaCode     string `json:"area_code" yaml:"area_code"`
	ExchangeCode string `json:"exchange_code" yaml:"exchange_code"`
	BaseCode     string `json:"base_code" yaml:"base_code"`
	Display      string `json:"display" yaml:"display"`
	Valid        bool   `json:"valid" yaml:"valid"`
	Assigned     bool   `json:"assigned" yaml:"assigned"`
	Region       string `json:"region,omitempty" yaml:"region,omitempty"`
	E164         string `json:"e164,omitempty" yaml:"e164,omitempty"`
}

// FromNumber builds a Report for p, which was constructed from raw.
func FromNumber(raw string, p phone.PhoneNumber) Report {
	r := Report{
		Input:        raw,
		Number:       p.Number(),
		AreaCode:     p.AreaCode(),
		ExchangeCode: p.ExchangeCode(),
		BaseCode:     p.BaseCode(),
		Display:      p.String(),
		Valid:        !p.IsErrorNumber(),
		Assigned:     p.Assigned(),
		Region:       p.Region(),
	}
	if e164, err := p.Format(phone.StyleE164); err == nil {
		r.E164 = e164
	}
	return r
}

// Encoder writes a Report in one output format.
type Encoder interface {
	Encode(w io.Writer, r Report) error
	Format() string
}

// ForFormat returns the encoder registered under name.
func ForFormat(name string) (Encoder, error) {
	switch name {
	case "json":
		return NewJSONEncoder(), nil
	case "yaml":
		return NewYAMLEncoder(), nil
	case "text":
		return NewTextEncoder(), nil
	default:
		return nil, apperr.NotImplemented(fmt.Sprintf("output format %q not implemented", name)).WithOp("report.ForFormat")
	}
}
