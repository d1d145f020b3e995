package phone

import (
	"strings"
	"testing"
)

const unprintable = "\x00\x01\x02\x03\x04\x05\x06\x07\b\t\n\x0b\f\r\x0e\x0f\x10\x11\x12\x13\x14\x15\x16\x17\x18\x19\x1a\x1b\x1c\x1d\x1e\x1f"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "digits unchanged", input: "1234", want: "1234"},
		{name: "formatted number", input: "(123) 456-7890", want: "1234567890"},
		{name: "dots", input: "123.456.7890", want: "1234567890"},
		{name: "control characters", input: unprintable + "01234567890123456789", want: "01234567890123456789"},
		{
			name:  "letters and punctuation",
			input: "a012asdfasfwei345earwar;klasjdf678901a;lksjd\t\nfaklsjfa23^((*$&(#*))@)*&$(&456789",
			want:  "01234567890123456789",
		},
		{name: "no digits", input: unprintable + "asjdafklsjfklajsklf;jsa*&*()&*()&*()&$(*)&)$*(", want: ""},
		{name: "minus sign dropped", input: "-1234", want: "1234"},
		{name: "non-ascii digits dropped", input: "１２３٤5", want: "5"},
		{name: "invalid utf8 dropped", input: "12\xff34", want: "1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ten digits", input: "0123456789", want: "0123456789"},
		{name: "eleven digits leading one", input: "10123456789", want: "0123456789"},
		{name: "eleven digits leading six", input: "60123456789", want: ErrorNumber},
		{name: "eleven digits leading two", input: "21234567890", want: ErrorNumber},
		{name: "nine digits", input: "123456789", want: ErrorNumber},
		{name: "two digits", input: "10", want: ErrorNumber},
		{name: "empty", input: "", want: ErrorNumber},
		{name: "twelve digits", input: "112345678901", want: ErrorNumber},
		{name: "thirty digits", input: "012345678901234567890123456789", want: ErrorNumber},
		{name: "ten chars with letter", input: "012345678a", want: ErrorNumber},
		{name: "eleven chars with dash", input: "123-4567890", want: ErrorNumber},
		{name: "raw garbage", input: unprintable + "a012asdf345", want: ErrorNumber},
		{name: "multibyte digits", input: "１２３４５", want: ErrorNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.input); got != tt.want {
				t.Errorf("Validate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	parts := Split("0123456789")

	if parts.AreaCode != "012" {
		t.Fatalf("expected area code 012, got %s", parts.AreaCode)
	}
	if parts.ExchangeCode != "345" {
		t.Fatalf("expected exchange code 345, got %s", parts.ExchangeCode)
	}
	if parts.BaseCode != "6789" {
		t.Fatalf("expected base code 6789, got %s", parts.BaseCode)
	}

	sentinel := Split(ErrorNumber)
	if sentinel.AreaCode != "000" || sentinel.ExchangeCode != "000" || sentinel.BaseCode != "0000" {
		t.Fatalf("unexpected sentinel split: %+v", sentinel)
	}
}

var propertyCorpus = []string{
	"",
	"1",
	"(123) 456-7890",
	"+1 (917) 555-1234",
	"1-800-FLOWERS",
	"21234567890",
	"phone: 212.555.0100 ext 4",
	unprintable,
	unprintable + "0123456789",
	"١٢٣٤٥٦٧٨٩٠",
	"\xff\xfe123\xc0",
	strings.Repeat("9", 40),
	"call me maybe",
}

func TestSanitizeProperties(t *testing.T) {
	for _, input := range propertyCorpus {
		out := Sanitize(input)

		if len(out) > len(input) {
			t.Errorf("Sanitize(%q) grew input to %d bytes", input, len(out))
		}
		for i := 0; i < len(out); i++ {
			if !strings.ContainsRune(ValidChars, rune(out[i])) {
				t.Errorf("Sanitize(%q) kept non-digit %q", input, out[i])
			}
		}
		if again := Sanitize(out); again != out {
			t.Errorf("Sanitize not idempotent for %q: %q then %q", input, out, again)
		}

		// digits keep their relative order
		var expected strings.Builder
		for i := 0; i < len(input); i++ {
			if input[i] >= '0' && input[i] <= '9' {
				expected.WriteByte(input[i])
			}
		}
		if out != expected.String() {
			t.Errorf("Sanitize(%q) = %q, want %q", input, out, expected.String())
		}
	}
}

func TestValidateProperties(t *testing.T) {
	for _, input := range propertyCorpus {
		for _, candidate := range []string{input, Sanitize(input)} {
			out := Validate(candidate)
			if len(out) != canonicalLength {
				t.Fatalf("Validate(%q) returned %d chars", candidate, len(out))
			}
			if out != ErrorNumber && !strings.HasSuffix(candidate, out) {
				t.Errorf("Validate(%q) = %q, expected a suffix of the input", candidate, out)
			}
		}
	}
}

func TestRoundTripDecomposition(t *testing.T) {
	for _, input := range propertyCorpus {
		canonical := Validate(Sanitize(input))
		parts := Split(canonical)

		if len(parts.AreaCode) != 3 || len(parts.ExchangeCode) != 3 || len(parts.BaseCode) != 4 {
			t.Errorf("unexpected part lengths for %q: %+v", input, parts)
		}
		if parts.Join() != canonical {
			t.Errorf("parts of %q join to %q, want %q", input, parts.Join(), canonical)
		}
	}
}
