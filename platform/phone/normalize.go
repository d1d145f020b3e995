package phone

import "nanp_normalizer/platform/sanitize"

const (
	canonicalLength = 10
	prefixedLength  = 11
	countryPrefix   = '1'
)

// Parts holds the 3/3/4 split of a canonical number.
type Parts struct {
	AreaCode     string
	ExchangeCode string
	BaseCode     string
}

// Join concatenates the parts back into the canonical number.
func (p Parts) Join() string {
	return p.AreaCode + p.ExchangeCode + p.BaseCode
}

// Sanitize removes every character that is not an ASCII digit, keeping the
// remaining digits in order. It does no length or format validation.
func Sanitize(text string) string {
	return sanitize.Keep(text, ValidChars)
}

// Validate returns the canonical 10-digit form of digits, or ErrorNumber.
//
// Only 10 and 11 character inputs are considered, every character must be in
// ValidChars, and an 11 digit number must start with the country prefix 1,
// which is dropped. Validate does not assume Sanitize has run.
func Validate(digits string) string {
	if len(digits) != canonicalLength && len(digits) != prefixedLength {
		return ErrorNumber
	}

	if !sanitize.Contains(digits, ValidChars) {
		return ErrorNumber
	}

	if len(digits) == prefixedLength {
		if digits[0] != countryPrefix {
			return ErrorNumber
		}
		digits = digits[1:]
	}

	return digits
}

// Split decomposes a canonical number without validating it.
// canonical must be at least 10 bytes long.
func Split(canonical string) Parts {
	return Parts{
		AreaCode:     canonical[0:3],
		ExchangeCode: canonical[3:6],
		BaseCode:     canonical[6:10],
	}
}
