// Package phone normalizes and decomposes North American (NANP) telephone numbers.
// This is part of the platform layer and contains no business logic.
//
// Construction runs a fixed pipeline: Sanitize strips everything except ASCII
// digits, Validate reduces the digits to a canonical 10-digit number, and Split
// breaks that number into area, exchange and base codes.
//
// Malformed content is never reported as an error. It yields ErrorNumber, which
// still decomposes into "000", "000" and "0000". Callers that need to tell the
// difference check IsErrorNumber. Errors are reserved for values that are not
// text at all (see NewFromValue).
package phone

import "fmt"

const (
	// ValidChars is the set of characters kept by Sanitize and accepted by Validate.
	ValidChars = "0123456789"
	// ErrorNumber is the canonical number produced for any input that fails validation.
	ErrorNumber = "0000000000"
)

// PhoneNumber is an immutable, fully decomposed NANP number.
// The zero value was not produced by New and reports IsZero.
type PhoneNumber struct {
	number string
	parts  Parts
}

// New sanitizes, validates and decomposes raw. It never fails; invalid
// content produces a PhoneNumber whose Number is ErrorNumber.
func New(raw string) PhoneNumber {
	number := Validate(Sanitize(raw))
	return PhoneNumber{
		number: number,
		parts:  Split(number),
	}
}

// Number returns the canonical 10-digit number, or ErrorNumber.
func (p PhoneNumber) Number() string {
	return p.number
}

// AreaCode returns the first three digits of the canonical number.
func (p PhoneNumber) AreaCode() string {
	return p.parts.AreaCode
}

// ExchangeCode returns digits four through six of the canonical number.
func (p PhoneNumber) ExchangeCode() string {
	return p.parts.ExchangeCode
}

// BaseCode returns the last four digits of the canonical number.
func (p PhoneNumber) BaseCode() string {
	return p.parts.BaseCode
}

// Parts returns all three components.
func (p PhoneNumber) Parts() Parts {
	return p.parts
}

// String renders the number as "(AAA) EEE-BBBB".
func (p PhoneNumber) String() string {
	return fmt.Sprintf("(%s) %s-%s", p.parts.AreaCode, p.parts.ExchangeCode, p.parts.BaseCode)
}

// IsErrorNumber reports whether the input failed validation.
func (p PhoneNumber) IsErrorNumber() bool {
	return p.number == ErrorNumber
}

// Equal compares canonical numbers.
func (p PhoneNumber) Equal(other PhoneNumber) bool {
	return p.number == other.number
}

// IsZero reports whether p is the zero value rather than the result of New.
func (p PhoneNumber) IsZero() bool {
	return p.number == ""
}
