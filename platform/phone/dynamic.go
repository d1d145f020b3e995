package phone

import "nanp_normalizer/platform/apperr"

const msgNotString = "input was not a string"

// textOf reports the string form of v when v is text. Byte and rune slices
// count as text; everything else, nil and fmt.Stringer values included, does not.
func textOf(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case []byte:
		return string(t), true
	case []rune:
		return string(t), true
	default:
		return "", false
	}
}

// NewFromValue is New for callers holding untyped values, such as decoded JSON.
// Non-text values fail with apperr.KindInvalidInput.
func NewFromValue(v any) (PhoneNumber, error) {
	s, ok := textOf(v)
	if !ok {
		return PhoneNumber{}, apperr.InvalidInput(msgNotString).WithOp("phone.NewFromValue")
	}
	return New(s), nil
}

// SanitizeValue is Sanitize with a runtime text check.
func SanitizeValue(v any) (string, error) {
	s, ok := textOf(v)
	if !ok {
		return "", apperr.InvalidInput(msgNotString).WithOp("phone.SanitizeValue")
	}
	return Sanitize(s), nil
}

// ValidateValue is Validate with a runtime text check.
func ValidateValue(v any) (string, error) {
	s, ok := textOf(v)
	if !ok {
		return "", apperr.InvalidInput(msgNotString).WithOp("phone.ValidateValue")
	}
	return Validate(s), nil
}
