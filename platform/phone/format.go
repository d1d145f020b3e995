package phone

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"nanp_normalizer/platform/apperr"
)

// metadataRegion is the region used to interpret a 10-digit national number.
// Every NANP country shares country code 1, so US metadata resolves Canada and
// the Caribbean as well.
const metadataRegion = "US"

// Style selects an output rendering for Format.
type Style int

const (
	StyleCanonical Style = iota
	StyleDisplay
	StyleE164
	StyleNational
	StyleInternational
)

var styleNames = map[string]Style{
	"canonical":     StyleCanonical,
	"display":       StyleDisplay,
	"e164":          StyleE164,
	"national":      StyleNational,
	"international": StyleInternational,
}

// ParseStyle maps a style name to a Style.
func ParseStyle(name string) (Style, error) {
	style, ok := styleNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, apperr.NotImplemented(fmt.Sprintf("format style %q not implemented", name)).WithOp("phone.ParseStyle")
	}
	return style, nil
}

func (s Style) String() string {
	for name, style := range styleNames {
		if style == s {
			return name
		}
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// metadata parses the canonical number against libphonenumber's NANP data.
// It returns nil for ErrorNumber, the zero value, and numbers the plan does
// not assign.
func (p PhoneNumber) metadata() *phonenumbers.PhoneNumber {
	if p.IsZero() || p.IsErrorNumber() {
		return nil
	}
	num, err := phonenumbers.Parse(p.number, metadataRegion)
	if err != nil {
		return nil
	}
	if !phonenumbers.IsValidNumber(num) {
		return nil
	}
	return num
}

// Assigned reports whether the number is valid according to NANP metadata,
// e.g. the area code exists and the exchange does not start with 0 or 1.
func (p PhoneNumber) Assigned() bool {
	return p.metadata() != nil
}

// Region returns the ISO 3166-1 region owning the area code ("US", "CA", ...),
// or "" when the number is not assigned.
func (p PhoneNumber) Region() string {
	num := p.metadata()
	if num == nil {
		return ""
	}
	return phonenumbers.GetRegionCodeForNumber(num)
}

// Format renders the number in the given style. Canonical and display styles
// always succeed; the dialing styles need an assigned number.
func (p PhoneNumber) Format(style Style) (string, error) {
	var pnf phonenumbers.PhoneNumberFormat
	switch style {
	case StyleCanonical:
		return p.number, nil
	case StyleDisplay:
		return p.String(), nil
	case StyleE164:
		pnf = phonenumbers.E164
	case StyleNational:
		pnf = phonenumbers.NATIONAL
	case StyleInternational:
		pnf = phonenumbers.INTERNATIONAL
	default:
		return "", apperr.NotImplemented(fmt.Sprintf("format style %d not implemented", int(style))).WithOp("phone.Format")
	}

	num := p.metadata()
	if num == nil {
		return "", apperr.InvalidNumber(fmt.Sprintf("%s is not an assigned number", p.number)).WithOp("phone.Format")
	}
	return phonenumbers.Format(num, pnf), nil
}
