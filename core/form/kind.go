// Package form - Lead-capture form validation
// A fixed schema of field kinds, one rule per kind, and a per-instance
// validity state machine that decides whether the form may be submitted.
package form

// FieldKind identifies a validated field of the lead form
type FieldKind int

const (
	FieldLastname FieldKind = iota
	FieldFirstname
	FieldEmail
	FieldPhone
	FieldCity
	FieldOffer
	FieldConsent
)

// AllFields lists every validated field in schema order
var AllFields = []FieldKind{
	FieldLastname,
	FieldFirstname,
	FieldEmail,
	FieldPhone,
	FieldCity,
	FieldOffer,
	FieldConsent,
}

// Name returns the form field name the kind is bound to
func (k FieldKind) Name() string {
	switch k {
	case FieldLastname:
		return "lastname"
	case FieldFirstname:
		return "firstname"
	case FieldEmail:
		return "email"
	case FieldPhone:
		return "phone"
	case FieldCity:
		return "city"
	case FieldOffer:
		return "offer"
	case FieldConsent:
		return "consent"
	default:
		return "unknown"
	}
}

// String returns the field name
func (k FieldKind) String() string {
	return k.Name()
}

// IsCheckbox reports whether the field carries a checked state rather than text
func (k FieldKind) IsCheckbox() bool {
	return k == FieldConsent
}

// ParseFieldKind maps a form field name to its kind. Names outside the schema
// (visit-date, message, ...) return false: they are carried in the payload
// but never gated by validation.
func ParseFieldKind(name string) (FieldKind, bool) {
	for _, k := range AllFields {
		if k.Name() == name {
			return k, true
		}
	}
	return 0, false
}
