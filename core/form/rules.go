package form

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// PhonePolicy selects how strictly phone numbers are checked
type PhonePolicy string

const (
	// PhoneDigits accepts any 10 ASCII digits once whitespace is removed
	PhoneDigits PhonePolicy = "digits"

	// PhoneFrench requires a French number: 0, +33 or 0033, then 9 digits
	// starting with 1-9, optionally separated by spaces, dots or dashes
	PhoneFrench PhonePolicy = "french"
)

const minNameLength = 2

var (
	emailPattern       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	frenchPhonePattern = regexp.MustCompile(`^(?:(?:\+|00)33|0)\s*[1-9](?:[\s.-]*\d{2}){4}$`)
)

// check evaluates the rule of kind against a raw value
func (s *Schema) check(kind FieldKind, v Value) bool {
	switch kind {
	case FieldLastname, FieldFirstname:
		return utf8.RuneCountInString(strings.TrimSpace(v.Text)) >= minNameLength
	case FieldEmail:
		return isEmail(strings.TrimSpace(v.Text))
	case FieldPhone:
		if s.phonePolicy == PhoneFrench {
			return frenchPhonePattern.MatchString(strings.TrimSpace(v.Text))
		}
		return isTenDigits(v.Text)
	case FieldCity, FieldOffer:
		return v.Text != ""
	case FieldConsent:
		return v.Checked
	default:
		panic("form: unhandled field kind " + kind.String())
	}
}

// isEmail matches local@domain.tld where no part holds '@' or any Unicode space
func isEmail(s string) bool {
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return false
	}
	return emailPattern.MatchString(s)
}

// isTenDigits reports whether s is exactly 10 ASCII digits after removing whitespace
func isTenDigits(s string) bool {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	if len(digits) != 10 {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// Message returns the error text shown next to an invalid field
func Message(kind FieldKind) string {
	switch kind {
	case FieldLastname:
		return "Veuillez indiquer votre nom (2 caractères minimum)."
	case FieldFirstname:
		return "Veuillez indiquer votre prénom (2 caractères minimum)."
	case FieldEmail:
		return "Veuillez saisir une adresse email valide."
	case FieldPhone:
		return "Veuillez saisir un numéro de téléphone valide (10 chiffres)."
	case FieldCity:
		return "Veuillez sélectionner une ville."
	case FieldOffer:
		return "Veuillez sélectionner une offre."
	case FieldConsent:
		return "Vous devez accepter d'être recontacté."
	default:
		return ""
	}
}
