package form

import (
	"fmt"
	"time"
)

// FieldVisitDate is the optional, unvalidated preferred visit date
const FieldVisitDate = "visit-date"

const (
	isoDateLayout    = "2006-01-02"
	frenchDateLayout = "02/01/2006"
)

// MinVisitDate returns the earliest date the picker may offer: today, as YYYY-MM-DD
func MinVisitDate(now time.Time) string {
	return now.UTC().Format(isoDateLayout)
}

// FormatVisitDate renders a YYYY-MM-DD date the way fr-FR displays it (dd/mm/yyyy)
func FormatVisitDate(iso string) (string, error) {
	d, err := time.Parse(isoDateLayout, iso)
	if err != nil {
		return "", fmt.Errorf("invalid visit date %q: %w", iso, err)
	}
	return d.Format(frenchDateLayout), nil
}
