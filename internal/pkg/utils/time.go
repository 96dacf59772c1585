package utils

import (
	"ot-tracking-service/internal/pkg/constvars"
	"time"
)

// CalculateAge gives whole years between a YYYY-MM-DD birth date and now.
// Unparseable dates give 0.
func CalculateAge(birthDate string, now time.Time) int {
	if birthDate == "" {
		return 0
	}
	dob, err := time.Parse(constvars.DateOnlyLayout, birthDate)
	if err != nil {
		return 0
	}

	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// StartOfMonth is midnight UTC on the first day of now's month.
func StartOfMonth(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}
