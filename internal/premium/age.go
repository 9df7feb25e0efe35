package premium

import "time"

// Age returns the number of whole years between dob and asOf, counting
// a year only once the birthday has passed. The comparison is on
// (month, day) only, so a Feb 29 birth date rolls over on Mar 1 in
// non-leap years.
func Age(dob, asOf time.Time) int {
	years := asOf.Year() - dob.Year()
	if asOf.Month() < dob.Month() || (asOf.Month() == dob.Month() && asOf.Day() < dob.Day()) {
		years--
	}
	return years
}

// AgeFromString derives an age from a YYYY-MM-DD date string. A blank
// or unparseable value yields (0, false): an unset age, not an error,
// so callers can keep a pending row.
func AgeFromString(dateOfBirth string, asOf time.Time) (int, bool) {
	if dateOfBirth == "" {
		return 0, false
	}
	dob, err := time.Parse("2006-01-02", dateOfBirth)
	if err != nil {
		return 0, false
	}
	return Age(dob, asOf), true
}
