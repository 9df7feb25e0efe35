package premium

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestAge_BirthdayAlreadyPassed(t *testing.T) {
	dob := date(1990, time.March, 15)
	asOf := date(2025, time.June, 1)

	assert.Equal(t, 35, Age(dob, asOf))
}

func TestAge_BirthdayExactlyToday(t *testing.T) {
	dob := date(1990, time.June, 1)
	asOf := date(2025, time.June, 1)

	assert.Equal(t, 35, Age(dob, asOf), "no decrement on the birthday itself")
}

func TestAge_BirthdayTomorrow(t *testing.T) {
	dob := date(1990, time.June, 2)
	asOf := date(2025, time.June, 1)

	assert.Equal(t, 34, Age(dob, asOf), "decrement when the birthday has not occurred yet")
}

func TestAge_BirthdayLaterMonth(t *testing.T) {
	dob := date(2000, time.December, 31)
	asOf := date(2025, time.January, 1)

	assert.Equal(t, 24, Age(dob, asOf))
}

func TestAge_LeapDayAgainstNonLeapYear(t *testing.T) {
	// Plain (month, day) comparison: a Feb 29 birth date has not
	// "occurred" on Feb 28 of a non-leap year and rolls over on Mar 1.
	dob := date(2000, time.February, 29)

	assert.Equal(t, 24, Age(dob, date(2025, time.February, 28)))
	assert.Equal(t, 25, Age(dob, date(2025, time.March, 1)))
}

func TestAgeFromString_Valid(t *testing.T) {
	age, ok := AgeFromString("2015-05-10", date(2025, time.June, 1))

	assert.True(t, ok)
	assert.Equal(t, 10, age)
}

func TestAgeFromString_UnsetAndInvalid(t *testing.T) {
	asOf := date(2025, time.June, 1)

	age, ok := AgeFromString("", asOf)
	assert.False(t, ok, "blank date is an unset age, not an error")
	assert.Equal(t, 0, age)

	age, ok = AgeFromString("not-a-date", asOf)
	assert.False(t, ok)
	assert.Equal(t, 0, age)
}
