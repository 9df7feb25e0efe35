package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(?:\.[a-zA-Z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*@(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?\.)+[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?$`)

func ValidateEmail(email string) (bool, error) {
	if !emailRegex.MatchString(email) {
		return false, fmt.Errorf("error: email format incorrect")
	}
	return true, nil
}

func ValidatePhone(phone string) (bool, error) {
	phone_regex_patterns := []string{
		`^0[1-9]\d{8}$`,    // domestic: 0 + 9 digits
		`^\+27[1-9]\d{8}$`, // +27 international format
		`^27[1-9]\d{8}$`,   // 27 without +
	}

	for _, pattern := range phone_regex_patterns {
		if matched, _ := regexp.MatchString(pattern, phone); matched {
			return true, nil
		}
	}
	return false, fmt.Errorf("phone format incorrect")
}

// ValidateIDNumber checks a 13-digit South African ID number: YYMMDD
// birth date segment, 4-digit sequence, citizenship digit, check digit
// position (check digit itself is not verified here).
func ValidateIDNumber(idNumber string) bool {
	pattern := `^([0-9]{2})([0-9]{2})([0-9]{2})([0-9]{4})([0-9])([0-9])([0-9])$`

	cleanID := regexp.MustCompile(`[^\d]`).ReplaceAllString(idNumber, "")
	regex := regexp.MustCompile(pattern)
	matches := regex.FindStringSubmatch(cleanID)

	if len(matches) != 8 {
		return false
	}

	month, _ := strconv.Atoi(matches[2])
	day, _ := strconv.Atoi(matches[3])

	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}

	citizenship, _ := strconv.Atoi(matches[5])
	return citizenship == 0 || citizenship == 1
}

func ValidatePostalCode(postalCode string) bool {
	matched, _ := regexp.MatchString(`^[0-9]{4}$`, postalCode)
	return matched
}

// ParseDateOnly parses a YYYY-MM-DD date string.
func ParseDateOnly(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}
