// Package dates validates the calendar-date queries typed into apod98.
package dates

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrBadFormat reports input that does not match the YYYY-MM-DD grammar.
var ErrBadFormat = errors.New("invalid date format")

var dateRegex = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)

// Date is a validated query date. The zero value means "today": no date is
// sent and the provider picks its default.
type Date struct {
	value string
}

// IsToday reports whether no explicit date was given.
func (d Date) IsToday() bool {
	return d.value == ""
}

// String returns the normalized YYYY-MM-DD value, or "" for today.
func (d Date) String() string {
	return d.value
}

// Validate checks input against the DDDD-DD-DD grammar. The check is purely
// syntactic; "2024-02-30" is accepted and left for the provider to reject.
func Validate(input string) (Date, error) {
	if input == "" {
		return Date{}, nil
	}
	if !dateRegex.MatchString(input) {
		return Date{}, fmt.Errorf("%w: %q", ErrBadFormat, input)
	}
	return Date{value: input}, nil
}
