package roadmap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"career-roadmap/services"
)

var ErrMissingMonths = errors.New("duration_months is required")

// MonthsFormatError is returned for a duration that isn't a whole number.
type MonthsFormatError struct {
	Raw string
}

func (e *MonthsFormatError) Error() string {
	return fmt.Sprintf("duration_months must be a whole number of months, got %q", e.Raw)
}

// ParseMonths coerces the submitted duration to an int. Range checks are left
// to the scheduler.
func ParseMonths(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrMissingMonths
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &MonthsFormatError{Raw: raw}
	}
	return n, nil
}

// userMessage turns a request error into text for the selection page.
func userMessage(err error) string {
	var (
		formatErr *MonthsFormatError
		durErr    *services.InvalidDurationError
	)
	switch {
	case errors.Is(err, ErrMissingMonths):
		return "Please enter a duration in months."
	case errors.As(err, &formatErr):
		return fmt.Sprintf("%q is not a whole number of months.", strings.TrimSpace(formatErr.Raw))
	case errors.As(err, &durErr):
		return "Can't plan " + strconv.Itoa(durErr.TotalMonths) + " months: " + durErr.Reason + "."
	default:
		return "The request could not be processed."
	}
}
