package insights

import (
	"time"

	apperrors "github.com/burnout-fit/burnout/internal/errors"
)

const (
	dayLayout  = "2006-01-02"
	longLayout = "January 02, 2006"
)

// FormatLongDate converts an ISO calendar date into its long English
// form, e.g. "2025-04-07" into "April 07, 2025".
func FormatLongDate(day string) (string, error) {
	t, err := time.Parse(dayLayout, day)
	if err != nil {
		return "", apperrors.DataError("invalid calendar date "+day, err)
	}
	return t.Format(longLayout), nil
}
