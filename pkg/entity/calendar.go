package entity

import (
	"fmt"
	"strings"
	"time"

	errorvalues "github.com/limbo/tasktracker/internal/error_values"
)

// DayLayout is the canonical calendar day representation, also used as the key of Task.Work.
const DayLayout = "2006-01-02"

var months = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// NormalizeDate maps a day number (zero-padded or not), an English month name
// and a year into the UTC midnight of that calendar day.
func NormalizeDate(day, month, year string) (time.Time, error) {
	day = strings.TrimSpace(day)
	if len(day) == 1 {
		day = "0" + day
	}
	monthNum := 0
	for i, name := range months {
		if strings.EqualFold(name, strings.TrimSpace(month)) {
			monthNum = i + 1
			break
		}
	}
	if monthNum == 0 {
		return time.Time{}, fmt.Errorf("%w: unknown month %q", errorvalues.ErrInvalidDate, month)
	}
	raw := fmt.Sprintf("%s-%02d-%s", strings.TrimSpace(year), monthNum, day)
	date, err := time.Parse(DayLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", errorvalues.ErrInvalidDate, raw)
	}
	return date, nil
}

// TruncateDay drops the time of day, keeping the calendar day of t in UTC.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayKey returns the Task.Work key for the calendar day of t.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayLayout)
}
