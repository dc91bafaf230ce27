package expense

import (
	"strconv"
	"time"
)

// Window is a half-open date interval [Start, End) used to filter
// expenses to a calendar month, or all time when Bounded is false.
type Window struct {
	Start   time.Time
	End     time.Time
	Bounded bool
}

// AllTime returns the unbounded window.
func AllTime() Window {
	return Window{}
}

// MonthWindow returns the window covering one calendar month. End is
// the first day of the following month, so 28-31 day months and the
// December to January rollover need no special casing.
func MonthWindow(year int, month time.Month) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Window{
		Start:   start,
		End:     start.AddDate(0, 1, 0),
		Bounded: true,
	}
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if !w.Bounded {
		return true
	}
	return !t.Before(w.Start) && t.Before(w.End)
}

// ResolveWindow turns the month/year query parameters into a Window.
// If either is absent the window is unbounded. A month outside 1-12,
// a non-positive year, or a non-numeric value is ErrInvalidRange.
func ResolveWindow(monthStr, yearStr string) (Window, error) {
	if monthStr == "" || yearStr == "" {
		return AllTime(), nil
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return Window{}, ErrInvalidRange
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		return Window{}, ErrInvalidRange
	}

	return MonthWindow(year, time.Month(month)), nil
}
