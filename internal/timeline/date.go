package timeline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a date string is not in YYYY-MM form.
var ErrInvalidDate = errors.New("invalid date")

// monthAbbrev is indexed by month number; index 0 is unused.
var monthAbbrev = [13]string{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// presentLabel is shown in place of an absent end date.
const presentLabel = "Present"

// YearMonth is a calendar month with no day or time component.
type YearMonth struct {
	Year  int
	Month int
}

// ParseYearMonth parses a "YYYY-MM" string.
func ParseYearMonth(s string) (YearMonth, error) {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[4] != '-' {
		return YearMonth{}, fmt.Errorf("%w: %q is not YYYY-MM", ErrInvalidDate, s)
	}
	if !allDigits(s[:4]) {
		return YearMonth{}, fmt.Errorf("%w: bad year in %q", ErrInvalidDate, s)
	}
	if !allDigits(s[5:]) {
		return YearMonth{}, fmt.Errorf("%w: bad month in %q", ErrInvalidDate, s)
	}
	year, err := strconv.Atoi(s[:4])
	if err != nil {
		return YearMonth{}, fmt.Errorf("%w: bad year in %q", ErrInvalidDate, s)
	}
	month, err := strconv.Atoi(s[5:])
	if err != nil || month < 1 || month > 12 {
		return YearMonth{}, fmt.Errorf("%w: bad month in %q", ErrInvalidDate, s)
	}
	return YearMonth{Year: year, Month: month}, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FromTime returns the calendar month containing t.
func FromTime(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: int(t.Month())}
}

// Compare returns -1, 0 or 1 ordering by year, then month.
func (ym YearMonth) Compare(other YearMonth) int {
	switch {
	case ym.Year < other.Year:
		return -1
	case ym.Year > other.Year:
		return 1
	case ym.Month < other.Month:
		return -1
	case ym.Month > other.Month:
		return 1
	}
	return 0
}

// MarshalText encodes the month as YYYY-MM.
func (ym YearMonth) MarshalText() ([]byte, error) {
	return []byte(ym.String()), nil
}

// UnmarshalText decodes a YYYY-MM string.
func (ym *YearMonth) UnmarshalText(text []byte) error {
	parsed, err := ParseYearMonth(string(text))
	if err != nil {
		return err
	}
	*ym = parsed
	return nil
}

// String returns the YYYY-MM form.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// Format renders the month as "<MonthAbbrev> <Year>", e.g. "Mar 2021".
func (ym YearMonth) Format() string {
	if ym.Month < 1 || ym.Month > 12 {
		return strconv.Itoa(ym.Year)
	}
	return monthAbbrev[ym.Month] + " " + strconv.Itoa(ym.Year)
}

// FormatEnd renders an end date, or "Present" when it is absent.
func FormatEnd(end *YearMonth) string {
	if end == nil {
		return presentLabel
	}
	return end.Format()
}

// endpoint is an end date as seen by sorting: either a concrete month or
// the open "ongoing" sentinel that sorts after every concrete month.
type endpoint struct {
	ym   YearMonth
	open bool
}

// sortEnd substitutes the ongoing sentinel for an absent end. Used only
// for ordering.
func sortEnd(e Entry) endpoint {
	if e.End == nil {
		return endpoint{open: true}
	}
	return endpoint{ym: *e.End}
}

// overlapEnd substitutes the current month for an absent end. Used only
// for overlap testing.
func overlapEnd(e Entry, now YearMonth) YearMonth {
	if e.End == nil {
		return now
	}
	return *e.End
}
