package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInterval signals a malformed date/time input or start >= end.
var ErrInvalidInterval = errors.New("invalid interval")

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	minutesPerDay = 24 * 60
)

// Interval is a half-open [Start, End) time-of-day range, in minutes since
// midnight. Intervals are only comparable within the same calendar date;
// the date itself is carried separately on the owning record.
type Interval struct {
	Start int
	End   int
}

func NewInterval(start, end int) (Interval, error) {
	iv := Interval{Start: start, End: end}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

func (iv Interval) Validate() error {
	if iv.Start < 0 || iv.End > minutesPerDay || iv.Start >= iv.End {
		return ErrInvalidInterval
	}
	return nil
}

// Overlaps reports whether two intervals on the same date share any time.
// Half-open semantics: touching endpoints do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

func (iv Interval) Minutes() int { return iv.End - iv.Start }

func (iv Interval) String() string {
	return FormatClock(iv.Start) + "-" + FormatClock(iv.End)
}

// ParseClock converts an "HH:MM" string to minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, ErrInvalidInterval
	}
	return t.Hour()*60 + t.Minute(), nil
}

func FormatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseDate validates and normalizes a "YYYY-MM-DD" date string.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", ErrInvalidInterval
	}
	return t.Format(DateLayout), nil
}

// ParseInterval builds an interval from "HH:MM" boundaries.
func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(s, e)
}
