// Package date implements the calendar dates used to schedule elections.
//
// A Date may hold out-of-range fields: construction never fails and callers
// check IsValid (or the error returned by Timestamp) before trusting it. The
// calendar treats every year divisible by four as a leap year.
package date

import (
	"fmt"
	"strings"
)

// OffsetMillis is added to the wall time of a Date to obtain its UTC
// timestamp. The default maps GMT-3 to UTC.
var OffsetMillis int64 = 3 * 60 * 60 * 1000

// MaxYear is the last year a Date can be converted to a timestamp.
const MaxYear = 9999

const (
	epochYear   = 1970
	msPerSecond = 1000
	secsPerDay  = 24 * 60 * 60
	// days in four consecutive years, one of them leap
	daysPerCycle = 4*365 + 1
)

var daysPerMonth = [12]uint32{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Date is a calendar date with an optional time of day.
type Date struct {
	Day    uint32 `json:"day"`
	Month  uint32 `json:"month"`
	Year   int32  `json:"year"`
	Hour   uint32 `json:"hour"`
	Minute uint32 `json:"minute"`
	Second uint32 `json:"second"`
}

// New returns the date at midnight. The fields are not validated.
func New(day, month uint32, year int32) Date {
	return NewWithTime(day, month, year, 0, 0, 0)
}

// NewWithTime returns the date with the given time of day. The fields are
// not validated.
func NewWithTime(day, month uint32, year int32, hour, minute, second uint32) Date {
	return Date{
		Day:    day,
		Month:  month,
		Year:   year,
		Hour:   hour,
		Minute: minute,
		Second: second,
	}
}

// IsLeap reports whether d falls in a leap year.
func (d Date) IsLeap() bool {
	return isLeap(d.Year)
}

func isLeap(year int32) bool {
	return year%4 == 0
}

// DaysInMonth returns the number of days of the month of d, or 0 if the
// month is out of range.
func (d Date) DaysInMonth() uint32 {
	return daysInMonth(d.Month, d.Year)
}

func daysInMonth(month uint32, year int32) uint32 {
	if month < 1 || month > 12 {
		return 0
	}
	days := daysPerMonth[month-1]
	if month == 2 && isLeap(year) {
		days++
	}
	return days
}

// IsValid reports whether every field of d is within range.
func (d Date) IsValid() bool {
	return d.Day >= 1 && d.Day <= d.DaysInMonth() &&
		d.Hour <= 23 && d.Minute <= 59 && d.Second <= 59
}

func daysInYear(year int32) int64 {
	if isLeap(year) {
		return 366
	}
	return 365
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// leapsBefore returns the number of leap years before year, relative to an
// arbitrary origin, so only differences are meaningful.
func leapsBefore(year int64) int64 {
	return floorDiv(year+3, 4)
}

// daysSinceEpoch counts the days between 1970-01-01 and the date part of d,
// negative for earlier dates. d must be valid.
func (d Date) daysSinceEpoch() int64 {
	y := int64(d.Year)
	days := 365*(y-epochYear) + leapsBefore(y) - leapsBefore(epochYear)
	for m := uint32(1); m < d.Month; m++ {
		days += int64(daysInMonth(m, d.Year))
	}
	return days + int64(d.Day) - 1
}

// Timestamp returns the UTC instant of d in milliseconds since the Unix
// epoch. It fails with ErrInvalidDate if d is not valid, its year is after
// MaxYear or the instant precedes the epoch.
func (d Date) Timestamp() (uint64, error) {
	if !d.IsValid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidDate, d)
	}
	if d.Year > MaxYear {
		return 0, fmt.Errorf("%w: %s is after year %d", ErrInvalidDate, d, MaxYear)
	}
	if d.Year < epochYear-1 {
		return 0, fmt.Errorf("%w: %s is before the epoch", ErrInvalidDate, d)
	}
	secs := d.daysSinceEpoch()*secsPerDay +
		int64(d.Hour)*3600 + int64(d.Minute)*60 + int64(d.Second)
	ms := secs*msPerSecond + OffsetMillis
	if ms < 0 {
		return 0, fmt.Errorf("%w: %s is before the epoch", ErrInvalidDate, d)
	}
	return uint64(ms), nil
}

// FromTimestamp returns the date whose Timestamp is ms, truncated to the
// second.
func FromTimestamp(ms uint64) Date {
	secs := (int64(ms) - OffsetMillis) / msPerSecond
	if (int64(ms)-OffsetMillis)%msPerSecond < 0 {
		secs--
	}
	days := secs / secsPerDay
	rem := secs % secsPerDay
	if rem < 0 {
		rem += secsPerDay
		days--
	}

	// count from 1968, the leap year opening the cycle that holds the epoch
	days += 2*365 + 1
	cycles := floorDiv(days, daysPerCycle)
	days -= cycles * daysPerCycle
	year := int32(epochYear - 2 + 4*cycles)
	if days >= 366 {
		days -= 366
		year += int32(1 + days/365)
		days %= 365
	}
	month := uint32(1)
	for days >= int64(daysInMonth(month, year)) {
		days -= int64(daysInMonth(month, year))
		month++
	}
	return NewWithTime(uint32(days)+1, month, year,
		uint32(rem/3600), uint32(rem%3600/60), uint32(rem%60))
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other. Dates are ordered by year, month, day, hour, minute and second.
func (d Date) Compare(other Date) int {
	fields := [...][2]int64{
		{int64(d.Year), int64(other.Year)},
		{int64(d.Month), int64(other.Month)},
		{int64(d.Day), int64(other.Day)},
		{int64(d.Hour), int64(other.Hour)},
		{int64(d.Minute), int64(other.Minute)},
		{int64(d.Second), int64(other.Second)},
	}
	for _, f := range fields {
		switch {
		case f[0] < f[1]:
			return -1
		case f[0] > f[1]:
			return 1
		}
	}
	return 0
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// AddDays moves d forward by n days. d must be valid.
func (d *Date) AddDays(n uint32) {
	for n > 0 {
		// the current day counts too
		left := d.DaysInMonth() - d.Day + 1
		if left > n {
			d.Day += n
			return
		}
		n -= left
		d.Month++
		if d.Month > 12 {
			d.Month = 1
			d.Year++
		}
		d.Day = 1
	}
}

// String formats d as DD/MM/YYYY HH:MM:SS.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d %02d:%02d:%02d",
		d.Day, d.Month, d.Year, d.Hour, d.Minute, d.Second)
}

// Parse reads a date in the DD/MM/YYYY or DD/MM/YYYY HH:MM:SS layouts. Only
// the syntax is checked: the result may still be invalid.
func Parse(s string) (Date, error) {
	var d Date
	s = strings.TrimSpace(s)
	var n int
	var err error
	if strings.Contains(s, " ") {
		n, err = fmt.Sscanf(s, "%d/%d/%d %d:%d:%d",
			&d.Day, &d.Month, &d.Year, &d.Hour, &d.Minute, &d.Second)
		if err == nil && n != 6 {
			err = fmt.Errorf("expected 6 fields, got %d", n)
		}
	} else {
		n, err = fmt.Sscanf(s, "%d/%d/%d", &d.Day, &d.Month, &d.Year)
		if err == nil && n != 3 {
			err = fmt.Errorf("expected 3 fields, got %d", n)
		}
	}
	if err != nil {
		return Date{}, fmt.Errorf("cannot parse date %q: %w", s, err)
	}
	return d, nil
}
