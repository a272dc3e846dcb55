package date

import (
	"math"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestIsValid(t *testing.T) {
	t.Parallel()

	qt.Assert(t, New(15, 6, 2024).IsValid(), qt.IsTrue)
	qt.Assert(t, New(32, 6, 2024).IsValid(), qt.IsFalse)
	qt.Assert(t, New(0, 6, 2024).IsValid(), qt.IsFalse)
	qt.Assert(t, New(15, 13, 2024).IsValid(), qt.IsFalse)
	qt.Assert(t, New(15, 0, 2024).IsValid(), qt.IsFalse)
	qt.Assert(t, New(29, 2, 2023).IsValid(), qt.IsFalse)
	qt.Assert(t, New(29, 2, 2024).IsValid(), qt.IsTrue)
	qt.Assert(t, New(31, 4, 2024).IsValid(), qt.IsFalse)

	// every year divisible by four is a leap year, 1900 and 2100 included
	qt.Assert(t, New(29, 2, 2100).IsValid(), qt.IsTrue)
	qt.Assert(t, New(1, 1, 1900).IsLeap(), qt.IsTrue)

	qt.Assert(t, NewWithTime(15, 6, 2024, 23, 59, 59).IsValid(), qt.IsTrue)
	qt.Assert(t, NewWithTime(15, 6, 2024, 24, 0, 0).IsValid(), qt.IsFalse)
	qt.Assert(t, NewWithTime(15, 6, 2024, 23, 60, 0).IsValid(), qt.IsFalse)
	qt.Assert(t, NewWithTime(15, 6, 2024, 23, 0, 60).IsValid(), qt.IsFalse)
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()

	qt.Assert(t, New(1, 1, 2023).DaysInMonth(), qt.Equals, uint32(31))
	qt.Assert(t, New(1, 2, 2023).DaysInMonth(), qt.Equals, uint32(28))
	qt.Assert(t, New(1, 2, 2024).DaysInMonth(), qt.Equals, uint32(29))
	qt.Assert(t, New(1, 11, 2023).DaysInMonth(), qt.Equals, uint32(30))
	qt.Assert(t, New(1, 13, 2023).DaysInMonth(), qt.Equals, uint32(0))
}

func TestTimestamp(t *testing.T) {
	t.Parallel()

	// 2024-01-01 00:00:00 GMT-3 is 2024-01-01 03:00:00 UTC
	ts, err := New(1, 1, 2024).Timestamp()
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, ts, qt.Equals, uint64(1704078000000))

	ts, err = NewWithTime(31, 12, 1969, 21, 0, 0).Timestamp()
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, ts, qt.Equals, uint64(0))

	_, err = NewWithTime(31, 12, 1969, 20, 59, 59).Timestamp()
	qt.Assert(t, err, qt.ErrorIs, ErrInvalidDate)

	_, err = New(32, 1, 2024).Timestamp()
	qt.Assert(t, err, qt.ErrorIs, ErrInvalidDate)

	// timestamps follow the date ordering
	a, err := NewWithTime(15, 6, 2024, 10, 0, 0).Timestamp()
	qt.Assert(t, err, qt.IsNil)
	b, err := NewWithTime(15, 6, 2024, 10, 0, 1).Timestamp()
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, b-a, qt.Equals, uint64(1000))
}

func TestTimestampYearBound(t *testing.T) {
	t.Parallel()

	last := NewWithTime(31, 12, MaxYear, 23, 59, 59)
	ts, err := last.Timestamp()
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, FromTimestamp(ts), qt.Equals, last)

	// valid fields, but the instant cannot be represented
	far := New(1, 1, 600000000)
	qt.Assert(t, far.IsValid(), qt.IsTrue)
	_, err = far.Timestamp()
	qt.Assert(t, err, qt.ErrorIs, ErrInvalidDate)
	_, err = New(1, 1, MaxYear+1).Timestamp()
	qt.Assert(t, err, qt.ErrorIs, ErrInvalidDate)
	_, err = New(1, 1, math.MaxInt32).Timestamp()
	qt.Assert(t, err, qt.ErrorIs, ErrInvalidDate)
	_, err = New(1, 1, math.MinInt32).Timestamp()
	qt.Assert(t, err, qt.ErrorIs, ErrInvalidDate)
}

func TestFromTimestamp(t *testing.T) {
	t.Parallel()

	qt.Assert(t, FromTimestamp(1704078000000), qt.Equals, New(1, 1, 2024))
	qt.Assert(t, FromTimestamp(0), qt.Equals, NewWithTime(31, 12, 1969, 21, 0, 0))
	// milliseconds are truncated
	qt.Assert(t, FromTimestamp(1704078000999), qt.Equals, New(1, 1, 2024))

	for _, d := range []Date{
		NewWithTime(29, 2, 2024, 12, 30, 15),
		NewWithTime(31, 12, 2023, 23, 59, 59),
		NewWithTime(1, 3, 2000, 0, 0, 0),
		NewWithTime(28, 2, 2100, 6, 7, 8),
		NewWithTime(1, 1, 1970, 3, 0, 0),
		NewWithTime(31, 12, 1972, 23, 59, 59),
		NewWithTime(1, 1, 1973, 0, 0, 0),
		NewWithTime(29, 2, 2096, 1, 2, 3),
	} {
		ts, err := d.Timestamp()
		qt.Assert(t, err, qt.IsNil)
		qt.Assert(t, FromTimestamp(ts), qt.Equals, d)
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	d := NewWithTime(15, 6, 2024, 10, 30, 0)
	qt.Assert(t, d.Compare(d), qt.Equals, 0)
	qt.Assert(t, d.Compare(NewWithTime(15, 6, 2024, 10, 30, 1)), qt.Equals, -1)
	qt.Assert(t, d.Compare(New(15, 6, 2024)), qt.Equals, 1)
	qt.Assert(t, d.Compare(New(1, 1, 2025)), qt.Equals, -1)
	qt.Assert(t, d.Compare(New(31, 12, 2023)), qt.Equals, 1)
	qt.Assert(t, d.After(New(14, 6, 2024)), qt.IsTrue)
	qt.Assert(t, d.After(d), qt.IsFalse)
}

func TestAddDays(t *testing.T) {
	t.Parallel()

	d := New(28, 2, 2024)
	d.AddDays(1)
	qt.Assert(t, d, qt.Equals, New(29, 2, 2024))
	d.AddDays(1)
	qt.Assert(t, d, qt.Equals, New(1, 3, 2024))
	d.AddDays(306)
	qt.Assert(t, d, qt.Equals, New(1, 1, 2025))
	d.AddDays(0)
	qt.Assert(t, d, qt.Equals, New(1, 1, 2025))
	d.AddDays(365 + 366)
	qt.Assert(t, d, qt.Equals, New(1, 1, 2027))

}

func TestParseString(t *testing.T) {
	t.Parallel()

	d, err := Parse("15/06/2024")
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, d, qt.Equals, New(15, 6, 2024))

	d, err = Parse("15/06/2024 08:05:09")
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, d, qt.Equals, NewWithTime(15, 6, 2024, 8, 5, 9))
	qt.Assert(t, d.String(), qt.Equals, "15/06/2024 08:05:09")

	// out of range values parse, validation is up to the caller
	d, err = Parse("32/01/2024")
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, d.IsValid(), qt.IsFalse)

	_, err = Parse("yesterday")
	qt.Assert(t, err, qt.IsNotNil)
}
