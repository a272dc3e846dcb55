package main

import (
	"testing"

	"github.com/Vicen621-Facultad/votacion/date"
	qt "github.com/frankban/quicktest"
)

func TestElectionWindow(t *testing.T) {
	t.Parallel()

	start, end, err := electionWindow("10/06/2024 08:00:00", "", 1)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, start, qt.Equals, date.NewWithTime(10, 6, 2024, 8, 0, 0))
	qt.Assert(t, end, qt.Equals, date.NewWithTime(10, 6, 2024, 23, 59, 59))

	// the window crosses the end of february of a leap year
	_, end, err = electionWindow("27/02/2024", "", 4)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, end, qt.Equals, date.NewWithTime(1, 3, 2024, 23, 59, 59))

	_, end, err = electionWindow("01/03/2024", "02/03/2024 20:00:00", 9)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, end, qt.Equals, date.NewWithTime(2, 3, 2024, 20, 0, 0))

	// both ends are inclusive, so a single instant is a valid window
	_, _, err = electionWindow("01/03/2024", "01/03/2024", 1)
	qt.Assert(t, err, qt.IsNil)

	_, _, err = electionWindow("02/03/2024", "01/03/2024 23:00:00", 1)
	qt.Assert(t, err, qt.ErrorMatches, "election would end .* before it starts .*")
	_, _, err = electionWindow("01/03/2024", "", 0)
	qt.Assert(t, err, qt.ErrorMatches, "an election lasts at least one day")
	_, _, err = electionWindow("30/02/2024", "", 1)
	qt.Assert(t, err, qt.ErrorMatches, "invalid start .*")
	_, _, err = electionWindow("yesterday", "", 1)
	qt.Assert(t, err, qt.ErrorMatches, "invalid start: .*")
}
