package main

import (
	"errors"
	"fmt"

	"github.com/Vicen621-Facultad/votacion/date"
)

// electionWindow parses the start and end of a new election. An empty end
// closes the election at the last second of its days-th day.
func electionWindow(start, end string, days uint32) (date.Date, date.Date, error) {
	s, err := date.Parse(start)
	if err != nil {
		return date.Date{}, date.Date{}, fmt.Errorf("invalid start: %w", err)
	}
	if !s.IsValid() {
		return date.Date{}, date.Date{}, fmt.Errorf("invalid start %s", s)
	}
	var e date.Date
	if end == "" {
		if days == 0 {
			return date.Date{}, date.Date{}, errors.New("an election lasts at least one day")
		}
		e = date.NewWithTime(s.Day, s.Month, s.Year, 23, 59, 59)
		e.AddDays(days - 1)
	} else if e, err = date.Parse(end); err != nil {
		return date.Date{}, date.Date{}, fmt.Errorf("invalid end: %w", err)
	}
	if s.After(e) {
		return date.Date{}, date.Date{}, fmt.Errorf("election would end (%s) before it starts (%s)", e, s)
	}
	return s, e, nil
}
