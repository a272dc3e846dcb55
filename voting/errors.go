package voting

import (
	"fmt"

	"github.com/Vicen621-Facultad/votacion/date"
)

var (
	// ErrNotAdmin is returned when an admin operation is called by someone else.
	ErrNotAdmin = fmt.Errorf("caller is not the admin")
	// ErrReportersOnly is returned when a report is requested by someone other than the reporter.
	ErrReportersOnly = fmt.Errorf("only the reporter can request reports")
	// ErrElectionNotFound is returned for unknown election ids.
	ErrElectionNotFound = fmt.Errorf("election not found")
	// ErrStartAfterEnd is returned when an election would close before opening.
	ErrStartAfterEnd = fmt.Errorf("election start is after its end")
	// ErrInvalidDate is returned when an election date is not a valid date.
	ErrInvalidDate = date.ErrInvalidDate
)
