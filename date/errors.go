package date

import "fmt"

// ErrInvalidDate is returned when a date with out-of-range fields is used.
var ErrInvalidDate = fmt.Errorf("invalid date")
