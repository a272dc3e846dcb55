package directory

import "fmt"

var (
	// ErrUserNotFound is returned when the identity is not an accepted user.
	ErrUserNotFound = fmt.Errorf("user not found")
	// ErrPendingUserNotFound is returned when the identity has no pending registration.
	ErrPendingUserNotFound = fmt.Errorf("pending user not found")
	// ErrAlreadyRegistered is returned when registering an accepted user again.
	ErrAlreadyRegistered = fmt.Errorf("user already registered")
	// ErrUserNotAccepted is returned when the registration is still waiting for approval.
	ErrUserNotAccepted = fmt.Errorf("user registration not accepted yet")
)
