package savgol

import "errors"

// Errors returned by kernel construction and filtering.
var (
	ErrInvalidConfiguration = errors.New("savgol: invalid configuration")
	ErrWindowTooLarge       = errors.New("savgol: window larger than image")
	ErrPlaneSize            = errors.New("savgol: plane size mismatch")
)
