package services

import "errors"

// Sentinel errors for handlers to map to HTTP status. The messages are the
// exact bodies sent to clients.
var (
	ErrEndBeforeStart     = errors.New("End time must be after start time") // 400
	ErrEntryStopped       = errors.New("Time entry is already stopped")     // 400
	ErrInvalidCredentials = errors.New("Invalid email or password")         // 401
	ErrProjectAccess      = errors.New("Access denied to this project")     // 403
	ErrAccessDenied       = errors.New("Access denied")                     // 403
	ErrEmailTaken         = errors.New("Email already registered")          // 409
	ErrTimerRunning       = errors.New("A timer is already running")        // 409
)
