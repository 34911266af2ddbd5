package services

import "errors"

// Sentinel errors the handlers translate into HTTP statuses.
var (
	// ErrJobNotFound covers both "no such job" and "not your job" so the
	// API never leaks whether a job id exists.
	ErrJobNotFound    = errors.New("job not found or not owned by caller")
	ErrReviewNotFound = errors.New("review not found or not owned by caller")

	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("user already exists")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")

	ErrNoActiveOtp = errors.New("no OTP found for this email")
	ErrOtpExpired  = errors.New("OTP expired")
	ErrOtpMismatch = errors.New("invalid OTP")
)
