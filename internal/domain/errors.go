package domain

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrDriverNotFound  = errors.New("driver not found")
)

var (
	// ErrInvalidTransition — запрошенный переход недопустим из текущего статуса.
	// В том числе проигравшая сторона гонки за accept видит именно эту ошибку.
	ErrInvalidTransition = errors.New("transition not allowed from current status")
	ErrDriverNotVerified = errors.New("driver is not verified")
)

var (
	ErrEmailTaken         = errors.New("email is already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var (
	ErrValidation = errors.New("validation error")
)
