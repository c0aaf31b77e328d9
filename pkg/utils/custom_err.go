package utils

import "errors"

var (
	ErrValidation           = errors.New("validation failed")
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrForbidden            = errors.New("forbidden")
	ErrPlantNotFound        = errors.New("plant not found")
	ErrTourNotFound         = errors.New("tour not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrNoFile               = errors.New("no file uploaded")
	ErrDatabaseError        = errors.New("database error")
)
