package domain

import "errors"

var (
	ErrPhotoNotFound      = errors.New("photo not found")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrInvalidLimit       = errors.New("limit must be greater than zero")
	ErrInvalidScope       = errors.New("scope must be active or trash")

	// Object store outcomes the gallery service reacts to explicitly.
	ErrObjectNotFound = errors.New("object not found")
	ErrObjectExists   = errors.New("object already exists")
)
