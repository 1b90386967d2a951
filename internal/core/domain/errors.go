package domain

import "errors"

// Sentinel errors returned by storage implementations and use cases. The
// REST layer matches them with errors.Is to pick a status code; anything
// else becomes a generic 500.
var (
	ErrPropertyNotFound       = errors.New("property not found")
	ErrGovernorateNotFound    = errors.New("governorate not found")
	ErrDirectorateNotFound    = errors.New("directorate not found")
	ErrPropertyTypeNotFound   = errors.New("property type not found")
	ErrSettingNotFound        = errors.New("site setting not found")
	ErrEmailAlreadySubscribed = errors.New("email already subscribed")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidImage           = errors.New("file is not a valid image")
	ErrImageTooLarge          = errors.New("image exceeds the size limit")
)
