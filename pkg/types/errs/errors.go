package errs

import "errors"

var (
	ErrRecordNotFound       = errors.New("record not found")
	ErrInvalidCredentials   = errors.New("invalid login credentials")
	ErrSessionNotFound      = errors.New("session not found")
	ErrInvalidStoragePath   = errors.New("invalid storage path")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrObjectExists         = errors.New("object already exists")
	ErrFileTooLarge         = errors.New("file too large")
)
