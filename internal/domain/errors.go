package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// entry does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. empty content, owner outside the closed user set).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized is returned by the export service when the supplied
// password does not match the configured secret. Handlers should map this to
// HTTP 401 with a generic message, never revealing which part was wrong.
var ErrUnauthorized = errors.New("unauthorized")
