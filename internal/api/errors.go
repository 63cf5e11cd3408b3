package api

import "errors"

var (
	// ErrUnavailable indicates the ProjectHub backend is unreachable.
	ErrUnavailable = errors.New("projecthub backend unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("api request timed out")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrRemote indicates the backend answered with a non-success status.
	ErrRemote = errors.New("backend request failed")

	// ErrDecode indicates the response body could not be decoded into
	// the expected record shape.
	ErrDecode = errors.New("invalid backend response")
)
