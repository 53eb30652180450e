package domain

import "errors"

var (
	// ErrMissingAPIKey means no provider credential is configured. The
	// requested operation fails fast, before any network call.
	ErrMissingAPIKey = errors.New("provider API key is not configured")

	// ErrUpstream covers provider network or processing failures.
	ErrUpstream = errors.New("provider request failed")

	// ErrMalformedPlan means the provider payload could not be parsed
	// into the advisor response shape.
	ErrMalformedPlan = errors.New("provider returned malformed plan payload")

	// ErrAudio covers speech synthesis and audio encoding failures.
	// Callers degrade to text-only, never crash.
	ErrAudio = errors.New("audio synthesis failed")

	// ErrRequestInFlight rejects a submission while a previous one for
	// the same session and operation class is still running.
	ErrRequestInFlight = errors.New("a request is already in flight")

	// ErrNotFound is returned for lookups of unknown ids.
	ErrNotFound = errors.New("not found")
)
