package llm

import "errors"

var (
	// ErrMissingAPIKey indicates no API key was configured for a provider
	// that needs one. It is reported per call, never at startup.
	ErrMissingAPIKey = errors.New("llm api key not configured")

	// ErrUnavailable indicates the provider could not be reached.
	ErrUnavailable = errors.New("llm provider unavailable")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrProviderStatus indicates the provider answered with a non-success
	// status.
	ErrProviderStatus = errors.New("llm provider returned an error status")

	// ErrEmptyResponse indicates the provider answered without any text.
	ErrEmptyResponse = errors.New("llm returned no content")

	// ErrInvalidOutput indicates the LLM response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")
)
