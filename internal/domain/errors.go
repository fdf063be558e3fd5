package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned when a category, difficulty or type label is unknown.
	ErrConfiguration = errors.New("invalid trivia configuration")
	// ErrFetch marks transport and decode failures from the question source.
	ErrFetch = errors.New("fetch questions")
	// ErrRetrievalExhausted is returned when the API keeps answering with a non-zero code.
	ErrRetrievalExhausted = errors.New("question retrieval exhausted")
	// ErrInvalidSelection indicates user input that is not a number in 1..N.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrNotStarted is returned when question data is read before Start succeeded.
	ErrNotStarted = errors.New("trivia session not started")
	// ErrAlreadyStarted is returned when Start is called twice on one session.
	ErrAlreadyStarted = errors.New("trivia session already started")
	// ErrSessionFinished is returned when question data is read or answered after the last question.
	ErrSessionFinished = errors.New("trivia session finished")
)

// ConfigurationError names the axis and the label that could not be resolved.
type ConfigurationError struct {
	Axis  string
	Label string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: unknown %s %q", ErrConfiguration, e.Axis, e.Label)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// FetchError wraps a transport or JSON decode failure.
type FetchError struct {
	Endpoint string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s from %s: %v", ErrFetch, e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() []error { return []error{ErrFetch, e.Err} }

// RetrievalExhaustedError reports how many attempts were made and the last response code seen.
type RetrievalExhaustedError struct {
	Attempts int
	LastCode ResponseCode
}

func (e *RetrievalExhaustedError) Error() string {
	return fmt.Sprintf("%s after %d attempts: %s", ErrRetrievalExhausted, e.Attempts, e.LastCode)
}

func (e *RetrievalExhaustedError) Unwrap() error { return ErrRetrievalExhausted }
