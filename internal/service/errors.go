package service

import (
	"errors"
	"fmt"
)

var (
	// ErrFetchFailed is matched by every *FetchError
	ErrFetchFailed = errors.New("fetch failed")

	// ErrMalformedDocument means the fetched page could not be parsed as a document at all
	ErrMalformedDocument = errors.New("malformed document")

	// ErrInvalidCharacterID is returned before any fetch for ids that are not decimal digits
	ErrInvalidCharacterID = errors.New("invalid character id")
)

// FetchError describes a network or HTTP-level failure retrieving a character page
type FetchError struct {
	CharacterID string
	StatusCode  int
	Err         error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch character %s: HTTP %d", e.CharacterID, e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch character %s: %v", e.CharacterID, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrFetchFailed }
