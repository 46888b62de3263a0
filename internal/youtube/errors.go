package youtube

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
)

// Sentinel errors for Data API failures. Callers distinguish failure
// classes with errors.Is; none of them are retried anywhere.
var (
	// ErrQuotaOrAuth covers both an exhausted daily quota and a rejected
	// API key — the API reports both as HTTP 403.
	ErrQuotaOrAuth = errors.New("youtube: quota exceeded or access forbidden")

	// ErrInvalidIdentifier is a malformed channel or video id rejected by
	// the API before lookup.
	ErrInvalidIdentifier = errors.New("youtube: invalid identifier")

	// ErrNotFound is a well-formed id or username the API has no record of.
	ErrNotFound = errors.New("youtube: not found")
)

// classifyAPIError maps a googleapi error onto the sentinel taxonomy.
// Anything that is not a recognized API error is wrapped as a generic
// transport failure.
func classifyAPIError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case 403:
			if hasReason(gerr, "quotaExceeded") || strings.Contains(gerr.Message, "quota") {
				return fmt.Errorf("%w: api quota exceeded", ErrQuotaOrAuth)
			}
			return fmt.Errorf("%w: invalid api key or access forbidden", ErrQuotaOrAuth)
		case 400:
			return fmt.Errorf("%w: %s", ErrInvalidIdentifier, gerr.Message)
		case 404:
			return fmt.Errorf("%w: %s", ErrNotFound, gerr.Message)
		}
	}
	return fmt.Errorf("youtube: api request failed: %w", err)
}

func hasReason(gerr *googleapi.Error, reason string) bool {
	for _, item := range gerr.Errors {
		if item.Reason == reason {
			return true
		}
	}
	return false
}
