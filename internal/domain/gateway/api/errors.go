package api

import (
	"errors"
	"fmt"

	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
)

var (
	// ErrLocationNotFound is returned when the provider answers with a non-2xx status
	ErrLocationNotFound = errors.New("location not found")
	// ErrProviderUnavailable is returned on transport or decode failures
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// translateError maps a pkg/http failure onto the gateway sentinels
func translateError(err error, errResp any) error {
	var statusErr *http.StatusError
	if !errors.As(err, &statusErr) {
		return fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr.Message != "" {
		return fmt.Errorf("%w: status %d: %s", ErrLocationNotFound, statusErr.StatusCode, apiErr.Message)
	}
	return fmt.Errorf("%w: %w", ErrLocationNotFound, statusErr)
}
