package widget

import (
	"context"
	"errors"
	"time"

	"go-weather/internal/domain/entity"
)

var (
	ErrEmptyInput         = errors.New("empty city input")
	ErrLocationNotFound   = errors.New("location not found")
	ErrWeatherUnavailable = errors.New("weather unavailable")
	ErrWidgetNotFound     = errors.New("widget not found")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// GeolocationFix is the one-shot answer of the host to a position request
type GeolocationFix struct {
	Unavailable bool
	Coordinates entity.Coordinates
}

type UseCase interface {
	// Open creates a widget session, resolving fix first when the host sent one
	Open(ctx context.Context, fix *GeolocationFix) (entity.WidgetState, error)

	// State returns the current snapshot of a widget
	State(ctx context.Context, id string) (entity.WidgetState, error)

	// Search fetches the weather for a free-text city and clears suggestions on success
	Search(ctx context.Context, id string, city string) (entity.WidgetState, error)

	// Suggest refreshes the autocomplete list for partial input
	Suggest(ctx context.Context, id string, text string) (entity.WidgetState, error)

	// Select clears suggestions and searches the chosen one
	Select(ctx context.Context, id string, suggestion string) (entity.WidgetState, error)

	// Locate resolves the weather at a geolocation fix, honouring only the first fix
	Locate(ctx context.Context, id string, fix GeolocationFix) (entity.WidgetState, error)

	// Close removes a widget session
	Close(ctx context.Context, id string) error

	// EvictIdle removes sessions not seen for longer than ttl and returns how many were removed
	EvictIdle(ctx context.Context, ttl time.Duration) int

	// Count returns the number of open sessions
	Count() int
}
