package widget

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/events"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

// Config holds the suggestion policy of every widget
type Config struct {
	SuggestionMinLength int
	SuggestionLimit     int
}

type widgetUseCase struct {
	config           Config
	weatherGateway   api.WeatherGateway
	geocodingGateway api.GeocodingGateway
	reverseGateway   api.ReverseGeocodingGateway
	publisher        events.StatePublisher

	mutex   sync.RWMutex
	widgets map[string]*Widget
	now     func() time.Time
}

func NewWidgetUseCase(config Config, weatherGateway api.WeatherGateway, geocodingGateway api.GeocodingGateway, reverseGateway api.ReverseGeocodingGateway, publisher events.StatePublisher) UseCase {
	if config.SuggestionMinLength <= 0 {
		config.SuggestionMinLength = 2
	}
	if config.SuggestionLimit <= 0 {
		config.SuggestionLimit = 5
	}
	if publisher == nil {
		publisher = events.NewNopStatePublisher()
	}

	return &widgetUseCase{
		config:           config,
		weatherGateway:   weatherGateway,
		geocodingGateway: geocodingGateway,
		reverseGateway:   reverseGateway,
		publisher:        publisher,
		widgets:          make(map[string]*Widget),
		now:              time.Now,
	}
}

// Open creates a widget session, resolving fix first when the host sent one
func (uc *widgetUseCase) Open(ctx context.Context, fix *GeolocationFix) (entity.WidgetState, error) {
	if fix != nil {
		if err := validateFix(*fix); err != nil {
			return entity.WidgetState{}, err
		}
	}

	w := newWidget(uuid.New().String(), uc.now())

	uc.mutex.Lock()
	uc.widgets[w.id] = w
	uc.mutex.Unlock()

	log.Info(msg.GetMessage("widget.log.opened", w.id), zap.String("widget_id", w.id))

	if fix == nil {
		return w.snapshot(), nil
	}
	err := uc.locate(ctx, w, *fix)
	return w.snapshot(), err
}

// State returns the current snapshot of a widget
func (uc *widgetUseCase) State(_ context.Context, id string) (entity.WidgetState, error) {
	w, err := uc.get(id)
	if err != nil {
		return entity.WidgetState{}, err
	}
	return w.snapshot(), nil
}

// Search fetches the weather for a free-text city and clears suggestions on success
func (uc *widgetUseCase) Search(ctx context.Context, id string, city string) (entity.WidgetState, error) {
	w, err := uc.get(id)
	if err != nil {
		return entity.WidgetState{}, err
	}
	err = uc.search(ctx, w, city)
	return w.snapshot(), err
}

// Suggest refreshes the autocomplete list for partial input
func (uc *widgetUseCase) Suggest(ctx context.Context, id string, text string) (entity.WidgetState, error) {
	w, err := uc.get(id)
	if err != nil {
		return entity.WidgetState{}, err
	}
	uc.suggest(ctx, w, text)
	return w.snapshot(), nil
}

// Select clears suggestions and searches the chosen one
func (uc *widgetUseCase) Select(ctx context.Context, id string, suggestion string) (entity.WidgetState, error) {
	w, err := uc.get(id)
	if err != nil {
		return entity.WidgetState{}, err
	}

	w.clearSuggestions(uc.now())
	uc.publish(ctx, model.WidgetEvent{WidgetID: w.id, Type: model.EventSuggestions, Suggestions: []string{}})

	err = uc.search(ctx, w, suggestion)
	return w.snapshot(), err
}

// Locate resolves the weather at a geolocation fix, honouring only the first fix
func (uc *widgetUseCase) Locate(ctx context.Context, id string, fix GeolocationFix) (entity.WidgetState, error) {
	w, err := uc.get(id)
	if err != nil {
		return entity.WidgetState{}, err
	}
	err = uc.locate(ctx, w, fix)
	return w.snapshot(), err
}

// Close removes a widget session
func (uc *widgetUseCase) Close(_ context.Context, id string) error {
	uc.mutex.Lock()
	_, ok := uc.widgets[id]
	delete(uc.widgets, id)
	uc.mutex.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrWidgetNotFound, id)
	}
	log.Info(msg.GetMessage("widget.log.closed", id), zap.String("widget_id", id))
	return nil
}

// EvictIdle removes sessions not seen for longer than ttl and returns how many were removed
func (uc *widgetUseCase) EvictIdle(_ context.Context, ttl time.Duration) int {
	cutoff := uc.now().Add(-ttl)

	uc.mutex.Lock()
	defer uc.mutex.Unlock()

	evicted := 0
	for id, w := range uc.widgets {
		if w.idleSince().Before(cutoff) {
			delete(uc.widgets, id)
			evicted++
		}
	}
	return evicted
}

// Count returns the number of open sessions
func (uc *widgetUseCase) Count() int {
	uc.mutex.RLock()
	defer uc.mutex.RUnlock()
	return len(uc.widgets)
}

func (uc *widgetUseCase) get(id string) (*Widget, error) {
	uc.mutex.RLock()
	w, ok := uc.widgets[id]
	uc.mutex.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWidgetNotFound, id)
	}
	w.touch(uc.now())
	return w, nil
}

func (uc *widgetUseCase) search(ctx context.Context, w *Widget, city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		uc.alert(ctx, w, ErrEmptyInput)
		return ErrEmptyInput
	}

	seq := w.nextWeatherSeq()
	response, err := uc.weatherGateway.CurrentByCity(ctx, city)
	if err != nil {
		return uc.failWeather(ctx, w, seq, err)
	}

	weather := toDisplayWeather(response, response.Name)
	if !w.applyWeather(seq, weather, uc.now()) {
		uc.discardStaleWeather(w, seq)
		return nil
	}
	w.clearSuggestions(uc.now())

	log.Info(msg.GetMessage("widget.log.weather-updated", w.id, weather.Location),
		zap.String("widget_id", w.id),
		zap.String("query", city))
	uc.publish(ctx, model.WidgetEvent{WidgetID: w.id, Type: model.EventWeather, Weather: weather})
	uc.publish(ctx, model.WidgetEvent{WidgetID: w.id, Type: model.EventSuggestions, Suggestions: []string{}})
	return nil
}

func (uc *widgetUseCase) suggest(ctx context.Context, w *Widget, text string) {
	seq := w.nextSeq()
	text = strings.TrimSpace(text)

	if utf8.RuneCountInString(text) < uc.config.SuggestionMinLength {
		if w.applySuggestions(seq, nil, uc.now()) {
			uc.publish(ctx, model.WidgetEvent{WidgetID: w.id, Type: model.EventSuggestions, Suggestions: []string{}})
		}
		return
	}

	places, err := uc.geocodingGateway.Direct(ctx, text, uc.config.SuggestionLimit)
	if err != nil {
		log.Warn(msg.GetMessage("widget.log.suggestions-failed", w.id),
			zap.String("widget_id", w.id),
			zap.String("query", text),
			zap.Error(err))
		return
	}

	suggestions := toSuggestions(places, uc.config.SuggestionLimit)
	if !w.applySuggestions(seq, suggestions, uc.now()) {
		log.Debug(msg.GetMessage("widget.log.suggestions-stale", w.id),
			zap.String("widget_id", w.id),
			zap.Uint64("seq", seq))
		return
	}
	uc.publish(ctx, model.WidgetEvent{WidgetID: w.id, Type: model.EventSuggestions, Suggestions: suggestions})
}

func validateFix(fix GeolocationFix) error {
	if !fix.Unavailable && !fix.Coordinates.Valid() {
		return fmt.Errorf("%w: lat %v lon %v", ErrInvalidCoordinates, fix.Coordinates.Latitude, fix.Coordinates.Longitude)
	}
	return nil
}

func (uc *widgetUseCase) locate(ctx context.Context, w *Widget, fix GeolocationFix) error {
	if err := validateFix(fix); err != nil {
		return err
	}
	if !w.located.CompareAndSwap(false, true) {
		log.Info(msg.GetMessage("widget.log.location-ignored", w.id), zap.String("widget_id", w.id))
		return nil
	}
	if fix.Unavailable {
		log.Info(msg.GetMessage("widget.log.location-unavailable", w.id), zap.String("widget_id", w.id))
		return nil
	}

	seq := w.nextWeatherSeq()
	response, reverse, weatherErr, reverseErr := uc.fetchWeatherAndPlaceInParallel(ctx, fix.Coordinates)

	// Weather is mandatory, the place name is optional
	if weatherErr != nil {
		return uc.failWeather(ctx, w, seq, weatherErr)
	}
	if reverseErr != nil {
		log.Warn(msg.GetMessage("widget.log.reverse-failed", w.id),
			zap.String("widget_id", w.id),
			zap.Error(reverseErr))
	}

	weather := toDisplayWeather(response, locationName(reverse, response.Name))
	if !w.applyWeather(seq, weather, uc.now()) {
		uc.discardStaleWeather(w, seq)
		return nil
	}

	log.Info(msg.GetMessage("widget.log.weather-updated", w.id, weather.Location), zap.String("widget_id", w.id))
	uc.publish(ctx, model.WidgetEvent{WidgetID: w.id, Type: model.EventWeather, Weather: weather})
	return nil
}

// fetchWeatherAndPlaceInParallel runs the weather request and the reverse geocode together
func (uc *widgetUseCase) fetchWeatherAndPlaceInParallel(ctx context.Context, coords entity.Coordinates) (*external.CurrentWeatherResponse, *external.ReverseGeocodeResponse, error, error) {
	var wg sync.WaitGroup
	var response *external.CurrentWeatherResponse
	var reverse *external.ReverseGeocodeResponse
	var weatherErr, reverseErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		response, weatherErr = uc.weatherGateway.CurrentByCoordinates(ctx, coords)
	}()

	if uc.reverseGateway != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reverse, reverseErr = uc.reverseGateway.Reverse(ctx, coords)
		}()
	}

	wg.Wait()

	return response, reverse, weatherErr, reverseErr
}

// failWeather clears the result and raises the alert matching the gateway failure.
// A failure that lost the race to a later lookup leaves that lookup's result alone.
func (uc *widgetUseCase) failWeather(ctx context.Context, w *Widget, seq uint64, err error) error {
	var mapped error
	if errors.Is(err, api.ErrLocationNotFound) {
		mapped = fmt.Errorf("%w: %w", ErrLocationNotFound, err)
	} else {
		mapped = fmt.Errorf("%w: %w", ErrWeatherUnavailable, err)
	}

	if !w.applyWeather(seq, nil, uc.now()) {
		uc.discardStaleWeather(w, seq)
		return mapped
	}
	log.Error(msg.GetMessage("widget.log.weather-failed", w.id),
		zap.String("widget_id", w.id),
		zap.Error(err))

	uc.publish(ctx, model.WidgetEvent{WidgetID: w.id, Type: model.EventWeather})
	uc.alert(ctx, w, mapped)
	return mapped
}

func (uc *widgetUseCase) discardStaleWeather(w *Widget, seq uint64) {
	log.Debug(msg.GetMessage("widget.log.weather-stale", w.id),
		zap.String("widget_id", w.id),
		zap.Uint64("seq", seq))
}

func (uc *widgetUseCase) alert(ctx context.Context, w *Widget, err error) {
	if alert := AlertFor(err); alert != nil {
		uc.publish(ctx, model.WidgetEvent{WidgetID: w.id, Type: model.EventAlert, Alert: alert})
	}
}

// publish stamps and sends an event; failures never reach the widget
func (uc *widgetUseCase) publish(ctx context.Context, event model.WidgetEvent) {
	event.At = uc.now().UTC()
	if err := uc.publisher.Publish(ctx, event); err != nil {
		log.Warn(msg.GetMessage("widget.log.publish-failed", string(event.Type), event.WidgetID), zap.Error(err))
	}
}
