package widget

import (
	"sync"
	"sync/atomic"
	"time"

	"go-weather/internal/domain/entity"
)

// Widget owns the two independent state slots of one mounted widget.
// Network calls run outside mu; each slot is replaced whole under it.
type Widget struct {
	id string

	mu                sync.Mutex
	weather           *entity.DisplayWeather
	suggestions       []string
	appliedSeq        uint64
	appliedWeatherSeq uint64
	updatedAt         time.Time
	lastSeen          time.Time

	issuedSeq        atomic.Uint64
	issuedWeatherSeq atomic.Uint64
	located          atomic.Bool
}

func newWidget(id string, now time.Time) *Widget {
	return &Widget{
		id:        id,
		updatedAt: now,
		lastSeen:  now,
	}
}

func (w *Widget) touch(now time.Time) {
	w.mu.Lock()
	w.lastSeen = now
	w.mu.Unlock()
}

func (w *Widget) idleSince() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastSeen
}

// nextWeatherSeq issues the token for a weather lookup
func (w *Widget) nextWeatherSeq() uint64 {
	return w.issuedWeatherSeq.Add(1)
}

// applyWeather replaces the result unless a later lookup was already applied
func (w *Widget) applyWeather(seq uint64, weather *entity.DisplayWeather, now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if seq <= w.appliedWeatherSeq {
		return false
	}
	w.appliedWeatherSeq = seq
	w.weather = weather
	w.updatedAt = now
	return true
}

// nextSeq issues the token for a suggestion update
func (w *Widget) nextSeq() uint64 {
	return w.issuedSeq.Add(1)
}

// applySuggestions replaces the list unless a newer update was already applied
func (w *Widget) applySuggestions(seq uint64, suggestions []string, now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if seq <= w.appliedSeq {
		return false
	}
	w.appliedSeq = seq
	w.suggestions = suggestions
	w.updatedAt = now
	return true
}

// clearSuggestions empties the list and invalidates every request still in flight
func (w *Widget) clearSuggestions(now time.Time) {
	w.applySuggestions(w.nextSeq(), nil, now)
}

func (w *Widget) snapshot() entity.WidgetState {
	w.mu.Lock()
	defer w.mu.Unlock()

	var weather *entity.DisplayWeather
	if w.weather != nil {
		copied := *w.weather
		weather = &copied
	}
	suggestions := make([]string, len(w.suggestions))
	copy(suggestions, w.suggestions)

	return entity.WidgetState{
		ID:          w.id,
		Weather:     weather,
		Suggestions: suggestions,
		UpdatedAt:   w.updatedAt,
	}
}
