package entity

import "time"

// WidgetState is a point-in-time copy of a widget's two state slots
type WidgetState struct {
	ID          string          `json:"id"`
	Weather     *DisplayWeather `json:"weather"`
	Suggestions []string        `json:"suggestions"`
	UpdatedAt   time.Time       `json:"updatedDate"`
}
