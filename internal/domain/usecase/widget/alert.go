package widget

import (
	"errors"

	"go-weather/internal/domain/model"
	"go-weather/pkg/msg"
)

// AlertFor returns the user-facing alert for err, or nil when err is not shown to the user
func AlertFor(err error) *model.AlertDTO {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrEmptyInput):
		return &model.AlertDTO{Kind: model.AlertEmptyInput, Message: msg.GetMessage("widget.alert.empty-input")}
	case errors.Is(err, ErrLocationNotFound):
		return &model.AlertDTO{Kind: model.AlertLocationNotFound, Message: msg.GetMessage("widget.alert.location-not-found")}
	case errors.Is(err, ErrWeatherUnavailable):
		return &model.AlertDTO{Kind: model.AlertWeatherUnavailable, Message: msg.GetMessage("widget.alert.weather-unavailable")}
	default:
		return nil
	}
}
