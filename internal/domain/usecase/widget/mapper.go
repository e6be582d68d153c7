package widget

import (
	"strings"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/util/numberutils"
)

// toDisplayWeather applies the display formulas: floored °C and m/s converted to km/h with one decimal
func toDisplayWeather(response *external.CurrentWeatherResponse, location string) *entity.DisplayWeather {
	var iconCode string
	if len(response.Weather) > 0 {
		iconCode = response.Weather[0].Icon
	}

	return &entity.DisplayWeather{
		Temperature:  numberutils.FloorToInt(response.Main.Temp),
		Humidity:     response.Main.Humidity,
		WindSpeedKmh: numberutils.RoundTo(response.Wind.Speed*3.6, 1),
		Location:     location,
		Icon:         entity.IconFor(iconCode),
	}
}

// toSuggestions formats places as "name, country", keeping at most limit entries
func toSuggestions(places []external.GeoDirectResponse, limit int) []string {
	size := numberutils.MinInt(len(places), limit)
	suggestions := make([]string, 0, size)
	for _, place := range places[:size] {
		if place.Country == "" {
			suggestions = append(suggestions, place.Name)
			continue
		}
		suggestions = append(suggestions, place.Name+", "+place.Country)
	}
	return suggestions
}

// locationName picks city, town, village, state, then the provider name
func locationName(reverse *external.ReverseGeocodeResponse, providerName string) string {
	if reverse != nil {
		address := reverse.Address
		for _, candidate := range []string{address.City, address.Town, address.Village, address.State} {
			if name := strings.TrimSpace(candidate); name != "" {
				return name
			}
		}
	}
	return providerName
}
