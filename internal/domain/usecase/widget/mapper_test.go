package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"
)

func TestToDisplayWeatherFormulas(t *testing.T) {
	cases := []struct {
		temp     float64
		speed    float64
		icon     string
		wantTemp int
		wantWind float64
		wantIcon entity.IconAsset
	}{
		{15.7, 3, "01d", 15, 10.8, entity.IconClear},
		{-0.5, 0, "13n", -1, 0, entity.IconSnow},
		{-3.2, 1.25, "10d", -4, 4.5, entity.IconRain},
		{30.99, 12.5, "04n", 30, 45, entity.IconDrizzle},
		{20, 5.5, "99x", 20, 19.8, entity.IconClear},
	}

	for _, tc := range cases {
		response := &external.CurrentWeatherResponse{
			Name:    "X",
			Main:    external.MainConditionsDTO{Temp: tc.temp, Humidity: 50},
			Wind:    external.WindDTO{Speed: tc.speed},
			Weather: []external.WeatherConditionDTO{{Icon: tc.icon}},
		}
		weather := toDisplayWeather(response, "X")
		assert.Equal(t, tc.wantTemp, weather.Temperature)
		assert.Equal(t, tc.wantWind, weather.WindSpeedKmh)
		assert.Equal(t, tc.wantIcon, weather.Icon)
		assert.Equal(t, 50, weather.Humidity)
	}
}

func TestToDisplayWeatherWithoutConditions(t *testing.T) {
	weather := toDisplayWeather(&external.CurrentWeatherResponse{Name: "Nowhere"}, "Nowhere")
	assert.Equal(t, entity.IconClear, weather.Icon)
	assert.Equal(t, "Nowhere", weather.Location)
}

func TestToSuggestions(t *testing.T) {
	places := []external.GeoDirectResponse{
		{Name: "London", Country: "GB"},
		{Name: "London", Country: "CA"},
		{Name: "Londrina"},
	}
	assert.Equal(t, []string{"London, GB", "London, CA", "Londrina"}, toSuggestions(places, 5))
	assert.Equal(t, []string{"London, GB"}, toSuggestions(places, 1))
	assert.Empty(t, toSuggestions(nil, 5))
}
