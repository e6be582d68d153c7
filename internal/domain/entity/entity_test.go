package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIconFor(t *testing.T) {
	cases := map[string]IconAsset{
		"01d": IconClear,
		"01n": IconClear,
		"02d": IconCloud,
		"03n": IconCloud,
		"04d": IconDrizzle,
		"50n": IconDrizzle,
		"09d": IconRain,
		"10n": IconRain,
		"13d": IconSnow,
		"11d": IconClear,
		"99x": IconClear,
		"":    IconClear,
	}
	for code, expected := range cases {
		assert.Equal(t, expected, IconFor(code), code)
	}
}

func TestIcons(t *testing.T) {
	icons := Icons()
	assert.Len(t, icons, 7)
	assert.Contains(t, icons, IconWind)
	assert.Contains(t, icons, IconHumidity)
	assert.Equal(t, "snow.png", IconSnow.FileName())
}

func TestCoordinatesValid(t *testing.T) {
	assert.True(t, Coordinates{Latitude: 51.5072, Longitude: -0.1276}.Valid())
	assert.True(t, Coordinates{Latitude: -90, Longitude: 180}.Valid())
	assert.False(t, Coordinates{Latitude: 90.1, Longitude: 0}.Valid())
	assert.False(t, Coordinates{Latitude: 0, Longitude: -180.5}.Valid())
	assert.False(t, Coordinates{Latitude: math.NaN(), Longitude: 0}.Valid())
}

func TestCoordinatesFormatting(t *testing.T) {
	c := Coordinates{Latitude: 51.5072, Longitude: -0.1276}
	assert.Equal(t, "51.5072", c.LatString())
	assert.Equal(t, "-0.1276", c.LonString())
}
