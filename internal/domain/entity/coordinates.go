package entity

import (
	"strconv"

	"go-weather/pkg/util/numberutils"
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether both values are inside the WGS84 ranges
func (c Coordinates) Valid() bool {
	return numberutils.IsFloat64InRange(c.Latitude, -90, 90) &&
		numberutils.IsFloat64InRange(c.Longitude, -180, 180)
}

// LatString formats the latitude for query strings
func (c Coordinates) LatString() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64)
}

// LonString formats the longitude for query strings
func (c Coordinates) LonString() string {
	return strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}
