package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/shesafe/internal/pkg/models"
)

// EncodePosition converts a position to a geohash string
func EncodePosition(position models.Position, precision uint) string {
	return geohash.EncodeWithPrecision(position.Latitude, position.Longitude, precision)
}

// EncodeCoordinates converts a coordinate pair to a geohash string
func EncodeCoordinates(latitude, longitude float64, precision uint) string {
	return geohash.EncodeWithPrecision(latitude, longitude, precision)
}

// DecodeGeohash returns the center of a geohash cell
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.DecodeCenter(hash)
}

// ValidCoordinates reports whether the pair is finite and within range
func ValidCoordinates(latitude, longitude float64) bool {
	if math.IsNaN(latitude) || math.IsNaN(longitude) || math.IsInf(latitude, 0) || math.IsInf(longitude, 0) {
		return false
	}
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}

// CalculateDistance returns the great-circle distance in kilometers (Haversine)
func CalculateDistance(a, b models.Position) float64 {
	const earthRadius = 6371.0

	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadius * c
}
