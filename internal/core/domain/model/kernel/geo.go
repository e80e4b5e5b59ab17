package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// GeoPoint is an optional WGS84 coordinate pair attached to tracking events.
type GeoPoint struct {
	latitude  float64
	longitude float64
}

// NewGeoPoint creates a validated coordinate pair. Latitude must be within
// [-90, 90] and longitude within [-180, 180].
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	if latitude < -90 || latitude > 90 {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("latitude",
			fmt.Errorf("%f is outside [-90, 90]", latitude))
	}
	if longitude < -180 || longitude > 180 {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("longitude",
			fmt.Errorf("%f is outside [-180, 180]", longitude))
	}

	return GeoPoint{latitude: latitude, longitude: longitude}, nil
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// IsEqual reports whether two points carry the same coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.latitude == other.latitude && p.longitude == other.longitude
}
