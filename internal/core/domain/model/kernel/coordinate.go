package kernel

import (
	"errors"
	"fmt"
	"math"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

const (
	// LatitudeMin is the southernmost valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the northernmost valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the westernmost valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the easternmost valid longitude in degrees.
	LongitudeMax = 180.0
)

// ErrCoordinateIsNotConstructed is returned when a zero Coordinate is used.
var ErrCoordinateIsNotConstructed = errs.NewValueIsRequiredError(
	"coordinate must be created via NewCoordinate")

// Coordinate is a WGS 84 point. It is used both for the location a customer
// picks on the checkout map and for the vertices of delivery zone polygons.
//
// Coordinate is an immutable value object; the zero value is invalid.
//
// Example:
//
//	point, err := kernel.NewCoordinate(4.6097, -74.0817)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(point) // (4.609700, -74.081700)
type Coordinate struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewCoordinate validates that both components are finite and inside
// [LatitudeMin..LatitudeMax] and [LongitudeMin..LongitudeMax].
// All violations are reported together.
func NewCoordinate(lat, lng float64) (Coordinate, error) {
	c := Coordinate{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setLat(lat), c.setLng(lng)); err != nil {
		return Coordinate{}, err
	}

	return c, nil
}

// Validate reports whether the coordinate was built by NewCoordinate.
func (c Coordinate) Validate() error {
	return c.guard.Validate(ErrCoordinateIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (c Coordinate) Lat() float64 {
	return c.lat
}

// Lng returns the longitude in degrees.
func (c Coordinate) Lng() float64 {
	return c.lng
}

// String formats the coordinate as "(lat, lng)" with six decimals,
// roughly 0.1 m of precision.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.lat, c.lng)
}

// IsEqual compares two constructed coordinates component-wise.
func (c Coordinate) IsEqual(other Coordinate) (bool, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return c == other, nil
}

func (c *Coordinate) setLat(lat float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) {
		return errs.NewValueIsInvalidErrorWithCause("latitude", fmt.Errorf("%v is not a finite number", lat))
	}
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}

	c.lat = lat
	return nil
}

func (c *Coordinate) setLng(lng float64) error {
	if math.IsNaN(lng) || math.IsInf(lng, 0) {
		return errs.NewValueIsInvalidErrorWithCause("longitude", fmt.Errorf("%v is not a finite number", lng))
	}
	if lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lng, LongitudeMin, LongitudeMax)
	}

	c.lng = lng
	return nil
}
