package routing

import "fmt"

// Interpolate returns a point a fractional progress of the way from one
// endpoint to the other, linearly in lat/lng — no geodesic accuracy is
// required since it is only used to name mid-leg stops (rest, break, fuel).
// The label carries the rounded mileage reached so far, not the
// interpolated position's own distance.
func Interpolate(from, to Location, progress float64, mileageAtPoint float64) Location {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	return Location{
		Label: fmt.Sprintf("Mile %.0f", mileageAtPoint),
		Lat:   from.Lat + (to.Lat-from.Lat)*progress,
		Lng:   from.Lng + (to.Lng-from.Lng)*progress,
	}
}
