package httpapi

import "github.com/draymaster/services/hos-trip-planner/internal/validation"

// locationDTO is the wire shape of a single location field.
type locationDTO struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// planTripRequestDTO is the wire shape of POST /api/plan-trip.
type planTripRequestDTO struct {
	CurrentLocation locationDTO `json:"current_location"`
	PickupLocation  locationDTO `json:"pickup_location"`
	DropoffLocation locationDTO `json:"dropoff_location"`
	CycleHoursUsed  float64     `json:"cycle_hours_used"`
}

func (d planTripRequestDTO) toValidationInput() validation.PlanRequestInput {
	toLoc := func(l locationDTO) validation.LocationInput {
		return validation.LocationInput{Label: l.Label, Lat: l.Lat, Lng: l.Lng}
	}
	return validation.PlanRequestInput{
		Current:        toLoc(d.CurrentLocation),
		Pickup:         toLoc(d.PickupLocation),
		Dropoff:        toLoc(d.DropoffLocation),
		CycleHoursUsed: d.CycleHoursUsed,
	}
}

// errorResponse is the 400 field-validation error shape.
type errorResponse struct {
	Errors map[string]string `json:"errors"`
}

// internalErrorResponse is the 500 error shape.
type internalErrorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status string `json:"status"`
}
