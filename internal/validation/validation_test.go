package validation

import "testing"

func validRequest() PlanRequestInput {
	return PlanRequestInput{
		Current:        LocationInput{Label: "Chicago, IL", Lat: 41.8781, Lng: -87.6298},
		Pickup:         LocationInput{Label: "Indianapolis, IN", Lat: 39.7684, Lng: -86.1581},
		Dropoff:        LocationInput{Label: "Columbus, OH", Lat: 39.9612, Lng: -82.9988},
		CycleHoursUsed: 10,
	}
}

func TestPlanRequestValidator_ValidRequestHasNoErrors(t *testing.T) {
	v := NewPlanRequestValidator()
	if errs := v.Validate(validRequest()); errs != nil {
		t.Errorf("expected no errors, got %+v", errs)
	}
}

func TestPlanRequestValidator_MissingLabel(t *testing.T) {
	req := validRequest()
	req.Current.Label = ""

	v := NewPlanRequestValidator()
	errs := v.Validate(req)

	if errs == nil {
		t.Fatal("expected an error for a missing label")
	}
	if _, ok := errs["current.label"]; !ok {
		t.Errorf("errors = %+v, want a current.label entry", errs)
	}
}

func TestPlanRequestValidator_OutOfRangeCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PlanRequestInput)
		wantKey string
	}{
		{"lat too high", func(r *PlanRequestInput) { r.Pickup.Lat = 91 }, "pickup.lat"},
		{"lat too low", func(r *PlanRequestInput) { r.Pickup.Lat = -91 }, "pickup.lat"},
		{"lng too high", func(r *PlanRequestInput) { r.Dropoff.Lng = 181 }, "dropoff.lng"},
		{"lng too low", func(r *PlanRequestInput) { r.Dropoff.Lng = -181 }, "dropoff.lng"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			v := NewPlanRequestValidator()
			errs := v.Validate(req)
			if errs == nil {
				t.Fatal("expected a coordinate range error")
			}
			if _, ok := errs[tt.wantKey]; !ok {
				t.Errorf("errors = %+v, want a %s entry", errs, tt.wantKey)
			}
		})
	}
}

func TestPlanRequestValidator_CycleHoursOutOfRange(t *testing.T) {
	tests := []float64{-1, 71, 100}

	for _, hours := range tests {
		req := validRequest()
		req.CycleHoursUsed = hours

		v := NewPlanRequestValidator()
		errs := v.Validate(req)
		if errs == nil {
			t.Errorf("cycle_hours_used=%v should be rejected", hours)
			continue
		}
		if _, ok := errs["cycle_hours_used"]; !ok {
			t.Errorf("errors = %+v, want a cycle_hours_used entry", errs)
		}
	}
}

func TestPlanRequestValidator_CycleHoursMustBeWholeNumber(t *testing.T) {
	req := validRequest()
	req.CycleHoursUsed = 5.5

	v := NewPlanRequestValidator()
	errs := v.Validate(req)

	if errs == nil {
		t.Fatal("cycle_hours_used=5.5 should be rejected as non-integer")
	}
	if _, ok := errs["cycle_hours_used"]; !ok {
		t.Errorf("errors = %+v, want a cycle_hours_used entry", errs)
	}
}

func TestPlanRequestValidator_CollectsAllViolations(t *testing.T) {
	req := validRequest()
	req.Current.Label = ""
	req.Pickup.Lat = 999
	req.CycleHoursUsed = -5

	v := NewPlanRequestValidator()
	errs := v.Validate(req)

	for _, key := range []string{"current.label", "pickup.lat", "cycle_hours_used"} {
		if _, ok := errs[key]; !ok {
			t.Errorf("errors = %+v, missing expected key %q", errs, key)
		}
	}
}
