package routing

import "testing"

func TestHaversineEstimator_KnownDistance(t *testing.T) {
	// Chicago, IL to Indianapolis, IN — roughly 165 miles great-circle.
	chicago := Location{Label: "Chicago, IL", Lat: 41.8781, Lng: -87.6298}
	indianapolis := Location{Label: "Indianapolis, IN", Lat: 39.7684, Lng: -86.1581}

	e := NewHaversineEstimator()
	route := e.Estimate(chicago, indianapolis, indianapolis)

	leg := route.Legs[0]
	if leg.DistanceMi < 150 || leg.DistanceMi > 250 {
		t.Errorf("leg distance = %v, want 150-250mi (about 165mi great-circle, about 215mi after the 1.3 road factor)", leg.DistanceMi)
	}
}

func TestHaversineEstimator_ZeroDistanceSameLocation(t *testing.T) {
	loc := Location{Label: "Same", Lat: 10, Lng: 10}

	e := NewHaversineEstimator()
	route := e.Estimate(loc, loc, loc)

	if route.TotalDistanceMi != 0 {
		t.Errorf("TotalDistanceMi = %v, want 0 for identical points", route.TotalDistanceMi)
	}
}

func TestHaversineEstimator_DurationMatchesDistanceOverSpeed(t *testing.T) {
	origin := Location{Label: "A", Lat: 0, Lng: 0}
	pickup := Location{Label: "B", Lat: 5, Lng: 5}
	dropoff := Location{Label: "C", Lat: 10, Lng: 10}

	e := NewHaversineEstimator()
	route := e.Estimate(origin, pickup, dropoff)

	for i, leg := range route.Legs {
		want := leg.DistanceMi / e.AvgSpeedMPH
		if leg.DurationH != want {
			t.Errorf("leg %d DurationH = %v, want %v", i, leg.DurationH, want)
		}
	}
}

func TestHaversineEstimator_DefaultsSpeedWhenZero(t *testing.T) {
	e := &HaversineEstimator{}
	origin := Location{Lat: 0, Lng: 0}
	dest := Location{Lat: 1, Lng: 1}

	route := e.Estimate(origin, dest, dest)
	if route.Legs[0].DurationH <= 0 {
		t.Errorf("expected a positive duration when AvgSpeedMPH is unset, got %v", route.Legs[0].DurationH)
	}
}
