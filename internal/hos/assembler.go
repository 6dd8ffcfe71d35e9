package hos

import (
	"fmt"
	"math"
	"time"

	"github.com/draymaster/services/hos-trip-planner/internal/domain"
	"github.com/draymaster/services/hos-trip-planner/internal/routing"
)

// cycleWarningThreshold is the 70-hour/8-day cycle ceiling past which a plan
// still completes but carries a soft warning.
const cycleWarningThreshold = domain.MaxCycleHours

// Assembler combines a scheduler's stops and a projector's day logs into the
// final TripResult, recomputing the cycle totals from the day logs rather
// than from the scheduler's internal counters (the scheduler's running
// cycleHoursUsed is not read here and is not authoritative for the result).
type Assembler struct {
	estimator routing.Estimator
}

// NewAssembler returns a Trip Assembler.
func NewAssembler(estimator routing.Estimator) *Assembler {
	return &Assembler{estimator: estimator}
}

// Assemble produces the final TripResult for a validated plan request.
func (a *Assembler) Assemble(id string, req domain.PlanRequest) domain.TripResult {
	route := a.estimator.Estimate(
		routing.Location{Label: req.Current.Label, Lat: req.Current.Lat, Lng: req.Current.Lng},
		routing.Location{Label: req.Pickup.Label, Lat: req.Pickup.Lat, Lng: req.Pickup.Lng},
		routing.Location{Label: req.Dropoff.Label, Lat: req.Dropoff.Lat, Lng: req.Dropoff.Lng},
	)
	domainRoute := toDomainRoute(route)

	scheduler := NewScheduler()
	stops, events := scheduler.Run(req.Current, req.Pickup, req.Dropoff, domainRoute)

	totalDays := 1
	for _, e := range events {
		if e.Day > totalDays {
			totalDays = e.Day
		}
	}
	for _, s := range stops {
		if s.Day > totalDays {
			totalDays = s.Day
		}
	}

	logs := NewProjector().Project(events, totalDays)

	today := time.Now()
	var totalDriving, totalOnDuty float64
	days := make([]domain.Day, totalDays)
	for i := 0; i < totalDays; i++ {
		dayNum := i + 1
		days[i] = domain.Day{
			Day:   dayNum,
			Date:  today.AddDate(0, 0, i).Format("2006-01-02"),
			Stops: stopsForDay(stops, dayNum),
			Log:   logs[i],
		}
		totalDriving += logs[i].Totals.Driving
		totalOnDuty += logs[i].Totals.OnDuty
	}

	finalCycleActual := req.CycleHoursUsed + totalDriving + totalOnDuty
	cycleHoursUsed := math.Round(finalCycleActual)
	if cycleHoursUsed > domain.MaxCycleHours {
		cycleHoursUsed = domain.MaxCycleHours
	}

	result := domain.TripResult{
		ID:                id,
		Name:              fmt.Sprintf("%s → %s", req.Current.Label, req.Dropoff.Label),
		Origin:            req.Current,
		Pickup:            req.Pickup,
		Dropoff:           req.Dropoff,
		CycleHoursUsed:    cycleHoursUsed,
		CycleHoursActual:  round1(finalCycleActual),
		TotalMiles:        int(math.Round(domainRoute.TotalDistanceMi)),
		TotalDays:         totalDays,
		TotalDrivingHours: round1(totalDriving),
		TotalOnDutyHours:  round1(totalOnDuty),
		Days:              days,
		Route:             domain.RouteInfo{Waypoints: []domain.Location{req.Current, req.Pickup, req.Dropoff}},
	}

	if finalCycleActual > cycleWarningThreshold {
		excess := round1(finalCycleActual - cycleWarningThreshold)
		result.Warning = &domain.Warning{
			Type:           "cycle_exceeded",
			Message:        fmt.Sprintf("This trip exceeds the 70-hour cycle limit by %.1f hours. Consider taking a 34-hour restart before starting.", excess),
			ExcessHours:    excess,
			Recommendation: "34-hour restart required",
		}
	}

	return result
}

func stopsForDay(stops []domain.Stop, day int) []domain.Stop {
	var out []domain.Stop
	for _, s := range stops {
		if s.Day == day {
			out = append(out, s)
		}
	}
	return out
}

func toDomainRoute(r routing.Route) domain.Route {
	toLoc := func(l routing.Location) domain.Location {
		return domain.Location{Label: l.Label, Lat: l.Lat, Lng: l.Lng}
	}
	toLeg := func(l routing.Leg) domain.Leg {
		return domain.Leg{From: toLoc(l.From), To: toLoc(l.To), DistanceMi: l.DistanceMi, DurationH: l.DurationH}
	}

	waypoints := make([]domain.Location, len(r.Waypoints))
	for i, w := range r.Waypoints {
		waypoints[i] = toLoc(w)
	}

	return domain.Route{
		Legs:              [2]domain.Leg{toLeg(r.Legs[0]), toLeg(r.Legs[1])},
		TotalDistanceMi:   r.TotalDistanceMi,
		TotalDrivingTimeH: r.TotalDrivingTimeH,
		Waypoints:         waypoints,
	}
}
