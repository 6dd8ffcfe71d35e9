package hos

import (
	"fmt"
	"math"

	"github.com/draymaster/services/hos-trip-planner/internal/domain"
	"github.com/draymaster/services/hos-trip-planner/internal/routing"
)

// Scheduler is the HOS state machine: it walks a distance-denominated route
// while interleaving driving, breaks, rests, fueling, and the fixed
// pickup/dropoff on-duty periods under the four FMCSA limits, emitting an
// ordered stop list and driving the Recorder.
type Scheduler struct {
	recorder *Recorder

	dayDriving        float64
	dayDuty           float64
	drivingSinceBreak float64
	cycleHoursUsed    float64 // advanced by driving and on-duty time, not by breaks; not read by the assembler
	currentMileage    float64

	stops []domain.Stop
}

// NewScheduler starts the clock at the fixed day-1 start time, 6 AM.
func NewScheduler() *Scheduler {
	return &Scheduler{recorder: NewRecorder(domain.DayStartHour)}
}

// Run executes the entry sequence over a route's two legs and the fixed
// pickup/dropoff on-duty periods, returning the ordered stop list and the
// recorder's event log.
func (s *Scheduler) Run(origin, pickup, dropoff domain.Location, route domain.Route) ([]domain.Stop, []domain.Event) {
	s.recorder.EmitOffDutyFromMidnight()

	s.emitStop(domain.StopStart, origin, 0)

	s.driveLeg(route.Legs[0])

	s.emitStop(domain.StopPickup, pickup, domain.PickupDuration)
	s.recordOnDuty(domain.PickupDuration)

	s.driveLeg(route.Legs[1])

	s.emitStop(domain.StopDropoff, dropoff, domain.DropoffDuration)
	s.recordOnDuty(domain.DropoffDuration)

	s.emitStop(domain.StopEnd, dropoff, 0)
	s.recorder.Record(domain.StatusOffDuty, 24-s.recorder.HourOfDay())

	return s.stops, s.recorder.Events()
}

// driveLeg runs the driving loop for one leg to completion, interleaving
// rests, breaks, and fuel stops as the duty counters dictate.
func (s *Scheduler) driveLeg(leg domain.Leg) {
	remaining := leg.DistanceMi

	for remaining > 0 {
		available := math.Min(
			domain.MaxDrivingHours-s.dayDriving,
			math.Min(domain.MaxDutyWindow-s.dayDuty, domain.BreakAfterHours-s.drivingSinceBreak),
		)

		progress := 0.0
		if leg.DistanceMi > 0 {
			progress = 1 - remaining/leg.DistanceMi
		}

		if available <= 0 {
			s.emitInterpStop(domain.StopRest, leg, progress)
			s.takeRest()
			continue
		}

		if s.drivingSinceBreak >= domain.BreakAfterHours {
			s.emitInterpStop(domain.StopBreak, leg, progress)
			s.takeBreak()
			continue
		}

		driveDist := math.Min(available*domain.AvgSpeedMPH, remaining)

		nextFuelMile := (math.Floor(s.currentMileage/domain.FuelIntervalMi) + 1) * domain.FuelIntervalMi
		milesToFuel := nextFuelMile - s.currentMileage

		if milesToFuel > 0 && milesToFuel < driveDist {
			s.driveMiles(leg, milesToFuel)
			remaining -= milesToFuel

			fuelProgress := 0.0
			if leg.DistanceMi > 0 {
				fuelProgress = 1 - remaining/leg.DistanceMi
			}
			s.emitInterpStop(domain.StopFuel, leg, fuelProgress)
			s.recordOnDuty(domain.FuelDuration)
			continue
		}

		s.driveMiles(leg, driveDist)
		remaining -= driveDist
	}
}

// driveMiles records a driving segment of the given distance and advances
// every counter it affects: the duty-period driving and duty totals, the
// break clock, current mileage, and the cycle total.
func (s *Scheduler) driveMiles(leg domain.Leg, miles float64) {
	hours := miles / domain.AvgSpeedMPH

	s.recorder.Record(domain.StatusDriving, hours)

	s.dayDriving += hours
	s.dayDuty += hours
	s.drivingSinceBreak += hours
	s.currentMileage += miles
	s.cycleHoursUsed += hours
}

// recordOnDuty records a fixed on-duty period (pickup, dropoff, fuel).
func (s *Scheduler) recordOnDuty(hours float64) {
	s.recorder.Record(domain.StatusOnDuty, hours)

	s.dayDuty += hours
	s.cycleHoursUsed += hours
}

// takeBreak records the 30-minute break and resets only the break counter.
// The break itself does not add to cycle_hours_used or day_duty.
func (s *Scheduler) takeBreak() {
	s.recorder.Record(domain.StatusOnDuty, domain.BreakDuration)
	s.drivingSinceBreak = 0
}

// takeRest records the 10-hour rest and resets the duty-period counters.
func (s *Scheduler) takeRest() {
	s.recorder.Record(domain.StatusSleeperBerth, domain.RestDuration)
	s.dayDriving = 0
	s.dayDuty = 0
	s.drivingSinceBreak = 0
}

// emitStop appends a named stop at the current position with zero
// interpolation (start/pickup/dropoff/end, all at a leg endpoint).
func (s *Scheduler) emitStop(stopType domain.StopType, loc domain.Location, durationH float64) {
	s.stops = append(s.stops, domain.Stop{
		Type:           stopType,
		Label:          loc.Label,
		Time:           formatTime(s.recorder.HourOfDay()),
		DurationH:      durationH,
		Lat:            loc.Lat,
		Lng:            loc.Lng,
		MileageRounded: int(math.Round(s.currentMileage)),
		Day:            s.recorder.Day(),
	})
}

// emitInterpStop appends a stop at an interpolated mid-leg position
// (rest/break/fuel), labeled with the mileage reached so far.
func (s *Scheduler) emitInterpStop(stopType domain.StopType, leg domain.Leg, progress float64) {
	loc := routing.Interpolate(
		routing.Location{Label: leg.From.Label, Lat: leg.From.Lat, Lng: leg.From.Lng},
		routing.Location{Label: leg.To.Label, Lat: leg.To.Lat, Lng: leg.To.Lng},
		progress,
		s.currentMileage,
	)

	var duration float64
	switch stopType {
	case domain.StopRest:
		duration = domain.RestDuration
	case domain.StopBreak:
		duration = domain.BreakDuration
	case domain.StopFuel:
		duration = domain.FuelDuration
	}

	s.stops = append(s.stops, domain.Stop{
		Type:           stopType,
		Label:          loc.Label,
		Time:           formatTime(s.recorder.HourOfDay()),
		DurationH:      duration,
		Lat:            loc.Lat,
		Lng:            loc.Lng,
		MileageRounded: int(math.Round(s.currentMileage)),
		Day:            s.recorder.Day(),
	})
}

// formatTime renders an hour-of-day (possibly slightly over 24 due to
// floating point) as a 24-hour-clock "HH:MM" string.
func formatTime(hours float64) string {
	h := int(hours) % 24
	m := int(math.Round((hours - math.Floor(hours)) * 60))
	if m == 60 {
		m = 0
		h = (h + 1) % 24
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}
