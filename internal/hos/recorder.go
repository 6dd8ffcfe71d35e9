package hos

import "github.com/draymaster/services/hos-trip-planner/internal/domain"

// Recorder is an append-only log of duty-status events plus the scheduler's
// wall-clock cursor. Time is tracked as a single monotonic hours-since-day-1
// scalar; Day/Hour are derived by divmod on read and on write.
type Recorder struct {
	events []domain.Event
	clock  float64 // hours since day 1, 00:00
}

// NewRecorder starts the clock at the given start-of-day hour.
func NewRecorder(startHour float64) *Recorder {
	return &Recorder{clock: startHour}
}

// Day returns the current 1-indexed day.
func (r *Recorder) Day() int {
	return int(r.clock/24) + 1
}

// HourOfDay returns the current hour within the current day, in [0, 24).
func (r *Recorder) HourOfDay() float64 {
	return r.clock - float64(r.Day()-1)*24
}

// Clock returns the raw hours-since-day-1 scalar.
func (r *Recorder) Clock() float64 {
	return r.clock
}

// Events returns the recorded events so far.
func (r *Recorder) Events() []domain.Event {
	return r.events
}

// Record appends a status interval of the given duration starting at the
// current cursor, splitting it across any midnight it crosses, and advances
// the cursor by duration. A zero-duration record is a no-op.
func (r *Recorder) Record(status domain.DutyStatus, durationH float64) {
	if durationH <= 0 {
		return
	}

	remaining := durationH
	for remaining > 0 {
		day := r.Day()
		hourOfDay := r.HourOfDay()
		untilMidnight := 24 - hourOfDay

		segment := remaining
		if segment > untilMidnight {
			segment = untilMidnight
		}

		r.events = append(r.events, domain.Event{
			Day:    day,
			StartH: hourOfDay,
			EndH:   hourOfDay + segment,
			Status: status,
		})

		r.clock += segment
		remaining -= segment
	}
}

// EmitOffDutyFromMidnight appends the pre-start off-duty block from 00:00 up
// to the current cursor, without moving the cursor. Used once, for day 1's
// entry sequence — no other day receives this treatment; days created by
// rest crossings get their off-duty purely from the projector's gap fill.
func (r *Recorder) EmitOffDutyFromMidnight() {
	hourOfDay := r.HourOfDay()
	if hourOfDay <= 0 {
		return
	}

	r.events = append(r.events, domain.Event{
		Day:    r.Day(),
		StartH: 0,
		EndH:   hourOfDay,
		Status: domain.StatusOffDuty,
	})
}
