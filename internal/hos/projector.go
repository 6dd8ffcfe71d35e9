package hos

import (
	"math"
	"sort"

	"github.com/draymaster/services/hos-trip-planner/internal/domain"
)

// mergeTolerance is the largest gap between two same-status fragments that
// is still treated as "adjacent" and merged into one interval.
const mergeTolerance = 0.01

// gapTolerance is the largest single uncovered span (before, between, or
// after a day's events) that is left unfilled; any larger span gets an
// offDuty filler so every day log covers the full 24 hours (invariant I4).
const gapTolerance = 0.1

// Projector turns the scheduler's flat event log into one DayLog per day:
// merged same-status intervals, gap-filled to full 24-hour coverage, and
// rounded for presentation.
type Projector struct{}

// NewProjector returns a Daily-Log Projector.
func NewProjector() *Projector {
	return &Projector{}
}

// Project groups events by day across [1, totalDays] and produces one
// DayLog per day, including days that had no recorded events at all.
func (p *Projector) Project(events []domain.Event, totalDays int) []domain.DayLog {
	byDay := make(map[int][]domain.Event, totalDays)
	for _, e := range events {
		byDay[e.Day] = append(byDay[e.Day], e)
	}

	logs := make([]domain.DayLog, totalDays)
	for day := 1; day <= totalDays; day++ {
		logs[day-1] = p.projectDay(byDay[day])
	}
	return logs
}

// projectDay builds a single day's log from its (already chronological)
// events.
func (p *Projector) projectDay(dayEvents []domain.Event) domain.DayLog {
	if len(dayEvents) == 0 {
		return domain.DayLog{
			OffDuty: []domain.Interval{{Start: 0, End: 24}},
			Totals:  domain.Totals{OffDuty: 24},
		}
	}

	sort.SliceStable(dayEvents, func(i, j int) bool { return dayEvents[i].StartH < dayEvents[j].StartH })

	merged := mergeAdjacent(dayEvents)
	merged = gapFill(merged)

	var log domain.DayLog
	for _, e := range merged {
		interval := domain.Interval{Start: round2(e.StartH), End: round2(e.EndH)}
		hours := e.EndH - e.StartH

		switch e.Status {
		case domain.StatusOffDuty:
			log.OffDuty = append(log.OffDuty, interval)
			log.Totals.OffDuty += hours
		case domain.StatusSleeperBerth:
			log.SleeperBerth = append(log.SleeperBerth, interval)
			log.Totals.SleeperBerth += hours
		case domain.StatusDriving:
			log.Driving = append(log.Driving, interval)
			log.Totals.Driving += hours
		case domain.StatusOnDuty:
			log.OnDuty = append(log.OnDuty, interval)
			log.Totals.OnDuty += hours
		}
	}

	log.Totals.OffDuty = round1(log.Totals.OffDuty)
	log.Totals.SleeperBerth = round1(log.Totals.SleeperBerth)
	log.Totals.Driving = round1(log.Totals.Driving)
	log.Totals.OnDuty = round1(log.Totals.OnDuty)

	return log
}

// mergeAdjacent folds consecutive same-status events whose gap is within
// mergeTolerance into a single event.
func mergeAdjacent(events []domain.Event) []domain.Event {
	merged := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if n := len(merged); n > 0 {
			last := &merged[n-1]
			if last.Status == e.Status && e.StartH-last.EndH <= mergeTolerance {
				if e.EndH > last.EndH {
					last.EndH = e.EndH
				}
				continue
			}
		}
		merged = append(merged, e)
	}
	return merged
}

// gapFill inserts offDuty events into any uncovered span — before the first
// event, between events, and after the last — whenever the gap exceeds
// gapTolerance. This is the sole authority for a day log's 24-hour coverage
// invariant (I4).
func gapFill(events []domain.Event) []domain.Event {
	filled := make([]domain.Event, 0, len(events)+2)
	cursor := 0.0

	for _, e := range events {
		if e.StartH-cursor > gapTolerance {
			filled = append(filled, domain.Event{Day: e.Day, StartH: cursor, EndH: e.StartH, Status: domain.StatusOffDuty})
		}
		filled = append(filled, e)
		if e.EndH > cursor {
			cursor = e.EndH
		}
	}

	if 24-cursor > gapTolerance {
		day := 0
		if len(events) > 0 {
			day = events[0].Day
		}
		filled = append(filled, domain.Event{Day: day, StartH: cursor, EndH: 24, Status: domain.StatusOffDuty})
	}

	return mergeAdjacent(filled)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
