package hos

import (
	"testing"

	"github.com/draymaster/services/hos-trip-planner/internal/domain"
)

func TestProjector_EmptyDayGetsFullOffDuty(t *testing.T) {
	p := NewProjector()
	logs := p.Project(nil, 1)

	if len(logs) != 1 {
		t.Fatalf("got %d logs, want 1", len(logs))
	}
	log := logs[0]
	if len(log.OffDuty) != 1 || log.OffDuty[0].Start != 0 || log.OffDuty[0].End != 24 {
		t.Errorf("got %+v, want single offDuty [0,24]", log.OffDuty)
	}
	if log.Totals.OffDuty != 24 {
		t.Errorf("OffDuty total = %v, want 24", log.Totals.OffDuty)
	}
}

func TestProjector_MergesAdjacentSameStatusFragments(t *testing.T) {
	events := []domain.Event{
		{Day: 1, StartH: 6, EndH: 10, Status: domain.StatusDriving},
		{Day: 1, StartH: 10.005, EndH: 12, Status: domain.StatusDriving}, // within mergeTolerance
	}

	p := NewProjector()
	logs := p.Project(events, 1)

	if len(logs[0].Driving) != 1 {
		t.Fatalf("got %d driving intervals, want 1 merged interval: %+v", len(logs[0].Driving), logs[0].Driving)
	}
	if logs[0].Driving[0].Start != 6 || logs[0].Driving[0].End != 12 {
		t.Errorf("merged interval = %+v, want [6, 12]", logs[0].Driving[0])
	}
}

func TestProjector_FillsGapsWithOffDuty(t *testing.T) {
	events := []domain.Event{
		{Day: 1, StartH: 6, EndH: 10, Status: domain.StatusDriving},
		{Day: 1, StartH: 12, EndH: 14, Status: domain.StatusOnDuty},
	}

	p := NewProjector()
	logs := p.Project(events, 1)
	log := logs[0]

	if len(log.OffDuty) != 3 {
		t.Fatalf("got %d offDuty intervals, want 3 (leading+middle+trailing gaps), got %+v", len(log.OffDuty), log.OffDuty)
	}
	if log.OffDuty[0].Start != 0 || log.OffDuty[0].End != 6 {
		t.Errorf("leading gap fill = %+v, want [0,6]", log.OffDuty[0])
	}
	if log.OffDuty[1].Start != 10 || log.OffDuty[1].End != 12 {
		t.Errorf("middle gap fill = %+v, want [10,12]", log.OffDuty[1])
	}
	if log.OffDuty[2].Start != 14 || log.OffDuty[2].End != 24 {
		t.Errorf("trailing gap fill = %+v, want [14,24]", log.OffDuty[2])
	}

	total := log.Totals.OffDuty + log.Totals.Driving + log.Totals.OnDuty + log.Totals.SleeperBerth
	if total != 24 {
		t.Errorf("day totals sum to %v, want 24", total)
	}
}

func TestProjector_SmallGapWithinToleranceIsNotFilled(t *testing.T) {
	events := []domain.Event{
		{Day: 1, StartH: 0, EndH: 11.95, Status: domain.StatusDriving},
		{Day: 1, StartH: 12, EndH: 24, Status: domain.StatusOnDuty},
	}

	p := NewProjector()
	logs := p.Project(events, 1)

	if len(logs[0].OffDuty) != 0 {
		t.Errorf("gap of 0.05h should be within tolerance, got offDuty=%+v", logs[0].OffDuty)
	}
}

func TestProjector_RoundsIntervalsAndTotals(t *testing.T) {
	events := []domain.Event{
		{Day: 1, StartH: 6, EndH: 6 + 1.0/3.0, Status: domain.StatusDriving},
	}

	p := NewProjector()
	logs := p.Project(events, 1)

	driving := logs[0].Driving
	if len(driving) == 0 {
		t.Fatal("expected at least one driving interval")
	}
	if driving[len(driving)-1].End != round2(6+1.0/3.0) {
		t.Errorf("interval end not rounded to 2dp: %v", driving[len(driving)-1].End)
	}
	if logs[0].Totals.Driving != round1(1.0/3.0) {
		t.Errorf("driving total not rounded to 1dp: %v", logs[0].Totals.Driving)
	}
}
