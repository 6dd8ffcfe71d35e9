// Package domain holds the data model for an HOS-compliant trip plan:
// locations, routes, stops, duty-status events, and the assembled result.
package domain

// FMCSA property-carrying driver limits.
const (
	MaxDrivingHours  = 11.0
	MaxDutyWindow    = 14.0
	BreakAfterHours  = 8.0
	BreakDuration    = 0.5
	RestDuration     = 10.0
	MaxCycleHours    = 70.0
	FuelIntervalMi   = 1000.0
	FuelDuration     = 0.5
	PickupDuration   = 1.0
	DropoffDuration  = 1.0
	AvgSpeedMPH      = 55.0
	DayStartHour     = 6.0
)

// DutyStatus is one of the four FMCSA duty statuses; every minute of every
// day falls into exactly one.
type DutyStatus string

const (
	StatusOffDuty      DutyStatus = "offDuty"
	StatusSleeperBerth DutyStatus = "sleeperBerth"
	StatusDriving      DutyStatus = "driving"
	StatusOnDuty       DutyStatus = "onDuty"
)

// StopType names a human-meaningful point on the plan.
type StopType string

const (
	StopStart   StopType = "start"
	StopPickup  StopType = "pickup"
	StopDropoff StopType = "dropoff"
	StopEnd     StopType = "end"
	StopRest    StopType = "rest"
	StopBreak   StopType = "break"
	StopFuel    StopType = "fuel"
)

// Location is a named point on the map.
type Location struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// PlanRequest is the validated input to a trip computation.
type PlanRequest struct {
	Current        Location
	Pickup         Location
	Dropoff        Location
	CycleHoursUsed float64
}

// Leg is a straight segment of the route between two named locations.
type Leg struct {
	From       Location
	To         Location
	DistanceMi float64
	DurationH  float64
}

// Route is the output of the distance estimator collaborator.
type Route struct {
	Legs               [2]Leg
	TotalDistanceMi    float64
	TotalDrivingTimeH  float64
	Waypoints          []Location
}

// Stop is a point on the assembled plan.
type Stop struct {
	Type            StopType `json:"type"`
	Label           string   `json:"label"`
	Time            string   `json:"time"`
	DurationH       float64  `json:"duration_h"`
	Lat             float64  `json:"lat"`
	Lng             float64  `json:"lng"`
	MileageRounded  int      `json:"mileage_rounded"`
	Day             int      `json:"day"`
}

// Event is an internal duty-status interval used only to project daily logs.
// Invariant: 0 <= StartH < EndH <= 24, within a single day.
type Event struct {
	Day    int
	StartH float64
	EndH   float64
	Status DutyStatus
}

// Interval is a rounded {start,end} pair within a DayLog strip.
type Interval struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// DayLog groups a day's events into the four status strips plus totals.
type DayLog struct {
	OffDuty      []Interval `json:"offDuty"`
	SleeperBerth []Interval `json:"sleeperBerth"`
	Driving      []Interval `json:"driving"`
	OnDuty       []Interval `json:"onDuty"`
	Totals       Totals     `json:"totals"`
}

// Totals carries the per-status hour sums for a single DayLog.
type Totals struct {
	OffDuty      float64 `json:"offDuty"`
	SleeperBerth float64 `json:"sleeperBerth"`
	Driving      float64 `json:"driving"`
	OnDuty       float64 `json:"onDuty"`
}

// Day bundles one calendar day's stops and duty log.
type Day struct {
	Day   int    `json:"day"`
	Date  string `json:"date"`
	Stops []Stop `json:"stops"`
	Log   DayLog `json:"log"`
}

// Warning is the soft 70-hour-cycle-overrun condition attached to a
// TripResult; it is never a computation fault.
type Warning struct {
	Type           string  `json:"type"`
	Message        string  `json:"message"`
	ExcessHours    float64 `json:"excessHours"`
	Recommendation string  `json:"recommendation"`
}

// RouteInfo is the portion of the estimator's route carried into the
// response — the waypoint list, for display on a map.
type RouteInfo struct {
	Waypoints []Location `json:"waypoints"`
}

// TripResult is the complete output of a trip computation.
type TripResult struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Origin            Location  `json:"origin"`
	Pickup            Location  `json:"pickup"`
	Dropoff           Location  `json:"dropoff"`
	CycleHoursUsed    float64   `json:"cycleHoursUsed"`
	CycleHoursActual  float64   `json:"cycleHoursActual"`
	TotalMiles        int       `json:"totalMiles"`
	TotalDays         int       `json:"totalDays"`
	TotalDrivingHours float64   `json:"totalDrivingHours"`
	TotalOnDutyHours  float64   `json:"totalOnDutyHours"`
	Days              []Day     `json:"days"`
	Route             RouteInfo `json:"route"`
	Warning           *Warning  `json:"warning,omitempty"`
}
