// Package service wires validation, scheduling, and event publishing into
// the single operation this application exposes: planning an HOS-compliant
// trip.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/draymaster/services/hos-trip-planner/internal/apperrors"
	"github.com/draymaster/services/hos-trip-planner/internal/domain"
	"github.com/draymaster/services/hos-trip-planner/internal/events"
	"github.com/draymaster/services/hos-trip-planner/internal/hos"
	"github.com/draymaster/services/hos-trip-planner/internal/logger"
	"github.com/draymaster/services/hos-trip-planner/internal/routing"
	"github.com/draymaster/services/hos-trip-planner/internal/validation"
)

// EventProducer is the subset of events.Producer the service depends on,
// kept as an interface so tests can substitute a recording fake.
type EventProducer interface {
	Publish(ctx context.Context, topic string, event *events.Event) error
}

// TripService validates a plan request, runs the scheduling pipeline, and
// fire-and-forget publishes a completion event.
type TripService struct {
	validator     *validation.PlanRequestValidator
	assembler     *hos.Assembler
	eventProducer EventProducer
	logger        *logger.Logger
}

// NewTripService wires a TripService from its collaborators.
func NewTripService(estimator routing.Estimator, eventProducer EventProducer, log *logger.Logger) *TripService {
	return &TripService{
		validator:     validation.NewPlanRequestValidator(),
		assembler:     hos.NewAssembler(estimator),
		eventProducer: eventProducer,
		logger:        log,
	}
}

// PlanTrip validates the input and, if valid, computes a full TripResult.
// A non-nil fieldErrors return means the request itself was rejected; it is
// mutually exclusive with a non-nil result. err is reserved for failures in
// the computation itself, which the caller renders as a 500 — mirroring the
// broad exception guard the reference engine's own HTTP view wraps its
// computation in.
func (s *TripService) PlanTrip(ctx context.Context, input validation.PlanRequestInput) (result *domain.TripResult, fieldErrors map[string]string, err error) {
	if errs := s.validator.Validate(input); errs != nil {
		return nil, errs, nil
	}

	req := domain.PlanRequest{
		Current:        domain.Location{Label: input.Current.Label, Lat: input.Current.Lat, Lng: input.Current.Lng},
		Pickup:         domain.Location{Label: input.Pickup.Label, Lat: input.Pickup.Lat, Lng: input.Pickup.Lng},
		Dropoff:        domain.Location{Label: input.Dropoff.Label, Lat: input.Dropoff.Lat, Lng: input.Dropoff.Lng},
		CycleHoursUsed: input.CycleHoursUsed,
	}

	trip, computeErr := s.assemble(req)
	if computeErr != nil {
		s.logger.WithError(computeErr).Errorw("Trip computation failed")
		return nil, nil, computeErr
	}

	s.logger.Infow("Trip planned",
		"trip_id", trip.ID,
		"total_miles", trip.TotalMiles,
		"total_days", trip.TotalDays,
		"cycle_warning", trip.Warning != nil,
	)

	event := events.NewEvent(events.TripPlanned, "hos-trip-planner", trip)
	_ = s.eventProducer.Publish(ctx, events.TripPlanned, event)

	return trip, nil, nil
}

// assemble runs the scheduling pipeline, recovering any panic from it into
// a structured AppError rather than letting it crash the handler.
func (s *TripService) assemble(req domain.PlanRequest) (trip *domain.TripResult, err *apperrors.AppError) {
	defer func() {
		if r := recover(); r != nil {
			err = apperrors.InternalError("trip computation failed", fmt.Errorf("%v", r))
		}
	}()

	id := uuid.New().String()
	result := s.assembler.Assemble(id, req)
	return &result, nil
}
