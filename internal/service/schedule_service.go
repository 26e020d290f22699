package service

import (
	"context"
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/michel-adelino/schedule/internal/models"
	"github.com/michel-adelino/schedule/internal/repository"
	appErrors "github.com/michel-adelino/schedule/pkg/errors"
)

const minutesPerDay = 24 * 60

type sessionRepository interface {
	List(ctx context.Context, filter models.SessionFilter) ([]models.ScheduledRoutine, error)
	Snapshot(ctx context.Context) ([]models.ScheduledRoutine, error)
	FindByID(ctx context.Context, id string) (*models.ScheduledRoutine, error)
	Create(ctx context.Context, session *models.ScheduledRoutine) error
	Replace(ctx context.Context, session *models.ScheduledRoutine) error
	Delete(ctx context.Context, id string) (*models.ScheduledRoutine, error)
}

type routineFinder interface {
	FindByID(ctx context.Context, id string) (*models.Routine, error)
}

type roomFinder interface {
	FindByID(ctx context.Context, id string) (*models.Room, error)
}

// PlaceSessionRequest describes a drop of a catalog routine onto the grid.
type PlaceSessionRequest struct {
	RoutineID string `json:"routine_id" validate:"required"`
	RoomID    string `json:"room_id" validate:"required"`
	Day       int    `json:"day" validate:"min=0,max=6"`
	Hour      int    `json:"hour" validate:"min=0,max=23"`
	Minute    int    `json:"minute" validate:"min=0,max=59"`
}

// MoveSessionRequest relocates an existing session to a new room/slot.
type MoveSessionRequest struct {
	RoomID string `json:"room_id" validate:"required"`
	Day    int    `json:"day" validate:"min=0,max=6"`
	Hour   int    `json:"hour" validate:"min=0,max=23"`
	Minute int    `json:"minute" validate:"min=0,max=59"`
}

// CheckPlacementRequest asks what a placement would collide with, without
// mutating the board. SessionID, when set, excludes that session from the
// comparison set so an existing block can probe its own destination.
type CheckPlacementRequest struct {
	SessionID string `json:"session_id"`
	PlaceSessionRequest
}

// PlacementResult carries the applied (or hypothetical) session together
// with its advisory conflict list.
type PlacementResult struct {
	Session   models.ScheduledRoutine `json:"session"`
	Conflicts []models.Conflict       `json:"conflicts"`
}

// ScheduleService is the schedule store: the only mutation surface over
// the session collection. Every placement is routed through the conflict
// engine, and conflicts never block — they are returned for display.
// Mutations are serialized by a single-writer mutex so the conflict check
// always sees the pre-mutation snapshot it is about to modify.
type ScheduleService struct {
	mu sync.Mutex

	sessions sessionRepository
	routines routineFinder
	rooms    roomFinder

	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewScheduleService instantiates ScheduleService.
func NewScheduleService(sessions sessionRepository, routines routineFinder, rooms roomFinder, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{
		sessions:  sessions,
		routines:  routines,
		rooms:     rooms,
		validator: validate,
		metrics:   metrics,
		logger:    logger,
	}
}

// List returns sessions matching the filter in placement order.
func (s *ScheduleService) List(ctx context.Context, filter models.SessionFilter) ([]models.ScheduledRoutine, error) {
	sessions, err := s.sessions.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list sessions")
	}
	return sessions, nil
}

// Place adds a routine to the board. The session is appended regardless of
// conflicts; the returned conflict list is advisory.
func (s *ScheduleService) Place(ctx context.Context, req PlaceSessionRequest) (*PlacementResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid placement payload")
	}

	routine, err := s.routines.FindByID(ctx, req.RoutineID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "routine not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load routine")
	}
	if routine.Duration <= 0 {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "routine duration must be positive")
	}
	if _, err := s.rooms.FindByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "room not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load room")
	}

	start := models.TimeSlot{Day: req.Day, Hour: req.Hour, Minute: req.Minute}
	if err := s.checkDayBoundary(start, routine.Duration); err != nil {
		return nil, err
	}

	session := models.ScheduledRoutine{
		ID:        uuid.NewString(),
		RoutineID: routine.ID,
		Routine:   *routine,
		RoomID:    req.RoomID,
		StartTime: start,
		EndTime:   start.AddMinutes(routine.Duration),
		Duration:  routine.Duration,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	board, err := s.sessions.Snapshot(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read schedule")
	}
	conflicts := FindConflicts(board, session)

	if err := s.sessions.Create(ctx, &session); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to place session")
	}

	s.metrics.ObserveScheduleMutation("place", len(conflicts))
	s.logger.Info("session placed",
		zap.String("session_id", session.ID),
		zap.String("routine_id", session.RoutineID),
		zap.String("room_id", session.RoomID),
		zap.Int("conflicts", len(conflicts)),
	)

	return &PlacementResult{Session: session, Conflicts: conflicts}, nil
}

// Move relocates an existing session. Duration and identity are kept, the
// scheduled-hours rollup is untouched, and the move is applied even when
// the destination conflicts.
func (s *ScheduleService) Move(ctx context.Context, id string, req MoveSessionRequest) (*PlacementResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid move payload")
	}

	existing, err := s.sessions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "session not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load session")
	}
	if _, err := s.rooms.FindByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "room not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load room")
	}

	start := models.TimeSlot{Day: req.Day, Hour: req.Hour, Minute: req.Minute}
	if err := s.checkDayBoundary(start, existing.Duration); err != nil {
		return nil, err
	}

	updated := *existing
	updated.RoomID = req.RoomID
	updated.StartTime = start
	updated.EndTime = start.AddMinutes(existing.Duration)

	s.mu.Lock()
	defer s.mu.Unlock()

	board, err := s.sessions.Snapshot(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read schedule")
	}
	// The candidate keeps its ID, so the engine skips the original record.
	conflicts := FindConflicts(board, updated)

	if err := s.sessions.Replace(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "session not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to move session")
	}

	s.metrics.ObserveScheduleMutation("move", len(conflicts))
	s.logger.Info("session moved",
		zap.String("session_id", updated.ID),
		zap.String("room_id", updated.RoomID),
		zap.Int("conflicts", len(conflicts)),
	)

	return &PlacementResult{Session: updated, Conflicts: conflicts}, nil
}

// Remove deletes a session; the repository debits the rollup atomically.
func (s *ScheduleService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.sessions.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "session not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete session")
	}

	s.metrics.ObserveScheduleMutation("delete", 0)
	s.logger.Info("session deleted",
		zap.String("session_id", removed.ID),
		zap.String("routine_id", removed.RoutineID),
	)
	return nil
}

// Check evaluates a hypothetical placement without touching the board.
func (s *ScheduleService) Check(ctx context.Context, req CheckPlacementRequest) (*PlacementResult, error) {
	if err := s.validator.Struct(req.PlaceSessionRequest); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid placement payload")
	}

	routine, err := s.routines.FindByID(ctx, req.RoutineID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "routine not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load routine")
	}

	start := models.TimeSlot{Day: req.Day, Hour: req.Hour, Minute: req.Minute}
	if err := s.checkDayBoundary(start, routine.Duration); err != nil {
		return nil, err
	}

	candidate := models.ScheduledRoutine{
		ID:        req.SessionID,
		RoutineID: routine.ID,
		Routine:   *routine,
		RoomID:    req.RoomID,
		StartTime: start,
		EndTime:   start.AddMinutes(routine.Duration),
		Duration:  routine.Duration,
	}

	board, err := s.sessions.Snapshot(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read schedule")
	}

	return &PlacementResult{Session: candidate, Conflicts: FindConflicts(board, candidate)}, nil
}

// BoardConflicts evaluates every session against the rest of the board and
// concatenates the results in board order. Pair fan-out is preserved, so a
// double-booking shows up once from each side; the sidebar counts rely on
// that.
func (s *ScheduleService) BoardConflicts(ctx context.Context) ([]models.Conflict, error) {
	board, err := s.sessions.Snapshot(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read schedule")
	}

	var conflicts []models.Conflict
	for _, session := range board {
		conflicts = append(conflicts, FindConflicts(board, session)...)
	}
	return conflicts, nil
}

// checkDayBoundary rejects placements that would run past midnight.
// AddMinutes deliberately never rolls Hour into the next day, so the store
// refuses to create a session whose end the grid cannot represent.
func (s *ScheduleService) checkDayBoundary(start models.TimeSlot, duration int) error {
	if start.MinutesOfDay()+duration > minutesPerDay {
		return appErrors.Clone(appErrors.ErrValidation, "session would run past midnight")
	}
	return nil
}
