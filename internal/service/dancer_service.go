package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/michel-adelino/schedule/internal/models"
	"github.com/michel-adelino/schedule/internal/repository"
	appErrors "github.com/michel-adelino/schedule/pkg/errors"
)

type dancerRepository interface {
	List(ctx context.Context, query, level string) ([]models.Dancer, error)
	FindByID(ctx context.Context, id string) (*models.Dancer, error)
	Create(ctx context.Context, dancer *models.Dancer) error
}

type sessionLister interface {
	List(ctx context.Context, filter models.SessionFilter) ([]models.ScheduledRoutine, error)
}

type roomLister interface {
	List(ctx context.Context) ([]models.Room, error)
}

// CreateDancerRequest describes a roster addition.
type CreateDancerRequest struct {
	Name   string   `json:"name" validate:"required"`
	Email  string   `json:"email" validate:"omitempty,email"`
	Phone  string   `json:"phone"`
	Level  string   `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Genres []string `json:"genres"`
}

// DancerService serves the roster and the per-dancer schedule read API.
type DancerService struct {
	repo      dancerRepository
	sessions  sessionLister
	rooms     roomLister
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDancerService instantiates DancerService.
func NewDancerService(repo dancerRepository, sessions sessionLister, rooms roomLister, validate *validator.Validate, logger *zap.Logger) *DancerService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DancerService{repo: repo, sessions: sessions, rooms: rooms, validator: validate, logger: logger}
}

// List returns roster entries, optionally filtered.
func (s *DancerService) List(ctx context.Context, query, level string) ([]models.Dancer, error) {
	dancers, err := s.repo.List(ctx, query, level)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list dancers")
	}
	return dancers, nil
}

// Get returns one dancer.
func (s *DancerService) Get(ctx context.Context, id string) (*models.Dancer, error) {
	dancer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "dancer not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load dancer")
	}
	return dancer, nil
}

// Create adds a dancer to the roster.
func (s *DancerService) Create(ctx context.Context, req CreateDancerRequest) (*models.Dancer, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid dancer payload")
	}

	dancer := models.Dancer{
		ID:     uuid.NewString(),
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Level:  req.Level,
		Genres: req.Genres,
	}
	if err := s.repo.Create(ctx, &dancer); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create dancer")
	}

	s.logger.Info("dancer created", zap.String("dancer_id", dancer.ID))
	return &dancer, nil
}

// Schedule enumerates every session the dancer appears in, in board order.
// This is the read API the sidebar and exports are built on.
func (s *DancerService) Schedule(ctx context.Context, dancerID string) (*models.DancerSchedule, error) {
	dancer, err := s.Get(ctx, dancerID)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessions.List(ctx, models.SessionFilter{DancerID: dancerID})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list sessions")
	}

	roomNames, err := s.roomNames(ctx)
	if err != nil {
		return nil, err
	}

	schedule := &models.DancerSchedule{
		DancerID:   dancer.ID,
		DancerName: dancer.Name,
		Routines:   make([]models.DancerScheduleEntry, 0, len(sessions)),
	}
	for _, session := range sessions {
		schedule.Routines = append(schedule.Routines, models.DancerScheduleEntry{
			RoutineID: session.RoutineID,
			SongTitle: session.Routine.SongTitle,
			RoomName:  roomNames[session.RoomID],
			Day:       models.DayNames[session.StartTime.Day],
			StartTime: session.StartTime.Clock(),
			EndTime:   session.EndTime.Clock(),
		})
	}
	return schedule, nil
}

func (s *DancerService) roomNames(ctx context.Context) (map[string]string, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list rooms")
	}
	names := make(map[string]string, len(rooms))
	for _, room := range rooms {
		names[room.ID] = room.Name
	}
	return names, nil
}
