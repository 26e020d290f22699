package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/michel-adelino/schedule/internal/models"
	"github.com/michel-adelino/schedule/internal/repository"
	"github.com/michel-adelino/schedule/pkg/config"
	appErrors "github.com/michel-adelino/schedule/pkg/errors"
)

type roomRepository interface {
	List(ctx context.Context) ([]models.Room, error)
	FindByID(ctx context.Context, id string) (*models.Room, error)
	SetVisibleCount(ctx context.Context, n int) ([]models.Room, error)
}

// SetVisibleRoomsRequest changes how many studios are active drop targets.
type SetVisibleRoomsRequest struct {
	VisibleCount int `json:"visible_count" validate:"required,min=1"`
}

// GridInfo describes the board geometry for grid rendering.
type GridInfo struct {
	StartHour    int `json:"start_hour"`
	EndHour      int `json:"end_hour"`
	SlotMinutes  int `json:"slot_minutes"`
	VisibleRooms int `json:"visible_rooms"`
}

// RoomService manages studio rooms and the board geometry. Room
// visibility is a display concern only; conflict detection always spans
// every room.
type RoomService struct {
	repo      roomRepository
	grid      config.GridConfig
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRoomService instantiates RoomService.
func NewRoomService(repo roomRepository, grid config.GridConfig, validate *validator.Validate, logger *zap.Logger) *RoomService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoomService{repo: repo, grid: grid, validator: validate, logger: logger}
}

// List returns all rooms in display order.
func (s *RoomService) List(ctx context.Context) ([]models.Room, error) {
	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list rooms")
	}
	return rooms, nil
}

// Get returns one room.
func (s *RoomService) Get(ctx context.Context, id string) (*models.Room, error) {
	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "room not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load room")
	}
	return room, nil
}

// SetVisible activates the first n rooms and deactivates the rest.
func (s *RoomService) SetVisible(ctx context.Context, req SetVisibleRoomsRequest) ([]models.Room, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid room config payload")
	}

	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list rooms")
	}
	if req.VisibleCount > len(rooms) {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("visible_count exceeds room count %d", len(rooms)))
	}

	updated, err := s.repo.SetVisibleCount(ctx, req.VisibleCount)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update rooms")
	}

	s.logger.Info("visible rooms updated", zap.Int("visible_count", req.VisibleCount))
	return updated, nil
}

// Grid returns the configured board geometry plus the current number of
// active rooms.
func (s *RoomService) Grid(ctx context.Context) (*GridInfo, error) {
	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list rooms")
	}
	visible := 0
	for _, room := range rooms {
		if room.IsActive {
			visible++
		}
	}
	return &GridInfo{
		StartHour:    s.grid.StartHour,
		EndHour:      s.grid.EndHour,
		SlotMinutes:  s.grid.SlotMinutes,
		VisibleRooms: visible,
	}, nil
}
