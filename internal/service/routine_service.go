package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/michel-adelino/schedule/internal/models"
	"github.com/michel-adelino/schedule/internal/repository"
	appErrors "github.com/michel-adelino/schedule/pkg/errors"
)

type routineRepository interface {
	List(ctx context.Context, filter models.RoutineFilter) ([]models.Routine, int, error)
	FindByID(ctx context.Context, id string) (*models.Routine, error)
	Create(ctx context.Context, routine *models.Routine) error
	Update(ctx context.Context, routine *models.Routine) error
	Delete(ctx context.Context, id string) error
}

type dancerFinder interface {
	FindByID(ctx context.Context, id string) (*models.Dancer, error)
}

type referenceRepository interface {
	ListTeachers(ctx context.Context) ([]models.Teacher, error)
	ListGenres(ctx context.Context) ([]models.Genre, error)
	FindTeacher(ctx context.Context, id string) (*models.Teacher, error)
	FindGenre(ctx context.Context, id string) (*models.Genre, error)
}

// CreateRoutineRequest describes a new catalog entry. Dancers are given by
// ID; insertion order is preserved for display.
type CreateRoutineRequest struct {
	SongTitle string   `json:"song_title" validate:"required"`
	DancerIDs []string `json:"dancer_ids" validate:"dive,required"`
	TeacherID string   `json:"teacher_id" validate:"required"`
	GenreID   string   `json:"genre_id" validate:"required"`
	Duration  int      `json:"duration" validate:"gt=0"`
	Notes     string   `json:"notes"`
}

// UpdateRoutineRequest replaces the catalog fields of a routine. Sessions
// already on the board keep the snapshot taken when they were placed.
type UpdateRoutineRequest struct {
	SongTitle string   `json:"song_title" validate:"required"`
	DancerIDs []string `json:"dancer_ids" validate:"dive,required"`
	TeacherID string   `json:"teacher_id" validate:"required"`
	GenreID   string   `json:"genre_id" validate:"required"`
	Duration  int      `json:"duration" validate:"gt=0"`
	Notes     string   `json:"notes"`
}

// RoutineService manages the routine catalog.
type RoutineService struct {
	repo       routineRepository
	dancers    dancerFinder
	references referenceRepository
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewRoutineService instantiates RoutineService.
func NewRoutineService(repo routineRepository, dancers dancerFinder, references referenceRepository, validate *validator.Validate, logger *zap.Logger) *RoutineService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoutineService{repo: repo, dancers: dancers, references: references, validator: validate, logger: logger}
}

// List returns catalog entries with pagination metadata.
func (s *RoutineService) List(ctx context.Context, filter models.RoutineFilter) ([]models.Routine, *models.Pagination, error) {
	routines, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list routines")
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = total
	}
	pagination := &models.Pagination{Page: page, PageSize: size, TotalCount: total}
	return routines, pagination, nil
}

// Get returns one routine.
func (s *RoutineService) Get(ctx context.Context, id string) (*models.Routine, error) {
	routine, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "routine not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load routine")
	}
	return routine, nil
}

// Create inserts a new catalog entry. The routine inherits its display
// color from the genre.
func (s *RoutineService) Create(ctx context.Context, req CreateRoutineRequest) (*models.Routine, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid routine payload")
	}

	cast, teacher, genre, err := s.resolveReferences(ctx, req.DancerIDs, req.TeacherID, req.GenreID)
	if err != nil {
		return nil, err
	}

	routine := models.Routine{
		ID:        uuid.NewString(),
		SongTitle: req.SongTitle,
		Dancers:   cast,
		Teacher:   *teacher,
		Genre:     *genre,
		Duration:  req.Duration,
		Notes:     req.Notes,
		Color:     genre.Color,
	}

	if err := s.repo.Create(ctx, &routine); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create routine")
	}

	s.logger.Info("routine created", zap.String("routine_id", routine.ID), zap.String("song_title", routine.SongTitle))
	return &routine, nil
}

// Update rewrites catalog fields. The scheduled-hours rollup is preserved
// by the repository, and placed sessions are not re-synced.
func (s *RoutineService) Update(ctx context.Context, id string, req UpdateRoutineRequest) (*models.Routine, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid routine payload")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "routine not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load routine")
	}

	cast, teacher, genre, err := s.resolveReferences(ctx, req.DancerIDs, req.TeacherID, req.GenreID)
	if err != nil {
		return nil, err
	}

	updated := models.Routine{
		ID:             existing.ID,
		SongTitle:      req.SongTitle,
		Dancers:        cast,
		Teacher:        *teacher,
		Genre:          *genre,
		Duration:       req.Duration,
		Notes:          req.Notes,
		ScheduledHours: existing.ScheduledHours,
		Color:          genre.Color,
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update routine")
	}
	return &updated, nil
}

// Delete removes a routine and cascades to its placed sessions.
func (s *RoutineService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "routine not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete routine")
	}
	s.logger.Info("routine deleted", zap.String("routine_id", id))
	return nil
}

// Teachers lists the teacher catalog.
func (s *RoutineService) Teachers(ctx context.Context) ([]models.Teacher, error) {
	teachers, err := s.references.ListTeachers(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}
	return teachers, nil
}

// Genres lists the genre catalog.
func (s *RoutineService) Genres(ctx context.Context) ([]models.Genre, error) {
	genres, err := s.references.ListGenres(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list genres")
	}
	return genres, nil
}

func (s *RoutineService) resolveReferences(ctx context.Context, dancerIDs []string, teacherID, genreID string) ([]models.Dancer, *models.Teacher, *models.Genre, error) {
	cast := make([]models.Dancer, 0, len(dancerIDs))
	seen := make(map[string]struct{}, len(dancerIDs))
	for _, dancerID := range dancerIDs {
		if _, dup := seen[dancerID]; dup {
			continue
		}
		seen[dancerID] = struct{}{}
		dancer, err := s.dancers.FindByID(ctx, dancerID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, nil, nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown dancer %q", dancerID))
			}
			return nil, nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load dancer")
		}
		cast = append(cast, *dancer)
	}

	teacher, err := s.references.FindTeacher(ctx, teacherID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown teacher %q", teacherID))
		}
		return nil, nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}

	genre, err := s.references.FindGenre(ctx, genreID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown genre %q", genreID))
		}
		return nil, nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load genre")
	}

	return cast, teacher, genre, nil
}
