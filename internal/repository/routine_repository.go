package repository

import (
	"context"
	"strings"

	"github.com/michel-adelino/schedule/internal/models"
)

// RoutineRepository holds the routine catalog.
type RoutineRepository struct {
	store *Store
}

// NewRoutineRepository creates a routine repository over the shared store.
func NewRoutineRepository(store *Store) *RoutineRepository {
	return &RoutineRepository{store: store}
}

// List returns catalog entries in insertion order with optional filtering
// and pagination.
func (r *RoutineRepository) List(ctx context.Context, filter models.RoutineFilter) ([]models.Routine, int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var matched []models.Routine
	query := strings.ToLower(filter.Query)
	for _, id := range r.store.routineOrder {
		routine := r.store.routines[id]
		if filter.TeacherID != "" && routine.Teacher.ID != filter.TeacherID {
			continue
		}
		if filter.GenreID != "" && routine.Genre.ID != filter.GenreID {
			continue
		}
		if query != "" && !routineMatches(routine, query) {
			continue
		}
		matched = append(matched, cloneRoutine(*routine))
	}

	total := len(matched)
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		return matched, total, nil
	}
	start := (page - 1) * size
	if start >= total {
		return nil, total, nil
	}
	end := start + size
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func routineMatches(routine *models.Routine, query string) bool {
	if strings.Contains(strings.ToLower(routine.SongTitle), query) {
		return true
	}
	if strings.Contains(strings.ToLower(routine.Teacher.Name), query) {
		return true
	}
	for _, dancer := range routine.Dancers {
		if strings.Contains(strings.ToLower(dancer.Name), query) {
			return true
		}
	}
	return false
}

// FindByID returns a copy of the routine or ErrNotFound.
func (r *RoutineRepository) FindByID(ctx context.Context, id string) (*models.Routine, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	routine, ok := r.store.routines[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := cloneRoutine(*routine)
	return &clone, nil
}

// Create inserts a new catalog entry.
func (r *RoutineRepository) Create(ctx context.Context, routine *models.Routine) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := cloneRoutine(*routine)
	r.store.routines[routine.ID] = &clone
	r.store.routineOrder = append(r.store.routineOrder, routine.ID)
	return nil
}

// Update replaces catalog fields of an existing routine. The stored
// ScheduledHours rollup is preserved; it belongs to the schedule, not the
// catalog editor.
func (r *RoutineRepository) Update(ctx context.Context, routine *models.Routine) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.routines[routine.ID]
	if !ok {
		return ErrNotFound
	}
	clone := cloneRoutine(*routine)
	clone.ScheduledHours = existing.ScheduledHours
	r.store.routines[routine.ID] = &clone
	return nil
}

// Delete removes a routine and every session placed from it, in one
// atomic step.
func (r *RoutineRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.routines[id]; !ok {
		return ErrNotFound
	}
	delete(r.store.routines, id)
	for i, rid := range r.store.routineOrder {
		if rid == id {
			r.store.routineOrder = append(r.store.routineOrder[:i], r.store.routineOrder[i+1:]...)
			break
		}
	}

	kept := r.store.sessions[:0]
	for _, session := range r.store.sessions {
		if session.RoutineID != id {
			kept = append(kept, session)
		}
	}
	r.store.sessions = kept
	return nil
}
