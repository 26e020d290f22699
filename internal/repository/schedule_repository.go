package repository

import (
	"context"

	"github.com/michel-adelino/schedule/internal/models"
)

// ScheduleRepository owns the session collection and keeps the
// scheduled-hours rollup on parent routines consistent with it. Rollup
// adjustments happen under the same lock as the collection change, so a
// reader can never observe one without the other.
type ScheduleRepository struct {
	store *Store
}

// NewScheduleRepository creates a schedule repository over the shared store.
func NewScheduleRepository(store *Store) *ScheduleRepository {
	return &ScheduleRepository{store: store}
}

// List returns sessions in placement order, optionally filtered.
func (r *ScheduleRepository) List(ctx context.Context, filter models.SessionFilter) ([]models.ScheduledRoutine, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []models.ScheduledRoutine
	for _, session := range r.store.sessions {
		if filter.Day != nil && session.StartTime.Day != *filter.Day {
			continue
		}
		if filter.RoomID != "" && session.RoomID != filter.RoomID {
			continue
		}
		if filter.DancerID != "" && !session.Routine.HasDancer(filter.DancerID) {
			continue
		}
		out = append(out, cloneSession(session))
	}
	return out, nil
}

// Snapshot returns a copy of the full session collection in placement
// order. Conflict computation runs against snapshots only.
func (r *ScheduleRepository) Snapshot(ctx context.Context) ([]models.ScheduledRoutine, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return cloneSessions(r.store.sessions), nil
}

// FindByID returns a copy of the session or ErrNotFound.
func (r *ScheduleRepository) FindByID(ctx context.Context, id string) (*models.ScheduledRoutine, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, session := range r.store.sessions {
		if session.ID == id {
			clone := cloneSession(session)
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

// Create appends a session and credits duration/60 hours to the parent
// routine's rollup in the same step.
func (r *ScheduleRepository) Create(ctx context.Context, session *models.ScheduledRoutine) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.sessions = append(r.store.sessions, cloneSession(*session))
	if routine, ok := r.store.routines[session.RoutineID]; ok {
		routine.ScheduledHours += float64(session.Duration) / 60
	}
	return nil
}

// Replace swaps the stored session carrying the same ID. Duration is
// unchanged on a move, so the rollup is not touched.
func (r *ScheduleRepository) Replace(ctx context.Context, session *models.ScheduledRoutine) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.sessions {
		if r.store.sessions[i].ID == session.ID {
			r.store.sessions[i] = cloneSession(*session)
			return nil
		}
	}
	return ErrNotFound
}

// Delete removes a session and debits its hours from the parent routine's
// rollup, clamped at zero. Returns the removed session.
func (r *ScheduleRepository) Delete(ctx context.Context, id string) (*models.ScheduledRoutine, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, session := range r.store.sessions {
		if session.ID != id {
			continue
		}
		removed := cloneSession(session)
		r.store.sessions = append(r.store.sessions[:i], r.store.sessions[i+1:]...)
		if routine, ok := r.store.routines[session.RoutineID]; ok {
			routine.ScheduledHours -= float64(session.Duration) / 60
			if routine.ScheduledHours < 0 {
				routine.ScheduledHours = 0
			}
		}
		return &removed, nil
	}
	return nil, ErrNotFound
}
