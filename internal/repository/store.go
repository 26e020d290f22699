package repository

import (
	"errors"
	"sync"

	"github.com/michel-adelino/schedule/internal/models"
)

// ErrNotFound is returned when a lookup misses the store.
var ErrNotFound = errors.New("repository: not found")

// Store is the single in-memory backbone shared by every repository. One
// RWMutex guards the whole dataset so that a session mutation and its
// scheduled-hours rollup commit together, with no observable intermediate
// state.
type Store struct {
	mu sync.RWMutex

	routines     map[string]*models.Routine
	routineOrder []string

	sessions []models.ScheduledRoutine

	dancers     map[string]models.Dancer
	dancerOrder []string

	teachers []models.Teacher
	genres   []models.Genre
	rooms    []models.Room
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		routines: make(map[string]*models.Routine),
		dancers:  make(map[string]models.Dancer),
	}
}

func cloneRoutine(r models.Routine) models.Routine {
	clone := r
	if r.Dancers != nil {
		clone.Dancers = make([]models.Dancer, len(r.Dancers))
		copy(clone.Dancers, r.Dancers)
	}
	return clone
}

func cloneSession(s models.ScheduledRoutine) models.ScheduledRoutine {
	clone := s
	clone.Routine = cloneRoutine(s.Routine)
	return clone
}

func cloneSessions(sessions []models.ScheduledRoutine) []models.ScheduledRoutine {
	out := make([]models.ScheduledRoutine, len(sessions))
	for i, s := range sessions {
		out[i] = cloneSession(s)
	}
	return out
}
