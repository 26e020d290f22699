package repository

import (
	"context"
	"strings"

	"github.com/michel-adelino/schedule/internal/models"
)

// DancerRepository holds the dancer roster.
type DancerRepository struct {
	store *Store
}

// NewDancerRepository creates a dancer repository over the shared store.
func NewDancerRepository(store *Store) *DancerRepository {
	return &DancerRepository{store: store}
}

// List returns dancers in insertion order, optionally filtered by a name
// substring and level.
func (r *DancerRepository) List(ctx context.Context, query, level string) ([]models.Dancer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	query = strings.ToLower(query)
	var out []models.Dancer
	for _, id := range r.store.dancerOrder {
		dancer := r.store.dancers[id]
		if level != "" && dancer.Level != level {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(dancer.Name), query) {
			continue
		}
		out = append(out, dancer)
	}
	return out, nil
}

// FindByID returns the dancer or ErrNotFound.
func (r *DancerRepository) FindByID(ctx context.Context, id string) (*models.Dancer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	dancer, ok := r.store.dancers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &dancer, nil
}

// Create inserts a roster entry.
func (r *DancerRepository) Create(ctx context.Context, dancer *models.Dancer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.dancers[dancer.ID]; !ok {
		r.store.dancerOrder = append(r.store.dancerOrder, dancer.ID)
	}
	r.store.dancers[dancer.ID] = *dancer
	return nil
}
