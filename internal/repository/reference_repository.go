package repository

import (
	"context"

	"github.com/michel-adelino/schedule/internal/models"
)

// ReferenceRepository serves the small teacher and genre catalogs.
type ReferenceRepository struct {
	store *Store
}

// NewReferenceRepository creates a reference repository over the shared store.
func NewReferenceRepository(store *Store) *ReferenceRepository {
	return &ReferenceRepository{store: store}
}

// ListTeachers returns all teachers.
func (r *ReferenceRepository) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]models.Teacher, len(r.store.teachers))
	copy(out, r.store.teachers)
	return out, nil
}

// ListGenres returns all genres.
func (r *ReferenceRepository) ListGenres(ctx context.Context) ([]models.Genre, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]models.Genre, len(r.store.genres))
	copy(out, r.store.genres)
	return out, nil
}

// FindTeacher returns the teacher or ErrNotFound.
func (r *ReferenceRepository) FindTeacher(ctx context.Context, id string) (*models.Teacher, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, teacher := range r.store.teachers {
		if teacher.ID == id {
			t := teacher
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

// FindGenre returns the genre or ErrNotFound.
func (r *ReferenceRepository) FindGenre(ctx context.Context, id string) (*models.Genre, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, genre := range r.store.genres {
		if genre.ID == id {
			g := genre
			return &g, nil
		}
	}
	return nil, ErrNotFound
}

// AddTeacher appends a teacher to the catalog.
func (r *ReferenceRepository) AddTeacher(ctx context.Context, teacher models.Teacher) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.teachers = append(r.store.teachers, teacher)
	return nil
}

// AddGenre appends a genre to the catalog.
func (r *ReferenceRepository) AddGenre(ctx context.Context, genre models.Genre) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.genres = append(r.store.genres, genre)
	return nil
}
