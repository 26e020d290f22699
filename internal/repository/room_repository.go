package repository

import (
	"context"
	"fmt"

	"github.com/michel-adelino/schedule/internal/models"
)

// RoomRepository holds the studio rooms and their active flags.
type RoomRepository struct {
	store *Store
}

// NewRoomRepository creates a room repository over the shared store.
func NewRoomRepository(store *Store) *RoomRepository {
	return &RoomRepository{store: store}
}

// InitRooms populates the room list from configuration: count studios with
// the first visible ones active. No-op when rooms already exist.
func (r *RoomRepository) InitRooms(ctx context.Context, count, visible int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if len(r.store.rooms) > 0 {
		return nil
	}
	for i := 0; i < count; i++ {
		r.store.rooms = append(r.store.rooms, models.Room{
			ID:       fmt.Sprintf("room-%d", i+1),
			Name:     fmt.Sprintf("Studio %d", i+1),
			IsActive: i < visible,
		})
	}
	return nil
}

// List returns all rooms in display order.
func (r *RoomRepository) List(ctx context.Context) ([]models.Room, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]models.Room, len(r.store.rooms))
	copy(out, r.store.rooms)
	return out, nil
}

// FindByID returns the room or ErrNotFound.
func (r *RoomRepository) FindByID(ctx context.Context, id string) (*models.Room, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, room := range r.store.rooms {
		if room.ID == id {
			rm := room
			return &rm, nil
		}
	}
	return nil, ErrNotFound
}

// SetVisibleCount activates the first n rooms and deactivates the rest.
func (r *RoomRepository) SetVisibleCount(ctx context.Context, n int) ([]models.Room, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.rooms {
		r.store.rooms[i].IsActive = i < n
	}
	out := make([]models.Room, len(r.store.rooms))
	copy(out, r.store.rooms)
	return out, nil
}
