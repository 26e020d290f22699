package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michel-adelino/schedule/internal/repository"
	"github.com/michel-adelino/schedule/pkg/config"
	appErrors "github.com/michel-adelino/schedule/pkg/errors"
)

func newRoomFixture(t *testing.T) *RoomService {
	t.Helper()

	store := repository.NewStore()
	rooms := repository.NewRoomRepository(store)
	require.NoError(t, rooms.InitRooms(context.Background(), 4, 2))

	grid := config.GridConfig{StartHour: 9, EndHour: 21, SlotMinutes: 30}
	return NewRoomService(rooms, grid, nil, nil)
}

func TestRoomServiceListInitialVisibility(t *testing.T) {
	svc := newRoomFixture(t)

	rooms, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 4)
	assert.Equal(t, "Studio 1", rooms[0].Name)
	assert.True(t, rooms[0].IsActive)
	assert.True(t, rooms[1].IsActive)
	assert.False(t, rooms[2].IsActive)
	assert.False(t, rooms[3].IsActive)
}

func TestRoomServiceSetVisible(t *testing.T) {
	svc := newRoomFixture(t)
	ctx := context.Background()

	rooms, err := svc.SetVisible(ctx, SetVisibleRoomsRequest{VisibleCount: 3})
	require.NoError(t, err)
	require.Len(t, rooms, 4)
	assert.True(t, rooms[2].IsActive)
	assert.False(t, rooms[3].IsActive)

	// Shrinking works the same way: only the first room stays active.
	rooms, err = svc.SetVisible(ctx, SetVisibleRoomsRequest{VisibleCount: 1})
	require.NoError(t, err)
	assert.True(t, rooms[0].IsActive)
	assert.False(t, rooms[1].IsActive)
}

func TestRoomServiceSetVisibleRejectsOutOfRange(t *testing.T) {
	svc := newRoomFixture(t)
	ctx := context.Background()

	_, err := svc.SetVisible(ctx, SetVisibleRoomsRequest{VisibleCount: 5})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.SetVisible(ctx, SetVisibleRoomsRequest{VisibleCount: 0})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestRoomServiceGrid(t *testing.T) {
	svc := newRoomFixture(t)
	ctx := context.Background()

	grid, err := svc.Grid(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, grid.StartHour)
	assert.Equal(t, 21, grid.EndHour)
	assert.Equal(t, 30, grid.SlotMinutes)
	assert.Equal(t, 2, grid.VisibleRooms)

	_, err = svc.SetVisible(ctx, SetVisibleRoomsRequest{VisibleCount: 4})
	require.NoError(t, err)

	grid, err = svc.Grid(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, grid.VisibleRooms)
}

func TestRoomServiceGetUnknown(t *testing.T) {
	svc := newRoomFixture(t)

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
