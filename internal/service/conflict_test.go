package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michel-adelino/schedule/internal/models"
)

var (
	alice = models.Dancer{ID: "dancer-1", Name: "Alice"}
	bob   = models.Dancer{ID: "dancer-2", Name: "Bob"}
	carol = models.Dancer{ID: "dancer-3", Name: "Carol"}
)

func routineWith(id, title string, duration int, dancers ...models.Dancer) models.Routine {
	return models.Routine{ID: id, SongTitle: title, Duration: duration, Dancers: dancers}
}

func sessionAt(id string, routine models.Routine, roomID string, start models.TimeSlot) models.ScheduledRoutine {
	return models.ScheduledRoutine{
		ID:        id,
		RoutineID: routine.ID,
		Routine:   routine,
		RoomID:    roomID,
		StartTime: start,
		EndTime:   start.AddMinutes(routine.Duration),
		Duration:  routine.Duration,
	}
}

func TestFindConflictsSharedDancerSameSlot(t *testing.T) {
	r1 := routineWith("routine-1", "Thunder", 60, alice, bob)
	r2 := routineWith("routine-2", "Lightning", 60, alice, carol)
	monday14 := models.TimeSlot{Day: models.Monday, Hour: 14}

	s1 := sessionAt("scheduled-1", r1, "room-1", monday14)
	s2 := sessionAt("scheduled-2", r2, "room-2", monday14)
	board := []models.ScheduledRoutine{s1, s2}

	conflicts := FindConflicts(board, s2)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "dancer-1", conflicts[0].DancerID)
	assert.Equal(t, "Alice", conflicts[0].DancerName)
	assert.Equal(t, []string{"Thunder"}, conflicts[0].ConflictingRoutines)
	assert.Equal(t, monday14, conflicts[0].TimeSlot)

	// Symmetric check from the other session's point of view.
	conflicts = FindConflicts(board, s1)
	require.Len(t, conflicts, 1)
	assert.Equal(t, []string{"Lightning"}, conflicts[0].ConflictingRoutines)
}

func TestFindConflictsAdjacentSlotsDoNotOverlap(t *testing.T) {
	r1 := routineWith("routine-1", "Thunder", 60, alice, bob)
	r2 := routineWith("routine-2", "Lightning", 60, alice, carol)

	s1 := sessionAt("scheduled-1", r1, "room-1", models.TimeSlot{Day: models.Monday, Hour: 14})
	s2 := sessionAt("scheduled-2", r2, "room-2", models.TimeSlot{Day: models.Monday, Hour: 15})

	assert.Empty(t, FindConflicts([]models.ScheduledRoutine{s1}, s2))
	assert.False(t, HasConflicts([]models.ScheduledRoutine{s1}, s2))
}

func TestFindConflictsOverlapWithoutSharedDancer(t *testing.T) {
	r1 := routineWith("routine-1", "Thunder", 60, alice)
	r2 := routineWith("routine-2", "Lightning", 60, bob)
	monday14 := models.TimeSlot{Day: models.Monday, Hour: 14}

	s1 := sessionAt("scheduled-1", r1, "room-1", monday14)
	s2 := sessionAt("scheduled-2", r2, "room-2", monday14)

	assert.Empty(t, FindConflicts([]models.ScheduledRoutine{s1}, s2))
}

func TestFindConflictsSharedDancerDifferentDays(t *testing.T) {
	r1 := routineWith("routine-1", "Thunder", 60, alice)
	r2 := routineWith("routine-2", "Lightning", 60, alice)

	s1 := sessionAt("scheduled-1", r1, "room-1", models.TimeSlot{Day: models.Monday, Hour: 14})
	s2 := sessionAt("scheduled-2", r2, "room-2", models.TimeSlot{Day: models.Tuesday, Hour: 14})

	assert.Empty(t, FindConflicts([]models.ScheduledRoutine{s1}, s2))
}

func TestFindConflictsExcludesCandidateByID(t *testing.T) {
	r1 := routineWith("routine-1", "Thunder", 60, alice)
	s1 := sessionAt("scheduled-1", r1, "room-1", models.TimeSlot{Day: models.Monday, Hour: 14})

	conflicts := FindConflicts([]models.ScheduledRoutine{s1}, s1)
	assert.Empty(t, conflicts)
}

func TestFindConflictsFanOutOnePerPair(t *testing.T) {
	// Alice is triple-booked: the candidate must report one record per
	// overlapping session, not a merged one.
	r1 := routineWith("routine-1", "Thunder", 60, alice)
	r2 := routineWith("routine-2", "Lightning", 60, alice)
	r3 := routineWith("routine-3", "Rain", 60, alice)
	monday14 := models.TimeSlot{Day: models.Monday, Hour: 14}

	s1 := sessionAt("scheduled-1", r1, "room-1", monday14)
	s2 := sessionAt("scheduled-2", r2, "room-2", monday14)
	s3 := sessionAt("scheduled-3", r3, "room-3", monday14)
	board := []models.ScheduledRoutine{s1, s2, s3}

	conflicts := FindConflicts(board, s1)
	require.Len(t, conflicts, 2)
	assert.Equal(t, []string{"Lightning"}, conflicts[0].ConflictingRoutines)
	assert.Equal(t, []string{"Rain"}, conflicts[1].ConflictingRoutines)
	for _, conflict := range conflicts {
		assert.Equal(t, "dancer-1", conflict.DancerID)
	}
}

func TestFindConflictsRepresentativeDancerIsFirstShared(t *testing.T) {
	// Bob precedes Carol in the candidate cast; both are shared.
	candidate := routineWith("routine-1", "Thunder", 60, bob, carol)
	existing := routineWith("routine-2", "Lightning", 60, carol, bob)
	monday14 := models.TimeSlot{Day: models.Monday, Hour: 14}

	s1 := sessionAt("scheduled-1", existing, "room-1", monday14)
	s2 := sessionAt("scheduled-2", candidate, "room-2", monday14)

	conflicts := FindConflicts([]models.ScheduledRoutine{s1}, s2)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "Bob", conflicts[0].DancerName)
}

func TestFindConflictsOrderFollowsInput(t *testing.T) {
	r1 := routineWith("routine-1", "Thunder", 120, alice)
	r2 := routineWith("routine-2", "Lightning", 60, alice)
	r3 := routineWith("routine-3", "Rain", 60, alice)

	s2 := sessionAt("scheduled-2", r2, "room-2", models.TimeSlot{Day: models.Monday, Hour: 14})
	s3 := sessionAt("scheduled-3", r3, "room-3", models.TimeSlot{Day: models.Monday, Hour: 15})
	candidate := sessionAt("scheduled-1", r1, "room-1", models.TimeSlot{Day: models.Monday, Hour: 14})

	conflicts := FindConflicts([]models.ScheduledRoutine{s3, s2}, candidate)
	require.Len(t, conflicts, 2)
	assert.Equal(t, []string{"Rain"}, conflicts[0].ConflictingRoutines)
	assert.Equal(t, []string{"Lightning"}, conflicts[1].ConflictingRoutines)
}

func TestFindConflictsDoesNotMutateInputs(t *testing.T) {
	r1 := routineWith("routine-1", "Thunder", 60, alice, bob)
	r2 := routineWith("routine-2", "Lightning", 60, alice)
	monday14 := models.TimeSlot{Day: models.Monday, Hour: 14}

	s1 := sessionAt("scheduled-1", r1, "room-1", monday14)
	s2 := sessionAt("scheduled-2", r2, "room-2", monday14)
	board := []models.ScheduledRoutine{s1}

	before := board[0]
	_ = FindConflicts(board, s2)
	assert.Equal(t, before, board[0])
}

func TestConflictingDancers(t *testing.T) {
	r1 := routineWith("routine-1", "Thunder", 60, alice)
	r2 := routineWith("routine-2", "Lightning", 60, alice, bob)
	monday14 := models.TimeSlot{Day: models.Monday, Hour: 14}

	s1 := sessionAt("scheduled-1", r1, "room-1", monday14)
	s2 := sessionAt("scheduled-2", r2, "room-2", monday14)

	names := ConflictingDancers([]models.ScheduledRoutine{s1}, s2)
	assert.Equal(t, []string{"Alice"}, names)
}
