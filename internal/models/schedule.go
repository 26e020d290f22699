package models

// ScheduledRoutine is one placement of a routine into a room/time slot.
// Routine is a snapshot taken at placement time; later catalog edits do not
// flow back into already-placed sessions.
type ScheduledRoutine struct {
	ID        string   `json:"id"`
	RoutineID string   `json:"routine_id"`
	Routine   Routine  `json:"routine"`
	RoomID    string   `json:"room_id"`
	StartTime TimeSlot `json:"start_time"`
	EndTime   TimeSlot `json:"end_time"`
	Duration  int      `json:"duration"`
}

// Room is a bookable studio space. Only active rooms are drop targets in
// the grid, but conflict detection spans every room.
type Room struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
	Capacity int    `json:"capacity,omitempty"`
}

// Conflict is a detected double-booking: one dancer shared between two
// time-overlapping sessions. Conflicts are recomputed on demand from the
// current session set and are never stored.
type Conflict struct {
	DancerID            string   `json:"dancer_id"`
	DancerName          string   `json:"dancer_name"`
	ConflictingRoutines []string `json:"conflicting_routines"`
	TimeSlot            TimeSlot `json:"time_slot"`
}

// SessionFilter describes query params for listing sessions.
type SessionFilter struct {
	Day      *int
	RoomID   string
	DancerID string
}
