package models

// Dancer levels accepted by the roster.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Dancer is a studio member assignable to routines. Identity is the ID;
// two records with the same ID are the same person regardless of the other
// fields.
type Dancer struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email,omitempty"`
	Phone  string   `json:"phone,omitempty"`
	Level  string   `json:"level,omitempty"`
	Genres []string `json:"genres,omitempty"`
}

// Teacher is a reference entity attached to routines.
type Teacher struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Genre is a reference entity; its color is inherited by routines for
// calendar display.
type Genre struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// DancerScheduleEntry is one scheduled appearance of a dancer.
type DancerScheduleEntry struct {
	RoutineID string `json:"routine_id"`
	SongTitle string `json:"song_title"`
	RoomName  string `json:"room_name"`
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// DancerSchedule aggregates every session a dancer appears in, in board
// iteration order.
type DancerSchedule struct {
	DancerID   string                `json:"dancer_id"`
	DancerName string                `json:"dancer_name"`
	Routines   []DancerScheduleEntry `json:"routines"`
}
