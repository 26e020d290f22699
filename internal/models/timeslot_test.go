package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddMinutesCarriesIntoHour(t *testing.T) {
	start := TimeSlot{Day: Monday, Hour: 9, Minute: 30}
	end := start.AddMinutes(90)
	assert.Equal(t, TimeSlot{Day: Monday, Hour: 11, Minute: 0}, end)
}

func TestAddMinutesZero(t *testing.T) {
	start := TimeSlot{Day: Friday, Hour: 18, Minute: 45}
	assert.Equal(t, start, start.AddMinutes(0))
}

func TestAddMinutesDoesNotCarryIntoDay(t *testing.T) {
	start := TimeSlot{Day: Saturday, Hour: 23, Minute: 30}
	end := start.AddMinutes(60)
	assert.Equal(t, Saturday, end.Day)
	assert.Equal(t, 24, end.Hour)
	assert.Equal(t, 30, end.Minute)
}

func TestOverlapsHalfOpenAdjacency(t *testing.T) {
	// [14:00, 15:00) and [15:00, 16:00) touch but do not overlap.
	aStart := TimeSlot{Day: Monday, Hour: 14}
	aEnd := TimeSlot{Day: Monday, Hour: 15}
	bStart := TimeSlot{Day: Monday, Hour: 15}
	bEnd := TimeSlot{Day: Monday, Hour: 16}
	assert.False(t, Overlaps(aStart, aEnd, bStart, bEnd))
	assert.False(t, Overlaps(bStart, bEnd, aStart, aEnd))
}

func TestOverlapsIdenticalStart(t *testing.T) {
	aStart := TimeSlot{Day: Tuesday, Hour: 14}
	aEnd := TimeSlot{Day: Tuesday, Hour: 15}
	bStart := TimeSlot{Day: Tuesday, Hour: 14}
	bEnd := TimeSlot{Day: Tuesday, Hour: 15}
	assert.True(t, Overlaps(aStart, aEnd, bStart, bEnd))
}

func TestOverlapsSymmetry(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd TimeSlot
	}{
		{"nested", TimeSlot{Day: 1, Hour: 10}, TimeSlot{Day: 1, Hour: 12}, TimeSlot{Day: 1, Hour: 10, Minute: 30}, TimeSlot{Day: 1, Hour: 11}},
		{"partial", TimeSlot{Day: 1, Hour: 10}, TimeSlot{Day: 1, Hour: 11}, TimeSlot{Day: 1, Hour: 10, Minute: 30}, TimeSlot{Day: 1, Hour: 11, Minute: 30}},
		{"disjoint", TimeSlot{Day: 1, Hour: 8}, TimeSlot{Day: 1, Hour: 9}, TimeSlot{Day: 1, Hour: 12}, TimeSlot{Day: 1, Hour: 13}},
		{"touching", TimeSlot{Day: 1, Hour: 9}, TimeSlot{Day: 1, Hour: 10}, TimeSlot{Day: 1, Hour: 10}, TimeSlot{Day: 1, Hour: 11}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			forward := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd)
			backward := Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd)
			assert.Equal(t, forward, backward)
		})
	}
}

func TestOverlapsNeverCrossesDays(t *testing.T) {
	aStart := TimeSlot{Day: Monday, Hour: 14}
	aEnd := TimeSlot{Day: Monday, Hour: 15}
	bStart := TimeSlot{Day: Tuesday, Hour: 14}
	bEnd := TimeSlot{Day: Tuesday, Hour: 15}
	assert.False(t, Overlaps(aStart, aEnd, bStart, bEnd))
}

func TestOverlapsRejectsDegenerateIntervals(t *testing.T) {
	point := TimeSlot{Day: Wednesday, Hour: 10}
	// Zero-length interval does not overlap anything, itself included.
	assert.False(t, Overlaps(point, point, point, point))
	assert.False(t, Overlaps(point, point, TimeSlot{Day: Wednesday, Hour: 9}, TimeSlot{Day: Wednesday, Hour: 11}))

	// Inverted interval behaves the same way.
	inverted := TimeSlot{Day: Wednesday, Hour: 8}
	assert.False(t, Overlaps(point, inverted, TimeSlot{Day: Wednesday, Hour: 9}, TimeSlot{Day: Wednesday, Hour: 11}))
}

func TestTimeSlotValid(t *testing.T) {
	assert.True(t, TimeSlot{Day: 6, Hour: 23, Minute: 59}.Valid())
	assert.False(t, TimeSlot{Day: 7, Hour: 0, Minute: 0}.Valid())
	assert.False(t, TimeSlot{Day: 0, Hour: 24, Minute: 0}.Valid())
	assert.False(t, TimeSlot{Day: 0, Hour: 0, Minute: 60}.Valid())
	assert.False(t, TimeSlot{Day: -1, Hour: 0, Minute: 0}.Valid())
}
