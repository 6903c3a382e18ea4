package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	"github.com/jpedrosa/Mira-BookingService/pkg/types"
)

func window(start, end string) domain.HoursWindow {
	return domain.HoursWindow{
		Start: types.TimeString(start),
		End:   types.TimeString(end),
	}
}

func TestGenerateSlots(t *testing.T) {
	t.Run("60 minutes in default hours", func(t *testing.T) {
		slots := GenerateSlots(60, window("10:00", "18:30"))
		require.Len(t, slots, 16)
		assert.Equal(t, types.TimeString("10:00"), slots[0])
		assert.Equal(t, types.TimeString("17:30"), slots[len(slots)-1])
	})

	t.Run("slot fits exactly at window end", func(t *testing.T) {
		slots := GenerateSlots(90, window("10:00", "18:30"))
		assert.Equal(t, types.TimeString("17:00"), slots[len(slots)-1])
	})

	t.Run("duration longer than window", func(t *testing.T) {
		slots := GenerateSlots(600, window("10:00", "18:30"))
		assert.Empty(t, slots)
	})

	t.Run("zero duration", func(t *testing.T) {
		assert.Empty(t, GenerateSlots(0, window("10:00", "18:30")))
	})

	t.Run("invalid window", func(t *testing.T) {
		assert.Empty(t, GenerateSlots(30, window("18:00", "10:00")))
	})
}

func TestFreeSlots(t *testing.T) {
	busy := []Interval{
		{Start: "11:00", End: "12:00"},
		{Start: "15:30", End: "16:00"},
	}

	free := FreeSlots(60, window("10:00", "18:30"), busy)

	freeSet := make(map[types.TimeString]bool, len(free))
	for _, s := range free {
		freeSet[s] = true
	}

	t.Run("conflicting starts removed", func(t *testing.T) {
		assert.False(t, freeSet["10:30"]) // 10:30-11:30 overlaps 11:00-12:00
		assert.False(t, freeSet["11:00"])
		assert.False(t, freeSet["11:30"])
		assert.False(t, freeSet["15:00"]) // 15:00-16:00 overlaps 15:30-16:00
		assert.False(t, freeSet["15:30"])
	})

	t.Run("abutting starts kept", func(t *testing.T) {
		assert.True(t, freeSet["10:00"]) // ends exactly at 11:00
		assert.True(t, freeSet["12:00"]) // starts exactly at busy end
		assert.True(t, freeSet["16:00"])
	})

	t.Run("no busy intervals keeps everything", func(t *testing.T) {
		all := FreeSlots(60, window("10:00", "18:30"), nil)
		assert.Len(t, all, 16)
	})
}
