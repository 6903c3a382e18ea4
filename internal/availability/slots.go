package availability

import (
	"github.com/jpedrosa/Mira-BookingService/internal/domain"
	"github.com/jpedrosa/Mira-BookingService/pkg/types"
)

// GenerateSlots enumerates candidate start times inside a working-hours
// window on the fixed 30-minute stride. A slot at T is emitted whenever
// T + duration <= window end. Output is ascending and deterministic; an
// empty result (duration longer than the window) is a valid "no
// availability" outcome, not an error.
func GenerateSlots(durationMinutes int, window domain.HoursWindow) []types.TimeString {
	slots := make([]types.TimeString, 0)

	if durationMinutes <= 0 || !window.IsValid() {
		return slots
	}

	end := window.End.Minutes()
	for t := window.Start.Minutes(); t+durationMinutes <= end; t += domain.SlotStrideMinutes {
		slot, err := types.NewTimeStringFromMinutes(t)
		if err != nil {
			break
		}
		slots = append(slots, slot)
	}
	return slots
}

// FreeSlots generates the stride slots for a window and keeps only those
// whose [T, T+duration) interval overlaps none of the busy intervals
func FreeSlots(durationMinutes int, window domain.HoursWindow, busy []Interval) []types.TimeString {
	free := make([]types.TimeString, 0)

	for _, start := range GenerateSlots(durationMinutes, window) {
		end, err := start.AddMinutes(durationMinutes)
		if err != nil {
			continue
		}
		if IsIntervalFree(Interval{Start: start, End: end}, busy) {
			free = append(free, start)
		}
	}
	return free
}
