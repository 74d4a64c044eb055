package availability

import (
	"time"

	"glamora/models"
)

// GenerateDaySlots builds the ordered raw slot sequence for one date. A date
// whose weekday is outside the schedule's working days yields no slots at all.
// Slots step by serviceDuration+bufferMinutes and are emitted while the
// occupied interval [start, start+serviceDuration) still fits before closing
// time. Exclusions (lunch break, personal time blocks) are applied in place
// during generation, so identical inputs always yield identical output.
//
// Callers must reject serviceDuration <= 0 before invoking this.
func GenerateDaySlots(sched *models.Schedule, serviceDuration int, date time.Time) []models.TimeSlot {
	weekday := date.Weekday()
	if !sched.WorkingDays.Has(weekday) {
		return nil
	}

	step := serviceDuration + sched.BufferMinutes
	var slots []models.TimeSlot
	for start := sched.WorkingHours.Start; start+serviceDuration <= sched.WorkingHours.End; start += step {
		slot := models.TimeSlot{
			Time:      models.ClockString(start),
			Available: true,
		}
		if reason, excluded := exclusionReason(sched, weekday, start); excluded {
			slot.Available = false
			slot.Reason = reason
		}
		slots = append(slots, slot)
	}
	return slots
}

// exclusionReason checks the lunch break first, then personal time blocks in
// list order for the matching weekday. The first hit wins and supplies the
// reason; this ordering is part of the contract and must stay deterministic.
func exclusionReason(sched *models.Schedule, weekday time.Weekday, start int) (string, bool) {
	if lb := sched.LunchBreak; lb != nil && start >= lb.Start && start < lb.End {
		return "lunch break", true
	}
	for _, block := range sched.PersonalTimeBlocks {
		if block.Weekday != weekday {
			continue
		}
		if start >= block.Start && start < block.End {
			reason := block.Reason
			if reason == "" {
				reason = "personal time"
			}
			return reason, true
		}
	}
	return "", false
}
