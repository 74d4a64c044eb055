package availability

import (
	"strconv"
	"time"

	"glamora/models"
)

// applyBookingDensity overlays simulated "already booked" noise onto slots
// that survived exclusion filtering, so preview calendars look realistically
// full. Slots already unavailable keep their original reason untouched.
//
// The stacked bonuses can push the probability past 1.0 and no clamp is
// applied: the draw lies in [0,1), so any probability >= 1 always books the
// slot. That comparison-based behavior is intentional.
func (e *DefaultEngine) applyBookingDensity(slots []models.TimeSlot, date, today time.Time) {
	for i := range slots {
		slot := &slots[i]
		if !slot.Available {
			continue
		}
		p := bookingProbability(slotHour(slot.Time), date, today)
		if e.draw() < p {
			slot.Available = false
			slot.Reason = "booked"
		}
	}
}

// bookingProbability computes the chance a slot reads as taken:
// base 0.30; on Fridays and Saturdays the base is replaced by 0.70 from 17:00
// or 0.50 from 14:00; popular hours (11-13 and 17-19) add 0.20; dates within
// 2 days of today add 0.30, within 7 days add 0.10.
func bookingProbability(hour int, date, today time.Time) float64 {
	p := 0.30

	weekday := date.Weekday()
	if weekday == time.Friday || weekday == time.Saturday {
		switch {
		case hour >= 17:
			p = 0.70
		case hour >= 14:
			p = 0.50
		}
	}

	if (hour >= 11 && hour <= 13) || (hour >= 17 && hour <= 19) {
		p += 0.20
	}

	switch days := daysBetween(today, date); {
	case days <= 2:
		p += 0.30
	case days <= 7:
		p += 0.10
	}

	return p
}

// slotHour extracts the hour from a zero-padded HH:MM slot time.
func slotHour(clock string) int {
	if len(clock) < 2 {
		return 0
	}
	hour, err := strconv.Atoi(clock[:2])
	if err != nil {
		return 0
	}
	return hour
}

// daysBetween counts whole calendar days from one midnight to another.
func daysBetween(from, to time.Time) int {
	return int(startOfDay(to).Sub(startOfDay(from)).Hours() / 24)
}
