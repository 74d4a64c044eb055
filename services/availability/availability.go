package availability

import (
	"time"

	"glamora/models"
)

// DefaultDayCount is how many days a multi-day query spans when the caller
// does not say otherwise.
const DefaultDayCount = 30

// GetDayAvailability computes the preview for a single date.
func (e *DefaultEngine) GetDayAvailability(providerID string, serviceDuration int, date time.Time) (models.DayAvailability, error) {
	if serviceDuration <= 0 {
		return models.DayAvailability{}, ErrInvalidDuration
	}
	sched := e.resolveSchedule(providerID)
	return e.buildDay(sched, serviceDuration, date), nil
}

// GetMultiDayAvailability computes previews for dayCount consecutive dates
// starting at startDate (today when zero). Dates strictly before today's
// midnight are skipped, so the result never contains past days. Per-day
// computations are independent; results come back in date order.
func (e *DefaultEngine) GetMultiDayAvailability(providerID string, serviceDuration int, startDate time.Time, dayCount int) ([]models.DayAvailability, error) {
	if serviceDuration <= 0 {
		return nil, ErrInvalidDuration
	}

	today := startOfDay(e.now())
	if startDate.IsZero() {
		startDate = today
	}
	if dayCount <= 0 {
		dayCount = DefaultDayCount
	}

	sched := e.resolveSchedule(providerID)
	first := startOfDay(startDate)

	days := make([]models.DayAvailability, 0, dayCount)
	for offset := 0; offset < dayCount; offset++ {
		date := first.AddDate(0, 0, offset)
		if date.Before(today) {
			continue
		}
		days = append(days, e.buildDay(sched, serviceDuration, date))
	}
	return days, nil
}

// resolveSchedule never fails: an unregistered provider degrades to the
// type-inferred default policy.
func (e *DefaultEngine) resolveSchedule(providerID string) *models.Schedule {
	if sched, ok := e.Schedules.ScheduleFor(providerID); ok {
		return sched
	}
	return DefaultSchedule(InferScheduleType(providerID), providerID)
}

// buildDay runs the full per-date pipeline: raw slot generation with
// exclusions, density overlay, then classification.
func (e *DefaultEngine) buildDay(sched *models.Schedule, serviceDuration int, date time.Time) models.DayAvailability {
	worksWeekday := sched.WorkingDays.Has(date.Weekday())

	slots := GenerateDaySlots(sched, serviceDuration, date)
	if slots == nil {
		// Closed and empty days still marshal timeSlots as [], not null.
		slots = []models.TimeSlot{}
	}
	e.applyBookingDensity(slots, startOfDay(date), startOfDay(e.now()))

	available := 0
	for _, slot := range slots {
		if slot.Available {
			available++
		}
	}

	day := models.DayAvailability{
		Date:      date.Format("2006-01-02"),
		Status:    ClassifyDay(worksWeekday, available),
		TimeSlots: slots,
	}
	// A closed day reports zero counts regardless of anything upstream.
	if worksWeekday {
		day.AvailableSlots = available
		day.TotalSlots = len(slots)
	}
	return day
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
