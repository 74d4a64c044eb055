package availability

import (
	"strings"
	"time"

	"glamora/models"
)

// InferScheduleType guesses a salon's operating model from its provider ID.
// Marketplace provider IDs carry the salon category as a prefix (for example
// "chain-luxe-023" or "home-glow-studio"); anything else reads as an
// independent salon.
func InferScheduleType(providerID string) models.ScheduleType {
	id := strings.ToLower(providerID)
	switch {
	case strings.Contains(id, "chain"):
		return models.ScheduleTypeChain
	case strings.Contains(id, "home"):
		return models.ScheduleTypeHomeBased
	default:
		return models.ScheduleTypeIndependent
	}
}

// DefaultSchedule returns the fallback policy for a provider with no
// registered schedule. Lookup failures never surface as errors; they degrade
// to these presets.
func DefaultSchedule(scheduleType models.ScheduleType, providerID string) *models.Schedule {
	switch scheduleType {
	case models.ScheduleTypeChain:
		return &models.Schedule{
			ProviderID:   providerID,
			ScheduleType: models.ScheduleTypeChain,
			WorkingDays: models.NewWeekdaySet(
				time.Monday, time.Tuesday, time.Wednesday,
				time.Thursday, time.Friday, time.Saturday,
			),
			WorkingHours:     models.WorkingHours{Start: 9 * 60, End: 19 * 60},
			LunchBreak:       &models.BreakWindow{Start: 13 * 60, End: 14 * 60},
			BufferMinutes:    15,
			MaxDailyBookings: 20,
		}
	case models.ScheduleTypeHomeBased:
		return &models.Schedule{
			ProviderID:   providerID,
			ScheduleType: models.ScheduleTypeHomeBased,
			WorkingDays: models.NewWeekdaySet(
				time.Monday, time.Tuesday,
				time.Thursday, time.Friday, time.Saturday,
			),
			WorkingHours:     models.WorkingHours{Start: 10 * 60, End: 16 * 60},
			BufferMinutes:    30,
			MaxDailyBookings: 8,
		}
	default:
		return &models.Schedule{
			ProviderID:   providerID,
			ScheduleType: models.ScheduleTypeIndependent,
			WorkingDays: models.NewWeekdaySet(
				time.Tuesday, time.Wednesday, time.Thursday,
				time.Friday, time.Saturday, time.Sunday,
			),
			WorkingHours:     models.WorkingHours{Start: 10 * 60, End: 18 * 60},
			BufferMinutes:    20,
			MaxDailyBookings: 12,
		}
	}
}
