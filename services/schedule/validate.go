package schedule

import (
	"fmt"

	"glamora/models"
)

const minutesPerDay = 24 * 60

// ValidationError reports a malformed schedule at registration time. Malformed
// schedules must never reach the availability engine, so these are hard errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid schedule: %s %s", e.Field, e.Message)
}

// ValidateSchedule enforces the registration-time invariants: working hours
// must be a forward window, and every break or personal block must fit inside
// working hours.
func ValidateSchedule(sched *models.Schedule) error {
	if sched.ProviderID == "" {
		return &ValidationError{Field: "providerId", Message: "is required"}
	}
	switch sched.ScheduleType {
	case models.ScheduleTypeChain, models.ScheduleTypeIndependent, models.ScheduleTypeHomeBased:
	default:
		return &ValidationError{Field: "scheduleType", Message: "must be chain, independent or home-based"}
	}
	if sched.WorkingDays == 0 {
		return &ValidationError{Field: "workingDays", Message: "must contain at least one weekday"}
	}

	hours := sched.WorkingHours
	if hours.Start < 0 || hours.End > minutesPerDay {
		return &ValidationError{Field: "workingHours", Message: "must lie within a single day"}
	}
	if hours.Start >= hours.End {
		return &ValidationError{Field: "workingHours", Message: "start must precede end"}
	}

	if sched.BufferMinutes < 0 {
		return &ValidationError{Field: "bufferMinutes", Message: "must not be negative"}
	}
	if sched.MaxDailyBookings <= 0 {
		return &ValidationError{Field: "maxDailyBookings", Message: "must be greater than zero"}
	}

	if lb := sched.LunchBreak; lb != nil {
		if lb.Start >= lb.End {
			return &ValidationError{Field: "lunchBreak", Message: "start must precede end"}
		}
		if lb.Start < hours.Start || lb.End > hours.End {
			return &ValidationError{Field: "lunchBreak", Message: "must fit inside working hours"}
		}
	}

	for i, block := range sched.PersonalTimeBlocks {
		field := fmt.Sprintf("personalTimeBlocks[%d]", i)
		if block.Weekday < 0 || block.Weekday > 6 {
			return &ValidationError{Field: field, Message: "weekday out of range"}
		}
		if block.Start >= block.End {
			return &ValidationError{Field: field, Message: "start must precede end"}
		}
		if block.Start < hours.Start || block.End > hours.End {
			return &ValidationError{Field: field, Message: "must fit inside working hours"}
		}
	}

	return nil
}
