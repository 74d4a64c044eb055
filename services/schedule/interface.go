package schedule

import "glamora/models"

// Service owns provider schedule policies: it validates them at registration
// time and exposes the read-only lookup the availability engine consumes.
type Service interface {
	Register(sched *models.Schedule) error
	Get(providerID string) (*models.Schedule, error)
	Delete(providerID string) error
	ListProviderIDs() ([]string, error)

	// ScheduleFor satisfies availability.ScheduleSource. A missing schedule is
	// reported via the boolean, never as an error.
	ScheduleFor(providerID string) (*models.Schedule, bool)
}
