package scheduleRepo

import (
	"errors"

	"glamora/models"
)

// ErrNotFound is returned when a provider has no stored schedule document.
var ErrNotFound = errors.New("schedule document not found")

// ScheduleRepository defines persistence for provider schedule policies.
type ScheduleRepository interface {
	// GetByProviderID retrieves the schedule registered for a provider.
	GetByProviderID(providerID string) (*models.Schedule, error)
	// Upsert inserts or replaces a provider's schedule document.
	Upsert(sched *models.Schedule) error
	// Delete removes a provider's schedule document.
	Delete(providerID string) error
	// ListProviderIDs returns the IDs of every provider with a schedule.
	ListProviderIDs() ([]string, error)
}
