package schedule

import (
	"errors"
	"fmt"

	scheduleRepo "glamora/database/repository/schedule"
	"glamora/models"
	"glamora/utils"

	"go.uber.org/zap"
)

// ErrScheduleNotFound is returned by Get when a provider has no registered
// schedule. Availability lookups never see this; they fall back to defaults.
var ErrScheduleNotFound = errors.New("schedule not found")

// DefaultScheduleService implements Service on top of a ScheduleRepository.
type DefaultScheduleService struct {
	Repo scheduleRepo.ScheduleRepository
}

// Register validates and stores (or replaces) a provider's schedule.
func (s *DefaultScheduleService) Register(sched *models.Schedule) error {
	if err := ValidateSchedule(sched); err != nil {
		return err
	}
	if err := s.Repo.Upsert(sched); err != nil {
		return fmt.Errorf("failed to store schedule for provider %s: %w", sched.ProviderID, err)
	}
	return nil
}

// Get fetches a provider's registered schedule.
func (s *DefaultScheduleService) Get(providerID string) (*models.Schedule, error) {
	sched, err := s.Repo.GetByProviderID(providerID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return sched, nil
}

// Delete removes a provider's schedule; afterwards availability queries for
// that provider degrade to the type-inferred default policy.
func (s *DefaultScheduleService) Delete(providerID string) error {
	if err := s.Repo.Delete(providerID); err != nil {
		if errors.Is(err, scheduleRepo.ErrNotFound) {
			return ErrScheduleNotFound
		}
		return err
	}
	return nil
}

// ListProviderIDs returns every provider with a registered schedule.
func (s *DefaultScheduleService) ListProviderIDs() ([]string, error) {
	return s.Repo.ListProviderIDs()
}

// ScheduleFor implements the availability engine's read-only lookup. Backend
// failures are logged and reported as a miss so a transient outage degrades
// to default schedules instead of failing the preview.
func (s *DefaultScheduleService) ScheduleFor(providerID string) (*models.Schedule, bool) {
	sched, err := s.Repo.GetByProviderID(providerID)
	if err != nil {
		if !errors.Is(err, scheduleRepo.ErrNotFound) {
			utils.GetLogger().Warn("schedule lookup failed, falling back to defaults",
				zap.String("providerID", providerID), zap.Error(err))
		}
		return nil, false
	}
	return sched, true
}
