package schedule

import (
	"sort"
	"sync"

	"glamora/models"
)

// MemoryRegistry is a concurrency-safe in-memory schedule store. It backs
// tests and demo seeding, and satisfies both Service and the availability
// engine's ScheduleSource without touching shared state.
type MemoryRegistry struct {
	mu        sync.RWMutex
	schedules map[string]*models.Schedule
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{schedules: make(map[string]*models.Schedule)}
}

func (r *MemoryRegistry) Register(sched *models.Schedule) error {
	if err := ValidateSchedule(sched); err != nil {
		return err
	}
	// Copy the reference fields too, so the caller keeps no handle into
	// the stored schedule.
	copied := *sched
	if sched.LunchBreak != nil {
		lunch := *sched.LunchBreak
		copied.LunchBreak = &lunch
	}
	if sched.PersonalTimeBlocks != nil {
		copied.PersonalTimeBlocks = append([]models.PersonalTimeBlock(nil), sched.PersonalTimeBlocks...)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schedules[sched.ProviderID] = &copied
	return nil
}

func (r *MemoryRegistry) Get(providerID string) (*models.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sched, ok := r.schedules[providerID]
	if !ok {
		return nil, ErrScheduleNotFound
	}
	return sched, nil
}

func (r *MemoryRegistry) Delete(providerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.schedules[providerID]; !ok {
		return ErrScheduleNotFound
	}
	delete(r.schedules, providerID)
	return nil
}

func (r *MemoryRegistry) ListProviderIDs() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.schedules))
	for id := range r.schedules {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *MemoryRegistry) ScheduleFor(providerID string) (*models.Schedule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sched, ok := r.schedules[providerID]
	return sched, ok
}
