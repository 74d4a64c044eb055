package availability

import (
	"math/rand"
	"sync"
	"time"

	"glamora/models"
)

// ScheduleSource resolves a provider's schedule policy. Implementations must
// be safe for concurrent readers; the engine never mutates what it receives.
type ScheduleSource interface {
	ScheduleFor(providerID string) (*models.Schedule, bool)
}

// RandSource supplies the single uniform draw used by the booking density
// simulator. *rand.Rand does not satisfy it safely under concurrency, so the
// default engine wraps one behind a mutex; tests inject a fixed source.
type RandSource interface {
	Float64() float64
}

// Engine computes read-only availability previews for calendar display. It is
// stateless and side-effect free apart from the density draw; it must never be
// treated as a source of truth about real bookings.
type Engine interface {
	GetDayAvailability(providerID string, serviceDuration int, date time.Time) (models.DayAvailability, error)
	GetMultiDayAvailability(providerID string, serviceDuration int, startDate time.Time, dayCount int) ([]models.DayAvailability, error)
}

// DefaultEngine implements Engine on top of an injected schedule lookup.
type DefaultEngine struct {
	Schedules ScheduleSource
	Rand      RandSource       // density draw; nil falls back to the global source
	Now       func() time.Time // clock; nil falls back to time.Now
}

// NewEngine builds an engine with a time-seeded, concurrency-safe random source.
func NewEngine(schedules ScheduleSource) *DefaultEngine {
	return &DefaultEngine{
		Schedules: schedules,
		Rand:      &lockedRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))},
		Now:       time.Now,
	}
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (e *DefaultEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *DefaultEngine) draw() float64 {
	if e.Rand != nil {
		return e.Rand.Float64()
	}
	return rand.Float64()
}
