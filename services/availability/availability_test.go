package availability

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"glamora/models"
)

// stubSource serves fixtures without touching any shared registry state.
type stubSource struct {
	schedules map[string]*models.Schedule
}

func (s *stubSource) ScheduleFor(providerID string) (*models.Schedule, bool) {
	sched, ok := s.schedules[providerID]
	return sched, ok
}

func testEngine(schedules map[string]*models.Schedule, draw float64, now time.Time) *DefaultEngine {
	if schedules == nil {
		schedules = map[string]*models.Schedule{}
	}
	return &DefaultEngine{
		Schedules: &stubSource{schedules: schedules},
		Rand:      stubRand{v: draw},
		Now:       func() time.Time { return now },
	}
}

func TestGetDayAvailability_InvalidDuration(t *testing.T) {
	engine := testEngine(nil, 0.95, date(2026, 1, 5))

	if _, err := engine.GetDayAvailability("salon-aurora", 0, date(2026, 1, 19)); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}
	if _, err := engine.GetMultiDayAvailability("salon-aurora", -30, time.Time{}, 0); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration, got %v", err)
	}
}

func TestGetDayAvailability_ClosedWeekday(t *testing.T) {
	sched := busySalonSchedule()
	sched.WorkingDays = models.NewWeekdaySet(
		time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	)
	engine := testEngine(map[string]*models.Schedule{sched.ProviderID: sched}, 0.95, date(2026, 1, 5))

	day, err := engine.GetDayAvailability(sched.ProviderID, 60, date(2026, 1, 19)) // a Monday
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day.Status != models.DayStatusClosed {
		t.Fatalf("status = %s, want closed", day.Status)
	}
	if day.AvailableSlots != 0 || day.TotalSlots != 0 {
		t.Fatalf("closed day must report 0/0 slots, got %d/%d", day.AvailableSlots, day.TotalSlots)
	}
	if len(day.TimeSlots) != 0 {
		t.Fatalf("closed day must carry no slots, got %d", len(day.TimeSlots))
	}
}

func TestGetDayAvailability_ClosedWeekdayMarshalsEmptySlotList(t *testing.T) {
	sched := busySalonSchedule() // rests on Sundays
	engine := testEngine(map[string]*models.Schedule{sched.ProviderID: sched}, 0.95, date(2026, 1, 5))

	day, err := engine.GetDayAvailability(sched.ProviderID, 60, date(2026, 1, 11)) // a Sunday
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day.TimeSlots == nil {
		t.Fatal("closed day must carry an empty slot list, not nil")
	}

	data, err := json.Marshal(day)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"timeSlots":[]`) {
		t.Fatalf("closed day should serialize timeSlots as [], got %s", data)
	}
}

func TestGetDayAvailability_RegisteredSchedule(t *testing.T) {
	sched := busySalonSchedule()
	engine := testEngine(map[string]*models.Schedule{sched.ProviderID: sched}, 0.95, date(2026, 1, 5))

	day, err := engine.GetDayAvailability(sched.ProviderID, 60, date(2026, 1, 19))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day.Date != "2026-01-19" {
		t.Fatalf("date = %s, want 2026-01-19", day.Date)
	}
	if day.TotalSlots != 9 {
		t.Fatalf("totalSlots = %d, want 9", day.TotalSlots)
	}
	// Three weeks out with a high draw nothing gets density-booked, so only
	// the lunch slot is unavailable.
	if day.AvailableSlots != 8 {
		t.Fatalf("availableSlots = %d, want 8", day.AvailableSlots)
	}
	if day.Status != models.DayStatusAvailable {
		t.Fatalf("status = %s, want available", day.Status)
	}
}

func TestGetDayAvailability_UnknownProviderHomeBasedFallback(t *testing.T) {
	engine := testEngine(nil, 0.95, date(2026, 1, 5))

	day, err := engine.GetDayAvailability("home-glow-studio", 60, date(2026, 1, 19))
	if err != nil {
		t.Fatalf("unknown providers must never error, got %v", err)
	}
	// Home-based preset: Mon/Tue/Thu-Sat, 10:00-16:00, buffer 30 -> slots at
	// 10:00, 11:30, 13:00, 14:30.
	if day.TotalSlots != 4 {
		t.Fatalf("totalSlots = %d, want 4", day.TotalSlots)
	}
	if len(day.TimeSlots) == 0 || day.TimeSlots[0].Time != "10:00" {
		t.Fatalf("expected first slot 10:00, got %+v", day.TimeSlots)
	}
	if day.Status != models.DayStatusAvailable {
		t.Fatalf("status = %s, want available", day.Status)
	}
}

func TestGetMultiDayAvailability_SkipsPastDates(t *testing.T) {
	sched := busySalonSchedule()
	engine := testEngine(map[string]*models.Schedule{sched.ProviderID: sched}, 0.95, date(2026, 1, 5))

	days, err := engine.GetMultiDayAvailability(sched.ProviderID, 60, date(2026, 1, 1), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 6 {
		t.Fatalf("expected 6 days (Jan 5-10), got %d", len(days))
	}
	if days[0].Date != "2026-01-05" {
		t.Fatalf("first date = %s, want 2026-01-05", days[0].Date)
	}
	for _, day := range days {
		if day.Date < "2026-01-05" {
			t.Fatalf("result contains past date %s", day.Date)
		}
	}
}

func TestGetMultiDayAvailability_Defaults(t *testing.T) {
	sched := busySalonSchedule()
	engine := testEngine(map[string]*models.Schedule{sched.ProviderID: sched}, 0.95, date(2026, 1, 5))

	days, err := engine.GetMultiDayAvailability(sched.ProviderID, 60, time.Time{}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != DefaultDayCount {
		t.Fatalf("expected %d days by default, got %d", DefaultDayCount, len(days))
	}
	if days[0].Date != "2026-01-05" {
		t.Fatalf("first date = %s, want today", days[0].Date)
	}
	// Dates are in ascending order.
	for i := 1; i < len(days); i++ {
		if days[i].Date <= days[i-1].Date {
			t.Fatalf("dates out of order: %s before %s", days[i-1].Date, days[i].Date)
		}
	}
	// The salon rests on Sundays; those days classify as closed.
	for _, day := range days {
		parsed, err := time.Parse("2006-01-02", day.Date)
		if err != nil {
			t.Fatalf("bad date %s: %v", day.Date, err)
		}
		if parsed.Weekday() == time.Sunday && day.Status != models.DayStatusClosed {
			t.Fatalf("Sunday %s should be closed, got %s", day.Date, day.Status)
		}
	}
}

func TestInferScheduleType(t *testing.T) {
	cases := map[string]models.ScheduleType{
		"chain-luxe-023":   models.ScheduleTypeChain,
		"home-glow-studio": models.ScheduleTypeHomeBased,
		"salon-aurora":     models.ScheduleTypeIndependent,
	}
	for id, want := range cases {
		if got := InferScheduleType(id); got != want {
			t.Errorf("InferScheduleType(%q) = %s, want %s", id, got, want)
		}
	}
}

func TestDefaultSchedulePresets(t *testing.T) {
	chain := DefaultSchedule(models.ScheduleTypeChain, "chain-luxe-023")
	if chain.WorkingHours.Start != 9*60 || chain.WorkingHours.End != 19*60 {
		t.Fatalf("chain hours = %+v", chain.WorkingHours)
	}
	if chain.LunchBreak == nil || chain.LunchBreak.Start != 13*60 || chain.LunchBreak.End != 14*60 {
		t.Fatalf("chain lunch = %+v", chain.LunchBreak)
	}
	if chain.BufferMinutes != 15 || chain.MaxDailyBookings != 20 {
		t.Fatalf("chain buffer/cap = %d/%d", chain.BufferMinutes, chain.MaxDailyBookings)
	}
	if chain.WorkingDays.Has(time.Sunday) || !chain.WorkingDays.Has(time.Saturday) {
		t.Fatalf("chain working days = %v", chain.WorkingDays.Days())
	}

	indep := DefaultSchedule(models.ScheduleTypeIndependent, "salon-aurora")
	if indep.WorkingDays.Has(time.Monday) || !indep.WorkingDays.Has(time.Sunday) {
		t.Fatalf("independent working days = %v", indep.WorkingDays.Days())
	}
	if indep.BufferMinutes != 20 || indep.MaxDailyBookings != 12 {
		t.Fatalf("independent buffer/cap = %d/%d", indep.BufferMinutes, indep.MaxDailyBookings)
	}
	if indep.LunchBreak != nil {
		t.Fatal("independent preset carries no lunch break")
	}

	home := DefaultSchedule(models.ScheduleTypeHomeBased, "home-glow-studio")
	if home.WorkingDays.Has(time.Wednesday) || home.WorkingDays.Has(time.Sunday) {
		t.Fatalf("home-based working days = %v", home.WorkingDays.Days())
	}
	if home.WorkingHours.Start != 10*60 || home.WorkingHours.End != 16*60 {
		t.Fatalf("home-based hours = %+v", home.WorkingHours)
	}
	if home.BufferMinutes != 30 || home.MaxDailyBookings != 8 {
		t.Fatalf("home-based buffer/cap = %d/%d", home.BufferMinutes, home.MaxDailyBookings)
	}
}
