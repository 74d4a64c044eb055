package availability

import (
	"math"
	"testing"
	"time"

	"glamora/models"
)

type stubRand struct {
	v float64
}

func (s stubRand) Float64() float64 { return s.v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBookingProbability(t *testing.T) {
	today := date(2026, 1, 5) // Monday

	cases := []struct {
		name string
		hour int
		on   time.Time
		want float64
	}{
		{"quiet weekday morning", 9, date(2026, 1, 19), 0.30},
		{"weekday lunch rush", 12, date(2026, 1, 19), 0.50},
		{"weekday evening rush", 18, date(2026, 1, 19), 0.50},
		{"friday afternoon", 15, date(2026, 1, 23), 0.50},
		{"friday evening", 18, date(2026, 1, 23), 0.90},
		{"saturday before the afternoon override", 13, date(2026, 1, 24), 0.50},
		{"saturday mid afternoon", 14, date(2026, 1, 24), 0.50},
		{"saturday late evening", 20, date(2026, 1, 24), 0.70},
		{"two days out", 9, date(2026, 1, 7), 0.60},
		{"seven days out", 9, date(2026, 1, 12), 0.40},
		{"eight days out", 9, date(2026, 1, 13), 0.30},
	}

	for _, tc := range cases {
		got := bookingProbability(tc.hour, tc.on, today)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%s: probability = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestApplyBookingDensity_UnclampedAlwaysBooks(t *testing.T) {
	// Friday tomorrow at 18:00: 0.70 + 0.20 popular + 0.30 near-window stacks
	// to 1.20, which no draw in [0,1) can escape.
	engine := &DefaultEngine{
		Rand: stubRand{v: 0.999999},
		Now:  func() time.Time { return date(2026, 1, 8) },
	}

	slots := []models.TimeSlot{{Time: "18:00", Available: true}}
	engine.applyBookingDensity(slots, date(2026, 1, 9), date(2026, 1, 8))

	if slots[0].Available {
		t.Fatal("probability >= 1 must always mark the slot booked")
	}
	if slots[0].Reason != "booked" {
		t.Fatalf("reason = %q, want %q", slots[0].Reason, "booked")
	}
}

func TestApplyBookingDensity_HighDrawSurvives(t *testing.T) {
	engine := &DefaultEngine{
		Rand: stubRand{v: 0.95},
		Now:  func() time.Time { return date(2026, 1, 5) },
	}

	// Quiet Monday morning three weeks out: probability 0.30.
	slots := []models.TimeSlot{{Time: "09:00", Available: true}}
	engine.applyBookingDensity(slots, date(2026, 1, 19), date(2026, 1, 5))

	if !slots[0].Available {
		t.Fatal("draw above the probability must leave the slot available")
	}
}

func TestApplyBookingDensity_LowDrawBooksEverything(t *testing.T) {
	engine := &DefaultEngine{
		Rand: stubRand{v: 0.0},
		Now:  func() time.Time { return date(2026, 1, 5) },
	}

	slots := []models.TimeSlot{
		{Time: "09:00", Available: true},
		{Time: "10:00", Available: true},
	}
	engine.applyBookingDensity(slots, date(2026, 1, 19), date(2026, 1, 5))

	for _, slot := range slots {
		if slot.Available {
			t.Fatalf("slot %s should be booked with a zero draw", slot.Time)
		}
	}
}

func TestApplyBookingDensity_LeavesExclusionsUntouched(t *testing.T) {
	engine := &DefaultEngine{
		Rand: stubRand{v: 0.0},
		Now:  func() time.Time { return date(2026, 1, 5) },
	}

	slots := []models.TimeSlot{
		{Time: "13:00", Available: false, Reason: "lunch break"},
	}
	engine.applyBookingDensity(slots, date(2026, 1, 19), date(2026, 1, 5))

	if slots[0].Reason != "lunch break" {
		t.Fatalf("exclusion reason overwritten: got %q", slots[0].Reason)
	}
}
