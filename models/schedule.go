package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// ScheduleType describes how a provider operates their salon.
type ScheduleType string

const (
	ScheduleTypeChain       ScheduleType = "chain"
	ScheduleTypeIndependent ScheduleType = "independent"
	ScheduleTypeHomeBased   ScheduleType = "home-based"
)

// WeekdaySet is a 7-bit set of weekdays; bit 0 is Sunday, bit 6 is Saturday.
// It marshals to and from a JSON array of weekday indices.
type WeekdaySet uint8

// NewWeekdaySet builds a set from the given weekdays.
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s.Add(d)
	}
	return s
}

// Add inserts a weekday into the set.
func (s *WeekdaySet) Add(d time.Weekday) {
	*s |= 1 << uint(d)
}

// Has reports whether the weekday is in the set.
func (s WeekdaySet) Has(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

// Days returns the set members in Sunday-first order.
func (s WeekdaySet) Days() []time.Weekday {
	var days []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

func (s WeekdaySet) MarshalJSON() ([]byte, error) {
	indices := make([]int, 0, 7)
	for _, d := range s.Days() {
		indices = append(indices, int(d))
	}
	return json.Marshal(indices)
}

func (s *WeekdaySet) UnmarshalJSON(data []byte) error {
	var indices []int
	if err := json.Unmarshal(data, &indices); err != nil {
		return err
	}
	var set WeekdaySet
	for _, i := range indices {
		if i < 0 || i > 6 {
			return fmt.Errorf("weekday index %d out of range [0,6]", i)
		}
		set.Add(time.Weekday(i))
	}
	*s = set
	return nil
}

// WorkingHours bounds a provider's bookable day, in minutes from midnight.
type WorkingHours struct {
	Start int `bson:"start" json:"start"` // e.g., 540 for 9:00 AM
	End   int `bson:"end" json:"end"`     // e.g., 1140 for 7:00 PM
}

// BreakWindow is a recurring daily pause within working hours, e.g. lunch.
type BreakWindow struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// PersonalTimeBlock is a weekly recurring exclusion specific to one provider,
// distinct from the shared lunch break (e.g., school pickup on Wednesdays).
type PersonalTimeBlock struct {
	Weekday time.Weekday `bson:"weekday" json:"weekday"` // 0=Sunday .. 6=Saturday
	Start   int          `bson:"start" json:"start"`
	End     int          `bson:"end" json:"end"`
	Reason  string       `bson:"reason" json:"reason"`
}

// Schedule is a provider's declarative booking policy. It is read-only for the
// duration of an availability query; only the schedule service mutates it.
type Schedule struct {
	ProviderID         string              `bson:"providerId" json:"providerId"`
	ScheduleType       ScheduleType        `bson:"scheduleType" json:"scheduleType"`
	WorkingDays        WeekdaySet          `bson:"workingDays" json:"workingDays"`
	WorkingHours       WorkingHours        `bson:"workingHours" json:"workingHours"`
	LunchBreak         *BreakWindow        `bson:"lunchBreak,omitempty" json:"lunchBreak,omitempty"`
	BufferMinutes      int                 `bson:"bufferMinutes" json:"bufferMinutes"`
	MaxDailyBookings   int                 `bson:"maxDailyBookings" json:"maxDailyBookings"` // advisory cap, not enforced by slot count
	PersonalTimeBlocks []PersonalTimeBlock `bson:"personalTimeBlocks,omitempty" json:"personalTimeBlocks,omitempty"`
}
