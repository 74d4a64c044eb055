package models

import "fmt"

// TimeSlot is one bookable window of serviceDuration minutes in a provider's day.
type TimeSlot struct {
	Time      string `json:"time"`             // zero-padded HH:MM start time
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"` // set only when unavailable
}

// DayStatus is the coarse classification used for calendar heat-mapping.
type DayStatus string

const (
	DayStatusAvailable DayStatus = "available"
	DayStatusLimited   DayStatus = "limited"
	DayStatusFull      DayStatus = "full"
	DayStatusClosed    DayStatus = "closed"
)

// DayAvailability is the derived availability preview for a single date. It is
// recomputed per query and never persisted.
type DayAvailability struct {
	Date           string     `json:"date"` // "2006-01-02"
	Status         DayStatus  `json:"status"`
	AvailableSlots int        `json:"availableSlots"`
	TotalSlots     int        `json:"totalSlots"`
	TimeSlots      []TimeSlot `json:"timeSlots"`
}

// ClockString formats minutes from midnight as zero-padded HH:MM.
func ClockString(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
