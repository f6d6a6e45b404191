package models

import "time"

// AvailableSlot holds the set of bookable times an administrator has
// published for a single calendar day. There is exactly one record per day;
// Date is stored truncated to midnight in the reference timezone.
type AvailableSlot struct {
	ID        string    `bson:"id" json:"id"`
	Date      time.Time `bson:"date" json:"date"`
	TimeSlots []string  `bson:"timeSlots" json:"timeSlots"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DayAvailability is the per-day view returned by the availability endpoints:
// the published times minus the booked ones.
type DayAvailability struct {
	Day            string   `json:"day"`     // display label, e.g. "Wed, Apr 2"
	Date           string   `json:"date"`    // ISO date, e.g. "2025-04-02"
	AvailableTimes []string `json:"availableTimes"`
	IsAvailable    bool     `json:"isAvailable"`
}

// WeekAvailability aggregates availability for a 7-day window starting at
// WeekStart.
type WeekAvailability struct {
	WeekStart string            `json:"weekStart"`
	Slots     []DayAvailability `json:"slots"`
}
