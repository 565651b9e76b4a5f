package models

import "time"

// Availability describes when a volunteer can help.
type Availability string

const (
	AvailabilityFullTime    Availability = "Full-time"
	AvailabilityPartTime    Availability = "Part-time"
	AvailabilityWeekends    Availability = "Weekends only"
	AvailabilityEvenings    Availability = "Evenings only"
	AvailabilityFlexible    Availability = "Flexible"
	AvailabilityUnspecified Availability = ""
)

// Valid reports whether a is a known availability. The empty value is
// accepted because the application detail is optional.
func (a Availability) Valid() bool {
	switch a {
	case AvailabilityFullTime, AvailabilityPartTime, AvailabilityWeekends,
		AvailabilityEvenings, AvailabilityFlexible, AvailabilityUnspecified:
		return true
	}
	return false
}

// Application is the per-(user, event) signup detail stored together with
// the roster entry.
type Application struct {
	EventID      string       `json:"eventId"`
	UserID       string       `json:"_id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Skills       string       `json:"skills"`
	Experience   string       `json:"experience"`
	Motivation   string       `json:"motivation"`
	Availability Availability `json:"availability"`
	AppliedAt    time.Time    `json:"appliedAt"`
}
