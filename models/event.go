// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"io"
	"time"
)

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

// Valid reports whether s is a known status.
func (s EventStatus) Valid() bool {
	switch s {
	case EventUpcoming, EventOngoing, EventCompleted, EventCancelled:
		return true
	}
	return false
}

// AcceptsVolunteers reports whether registration is open in status s.
func (s EventStatus) AcceptsVolunteers() bool {
	return s == EventUpcoming || s == EventOngoing
}

// CanTransitionTo reports whether an event may move from s to next.
// Completed and cancelled events are terminal.
func (s EventStatus) CanTransitionTo(next EventStatus) bool {
	switch s {
	case EventUpcoming:
		return next == EventOngoing || next == EventCompleted || next == EventCancelled
	case EventOngoing:
		return next == EventCompleted || next == EventCancelled
	}
	return false
}

// EventCategory classifies what kind of work an event involves.
type EventCategory string

const (
	CategoryCleaning    EventCategory = "cleaning"
	CategoryEducation   EventCategory = "education"
	CategoryHealthcare  EventCategory = "healthcare"
	CategoryEnvironment EventCategory = "environment"
	CategorySocial      EventCategory = "social"
	CategoryOther       EventCategory = "other"
)

// Valid reports whether c is a known category.
func (c EventCategory) Valid() bool {
	switch c {
	case CategoryCleaning, CategoryEducation, CategoryHealthcare,
		CategoryEnvironment, CategorySocial, CategoryOther:
		return true
	}
	return false
}

// Event is a volunteering activity created by an organizer.
type Event struct {
	EventID     string        `json:"_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	Category    EventCategory `json:"category"`

	// Image is the object key of the stored event image. Empty when the
	// event has no image.
	Image  string      `json:"image,omitempty"`
	Impact string      `json:"impact"`
	Date   time.Time   `json:"date"`
	Status EventStatus `json:"status"`

	// Organizer is the id of the owning user.
	Organizer string `json:"organizer"`

	// RequiredVolunteers is the roster capacity, always >= 1.
	RequiredVolunteers int `json:"requiredVolunteers"`

	// RegisteredVolunteers holds volunteer ids in registration order.
	RegisteredVolunteers []string `json:"registeredVolunteers"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Summary returns the short form of e used inside profile views.
func (e Event) Summary() EventSummary {
	return EventSummary{
		EventID: e.EventID,
		Title:   e.Title,
		Date:    e.Date,
		Status:  e.Status,
	}
}

// EventSummary is the compact event shape embedded in a ProfileView.
type EventSummary struct {
	EventID string      `json:"_id"`
	Title   string      `json:"title"`
	Date    time.Time   `json:"date"`
	Status  EventStatus `json:"status"`
}

// EventImage is an uploaded image attached to a new event.
type EventImage struct {
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
}

// EventFilter narrows an event listing. Zero fields are ignored.
type EventFilter struct {
	// OrganizerID keeps only events created by this user.
	OrganizerID string

	// VolunteerID keeps only events this user registered for. Results are
	// then ordered by registration time.
	VolunteerID string

	Status   EventStatus
	Category EventCategory
}

// ImageObject is a stored event image opened for reading. The caller must
// close Body.
type ImageObject struct {
	ContentType string
	Size        int64
	Body        io.ReadCloser
}
