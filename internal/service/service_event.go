// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/MKhiriev/go-volunteer-hub/internal/logger"
	"github.com/MKhiriev/go-volunteer-hub/internal/store"
	"github.com/MKhiriev/go-volunteer-hub/internal/validators"
	"github.com/MKhiriev/go-volunteer-hub/models"
)

// imageExtensions lists the accepted image content types and the object
// key extension stored for each.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// eventService is the concrete implementation of EventService.
//
// Capacity and status rules of the roster are enforced by the
// EventRepository inside one transaction; the service validates input,
// checks ownership and translates store errors.
type eventService struct {
	eventRepository store.EventRepository
	userRepository  store.UserRepository
	images          store.ImageStorage
	ids             IDGenerator
	validator       validators.Validator

	// now is replaced in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewEventService constructs an EventService.
func NewEventService(
	eventRepository store.EventRepository,
	userRepository store.UserRepository,
	images store.ImageStorage,
	ids IDGenerator,
	logger *logger.Logger,
) EventService {
	return &eventService{
		eventRepository: eventRepository,
		userRepository:  userRepository,
		images:          images,
		ids:             ids,
		validator:       validators.NewRequestValidator(),
		now:             time.Now,
		logger:          logger,
	}
}

// CreateEvent stores a new upcoming event owned by organizerID. The
// optional image is uploaded first and the event keeps its object key.
//
// Returns:
//   - ErrForbidden if organizerID does not have the organizer role.
//   - ErrBadRequest if a field is missing or the image type is unsupported.
func (s *eventService) CreateEvent(ctx context.Context, organizerID string, req models.CreateEventRequest, image *models.EventImage) (models.Event, error) {
	log := logger.FromContext(ctx)

	organizer, err := s.userRepository.FindUserByID(ctx, organizerID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Event{}, fmt.Errorf("%w: user not found", ErrNotFound)
	}
	if err != nil {
		log.Err(err).Str("func", "eventService.CreateEvent").Str("user_id", organizerID).Msg("user search by id failed")
		return models.Event{}, fmt.Errorf("user search by id failed: %w", err)
	}
	if organizer.Role != models.RoleOrganizer {
		return models.Event{}, fmt.Errorf("%w: only organizers can create events", ErrForbidden)
	}

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Event{}, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	event := models.Event{
		EventID:            s.ids.Generate(),
		Title:              strings.TrimSpace(req.Title),
		Description:        strings.TrimSpace(req.Description),
		Location:           strings.TrimSpace(req.Location),
		Category:           req.Category,
		Impact:             strings.TrimSpace(req.Impact),
		Date:               req.Date.UTC(),
		Status:             models.EventUpcoming,
		Organizer:          organizerID,
		RequiredVolunteers: req.RequiredVolunteers,
	}

	if image != nil {
		key, err := s.storeImage(ctx, event.EventID, *image)
		if err != nil {
			return models.Event{}, err
		}
		event.Image = key
	}

	created, err := s.eventRepository.CreateEvent(ctx, event)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.Event{}, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		log.Err(err).Str("func", "eventService.CreateEvent").Str("image", event.Image).Msg("event creation ended with error")
		return models.Event{}, fmt.Errorf("event creation ended with error: %w", err)
	}

	log.Info().
		Str("func", "eventService.CreateEvent").
		Str("event_id", created.EventID).
		Str("organizer_id", organizerID).
		Msg("event created")

	return created, nil
}

func (s *eventService) storeImage(ctx context.Context, eventID string, image models.EventImage) (string, error) {
	if len(image.Data) == 0 {
		return "", fmt.Errorf("%w: image is empty", ErrBadRequest)
	}

	ext, ok := imageExtensions[image.ContentType]
	if !ok {
		return "", fmt.Errorf("%w: unsupported image type %q", ErrBadRequest, image.ContentType)
	}

	key := path.Join("events", eventID+ext)
	if err := s.images.PutImage(ctx, key, image); err != nil {
		if errors.Is(err, store.ErrImageStorageDisabled) {
			return "", fmt.Errorf("%w: %w", ErrBadRequest, ErrImagesDisabled)
		}
		return "", fmt.Errorf("failed to store event image: %w", err)
	}

	return key, nil
}

func (s *eventService) GetEvent(ctx context.Context, eventID string) (models.Event, error) {
	event, err := s.eventRepository.GetEvent(ctx, eventID)
	if err != nil {
		return models.Event{}, s.mapStoreError(ctx, "eventService.GetEvent", err)
	}
	return event, nil
}

// ListEvents returns all events ordered by date.
func (s *eventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.list(ctx, "eventService.ListEvents", models.EventFilter{})
}

// ListOrganized returns the events created by userID.
func (s *eventService) ListOrganized(ctx context.Context, userID string) ([]models.Event, error) {
	return s.list(ctx, "eventService.ListOrganized", models.EventFilter{OrganizerID: userID})
}

// ListVolunteered returns the events userID registered for, in
// registration order.
func (s *eventService) ListVolunteered(ctx context.Context, userID string) ([]models.Event, error) {
	return s.list(ctx, "eventService.ListVolunteered", models.EventFilter{VolunteerID: userID})
}

func (s *eventService) list(ctx context.Context, fn string, filter models.EventFilter) ([]models.Event, error) {
	events, err := s.eventRepository.ListEvents(ctx, filter)
	if err != nil {
		return nil, s.mapStoreError(ctx, fn, err)
	}
	return events, nil
}

// UpdateStatus moves eventID to status on behalf of its organizer.
//
// Returns:
//   - ErrBadRequest for an unknown status.
//   - ErrForbidden if organizerID does not own the event.
//   - ErrInvalidStatusTransition if the lifecycle forbids the move or the
//     status changed concurrently.
func (s *eventService) UpdateStatus(ctx context.Context, organizerID, eventID string, status models.EventStatus) (models.Event, error) {
	if err := s.validator.Validate(ctx, models.UpdateEventStatusRequest{Status: status}); err != nil {
		return models.Event{}, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	event, err := s.ownedEvent(ctx, organizerID, eventID)
	if err != nil {
		return models.Event{}, err
	}

	if !event.Status.CanTransitionTo(status) {
		return models.Event{}, fmt.Errorf("%w: cannot move event from %s to %s", ErrInvalidStatusTransition, event.Status, status)
	}

	updated, err := s.eventRepository.UpdateEventStatus(ctx, eventID, event.Status, status)
	if err != nil {
		return models.Event{}, s.mapStoreError(ctx, "eventService.UpdateStatus", err)
	}

	return updated, nil
}

// Register adds userID to the roster of eventID together with the
// application detail in req.
//
// Returns ErrNotFound, ErrEventClosed, ErrEventFull or ErrAlreadyRegistered
// when the corresponding rule rejects the registration.
func (s *eventService) Register(ctx context.Context, eventID, userID string, req models.RegisterRequest) (models.Event, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Event{}, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	event, err := s.eventRepository.RegisterVolunteer(ctx, models.Application{
		EventID:      eventID,
		UserID:       userID,
		Skills:       strings.TrimSpace(req.Skills),
		Experience:   strings.TrimSpace(req.Experience),
		Motivation:   strings.TrimSpace(req.Motivation),
		Availability: req.Availability,
		AppliedAt:    s.now().UTC(),
	})
	if err != nil {
		return models.Event{}, s.mapStoreError(ctx, "eventService.Register", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "eventService.Register").
		Str("event_id", eventID).
		Str("user_id", userID).
		Int("registered", len(event.RegisteredVolunteers)).
		Int("required", event.RequiredVolunteers).
		Msg("volunteer registered")

	return event, nil
}

// Withdraw removes userID from the roster of eventID.
func (s *eventService) Withdraw(ctx context.Context, eventID, userID string) (models.Event, error) {
	event, err := s.eventRepository.WithdrawVolunteer(ctx, eventID, userID)
	if err != nil {
		return models.Event{}, s.mapStoreError(ctx, "eventService.Withdraw", err)
	}
	return event, nil
}

// ListApplications returns the applications of eventID to its organizer.
func (s *eventService) ListApplications(ctx context.Context, organizerID, eventID string) ([]models.Application, error) {
	if _, err := s.ownedEvent(ctx, organizerID, eventID); err != nil {
		return nil, err
	}

	applications, err := s.eventRepository.ListApplications(ctx, eventID)
	if err != nil {
		return nil, s.mapStoreError(ctx, "eventService.ListApplications", err)
	}

	return applications, nil
}

func (s *eventService) GetEventImage(ctx context.Context, eventID string) (models.ImageObject, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return models.ImageObject{}, err
	}
	if event.Image == "" {
		return models.ImageObject{}, fmt.Errorf("%w: event has no image", ErrNotFound)
	}

	image, err := s.images.GetImage(ctx, event.Image)
	if err != nil {
		return models.ImageObject{}, s.mapStoreError(ctx, "eventService.GetEventImage", err)
	}

	return image, nil
}

func (s *eventService) ownedEvent(ctx context.Context, organizerID, eventID string) (models.Event, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return models.Event{}, err
	}
	if event.Organizer != organizerID {
		return models.Event{}, fmt.Errorf("%w: only the event organizer can do this", ErrForbidden)
	}
	return event, nil
}

// mapStoreError translates store errors into service errors. Unknown errors
// are logged and returned wrapped.
func (s *eventService) mapStoreError(ctx context.Context, fn string, err error) error {
	switch {
	case errors.Is(err, store.ErrEventNotFound):
		return fmt.Errorf("%w: event not found", ErrNotFound)
	case errors.Is(err, store.ErrUserNotFound):
		return fmt.Errorf("%w: user not found", ErrNotFound)
	case errors.Is(err, store.ErrImageNotFound):
		return fmt.Errorf("%w: image not found", ErrNotFound)
	case errors.Is(err, store.ErrEventClosed):
		return ErrEventClosed
	case errors.Is(err, store.ErrEventFull):
		return ErrEventFull
	case errors.Is(err, store.ErrAlreadyRegistered):
		return ErrAlreadyRegistered
	case errors.Is(err, store.ErrNotRegistered):
		return ErrNotRegistered
	case errors.Is(err, store.ErrStatusChanged):
		return fmt.Errorf("%w: event status changed concurrently", ErrInvalidStatusTransition)
	}

	logger.FromContext(ctx).Err(err).Str("func", fn).Msg("event store call failed")
	return fmt.Errorf("event store call failed: %w", err)
}
