// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-volunteer-hub/internal/logger"
	"github.com/MKhiriev/go-volunteer-hub/models"
	"github.com/jackc/pgerrcode"
)

// eventRepository is the PostgreSQL-backed implementation of
// [EventRepository]. Events live in the "events" table; the roster and the
// volunteer applications live in "event_volunteers", one row per
// (event, user) pair.
//
// events.registered_count mirrors the roster size. Registration and
// withdrawal change both inside one transaction, and a CHECK constraint
// keeps registered_count within [0, required_volunteers].
type eventRepository struct {
	*DB
	logger *logger.Logger
}

// NewEventRepository constructs an [EventRepository] backed by db.
func NewEventRepository(db *DB, logger *logger.Logger) EventRepository {
	logger.Debug().Msg("creating event repository")
	return &eventRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateEvent inserts event and returns it with the timestamps assigned by
// the database and an empty roster.
func (e *eventRepository) CreateEvent(ctx context.Context, event models.Event) (models.Event, error) {
	log := logger.FromContext(ctx)

	err := e.DB.QueryRowContext(ctx, createEvent,
		event.EventID,
		event.Title,
		event.Description,
		event.Location,
		string(event.Category),
		event.Image,
		event.Impact,
		event.Date,
		string(event.Status),
		event.Organizer,
		event.RequiredVolunteers,
	).Scan(&event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "eventRepository.CreateEvent").
			Str("organizer_id", event.Organizer).
			Bool("retryable", e.retryable(err)).
			Msg("failed to insert event")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Event{}, ErrUserNotFound
		}
		return models.Event{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	event.RegisteredVolunteers = []string{}

	return event, nil
}

// GetEvent returns the event with its roster in registration order.
func (e *eventRepository) GetEvent(ctx context.Context, eventID string) (models.Event, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetEventQuery(eventID)
	if err != nil {
		log.Err(err).Str("func", "eventRepository.GetEvent").Msg("failed to create query")
		return models.Event{}, err
	}

	event, err := scanEvent(e.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "eventRepository.GetEvent").Str("event_id", eventID).Msg("event not found")
		return models.Event{}, ErrEventNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "eventRepository.GetEvent").
			Str("event_id", eventID).
			Bool("retryable", e.retryable(err)).
			Msg("failed to query event")
		return models.Event{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return event, nil
}

// ListEvents returns events matching filter.
func (e *eventRepository) ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEventsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "eventRepository.ListEvents").Msg("failed to create query")
		return nil, err
	}

	rows, err := e.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "eventRepository.ListEvents").
			Bool("retryable", e.retryable(err)).
			Msg("failed to execute query for listing events")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	events := make([]models.Event, 0, 16)
	for rows.Next() {
		event, scanErr := scanEvent(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "eventRepository.ListEvents").Msg("failed to scan event row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		events = append(events, event)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "eventRepository.ListEvents").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return events, nil
}

// UpdateEventStatus performs a compare-and-set of the event status.
//
// It executes the CTE-based [updateEventStatusQuery] that returns both the
// updated id and the current status, so "not found" (both NULL) is told
// apart from "status changed meanwhile" (updated id NULL).
func (e *eventRepository) UpdateEventStatus(ctx context.Context, eventID string, from, to models.EventStatus) (models.Event, error) {
	log := logger.FromContext(ctx)

	var updatedID *string
	var currentStatus *string

	err := e.DB.QueryRowContext(ctx, updateEventStatusQuery, eventID, string(from), string(to)).Scan(&updatedID, &currentStatus)
	if err != nil {
		log.Err(err).
			Str("func", "eventRepository.UpdateEventStatus").
			Str("event_id", eventID).
			Bool("retryable", e.retryable(err)).
			Msg("failed to execute status update query")
		return models.Event{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	// not found: target empty -> both NULL
	if currentStatus == nil {
		return models.Event{}, ErrEventNotFound
	}

	// found but not updated -> status mismatch
	if updatedID == nil {
		log.Warn().
			Str("func", "eventRepository.UpdateEventStatus").
			Str("event_id", eventID).
			Str("expected_status", string(from)).
			Str("db_status", *currentStatus).
			Msg("status changed concurrently")
		return models.Event{}, ErrStatusChanged
	}

	log.Info().
		Str("func", "eventRepository.UpdateEventStatus").
		Str("event_id", eventID).
		Str("from", string(from)).
		Str("to", string(to)).
		Msg("event status updated")

	return e.GetEvent(ctx, eventID)
}

// RegisterVolunteer adds application.UserID to the roster.
//
// The transaction first reserves a seat with [takeRosterSeat]. When no seat
// is taken, [diagnoseRegistration] tells which rule failed, checked in the
// order: not found, closed, full, already registered. The roster primary key
// rejects a duplicate that slips past the seat reservation.
func (e *eventRepository) RegisterVolunteer(ctx context.Context, application models.Application) (models.Event, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "eventRepository.RegisterVolunteer").
		Str("event_id", application.EventID).
		Str("user_id", application.UserID).
		Logger()

	tx, err := e.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return models.Event{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var reservedID string
	err = tx.QueryRowContext(ctx, takeRosterSeat, application.EventID).Scan(&reservedID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Event{}, e.diagnoseRegistration(ctx, tx, application.EventID, application.UserID)
	}
	if err != nil {
		log.Err(err).Bool("retryable", e.retryable(err)).Msg("failed to reserve roster seat")
		return models.Event{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	_, err = tx.ExecContext(ctx, insertRosterEntry,
		application.EventID,
		application.UserID,
		application.Skills,
		application.Experience,
		application.Motivation,
		string(application.Availability),
		application.AppliedAt,
	)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Warn().Msg("user already on roster")
			return models.Event{}, ErrAlreadyRegistered
		case pgerrcode.ForeignKeyViolation:
			log.Warn().Msg("user does not exist")
			return models.Event{}, ErrUserNotFound
		}
		log.Err(err).Bool("retryable", e.retryable(err)).Msg("failed to insert roster entry")
		return models.Event{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Msg("failed to commit transaction")
		return models.Event{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().Msg("volunteer registered")

	return e.GetEvent(ctx, application.EventID)
}

func (e *eventRepository) diagnoseRegistration(ctx context.Context, tx *sql.Tx, eventID, userID string) error {
	var (
		status     string
		registered int
		required   int
		onRoster   bool
	)

	err := tx.QueryRowContext(ctx, diagnoseRegistration, eventID, userID).Scan(&status, &registered, &required, &onRoster)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrEventNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "eventRepository.diagnoseRegistration").
			Str("event_id", eventID).
			Msg("failed to diagnose registration")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	case !models.EventStatus(status).AcceptsVolunteers():
		return ErrEventClosed
	case registered >= required:
		return ErrEventFull
	case onRoster:
		return ErrAlreadyRegistered
	}

	// The seat was released between the two statements; report it as full
	// rather than retrying.
	return ErrEventFull
}

// WithdrawVolunteer removes userID from the roster and releases the seat.
func (e *eventRepository) WithdrawVolunteer(ctx context.Context, eventID, userID string) (models.Event, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "eventRepository.WithdrawVolunteer").
		Str("event_id", eventID).
		Str("user_id", userID).
		Logger()

	tx, err := e.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return models.Event{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, deleteRosterEntry, eventID, userID)
	if err != nil {
		log.Err(err).Bool("retryable", e.retryable(err)).Msg("failed to delete roster entry")
		return models.Event{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Msg("failed to read affected rows")
		return models.Event{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if deleted == 0 {
		var exists bool
		if err := tx.QueryRowContext(ctx, eventExists, eventID).Scan(&exists); err != nil {
			log.Err(err).Msg("failed to check event existence")
			return models.Event{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if !exists {
			return models.Event{}, ErrEventNotFound
		}
		return models.Event{}, ErrNotRegistered
	}

	if _, err := tx.ExecContext(ctx, releaseRosterSeat, eventID); err != nil {
		log.Err(err).Bool("retryable", e.retryable(err)).Msg("failed to release roster seat")
		return models.Event{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Msg("failed to commit transaction")
		return models.Event{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().Msg("volunteer withdrew")

	return e.GetEvent(ctx, eventID)
}

// ListApplications returns the applications of eventID joined with the
// applicant's username and email, in roster order.
func (e *eventRepository) ListApplications(ctx context.Context, eventID string) ([]models.Application, error) {
	log := logger.FromContext(ctx)

	rows, err := e.DB.QueryContext(ctx, listApplications, eventID)
	if err != nil {
		log.Err(err).
			Str("func", "eventRepository.ListApplications").
			Str("event_id", eventID).
			Bool("retryable", e.retryable(err)).
			Msg("failed to execute query for listing applications")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	applications := make([]models.Application, 0, 16)
	for rows.Next() {
		var (
			application  models.Application
			availability string
		)

		scanErr := rows.Scan(
			&application.EventID,
			&application.UserID,
			&application.Name,
			&application.Email,
			&application.Skills,
			&application.Experience,
			&application.Motivation,
			&availability,
			&application.AppliedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "eventRepository.ListApplications").Msg("failed to scan application row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		application.Availability = models.Availability(availability)
		applications = append(applications, application)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "eventRepository.ListApplications").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return applications, nil
}

func scanEvent(row rowScanner) (models.Event, error) {
	var (
		event      models.Event
		category   string
		status     string
		volunteers string
	)

	err := row.Scan(
		&event.EventID,
		&event.Title,
		&event.Description,
		&event.Location,
		&category,
		&event.Image,
		&event.Impact,
		&event.Date,
		&status,
		&event.Organizer,
		&event.RequiredVolunteers,
		&event.CreatedAt,
		&event.UpdatedAt,
		&volunteers,
	)
	if err != nil {
		return models.Event{}, err
	}

	event.Category = models.EventCategory(category)
	event.Status = models.EventStatus(status)
	event.RegisteredVolunteers = splitIDs(volunteers)

	return event, nil
}
