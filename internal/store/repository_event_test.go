// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-volunteer-hub/internal/logger"
	"github.com/MKhiriev/go-volunteer-hub/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eventRowColumns = []string{
	"event_id", "title", "description", "location", "category", "image", "impact",
	"date", "status", "organizer_id", "required_volunteers", "created_at", "updated_at",
	"registered_volunteers",
}

const (
	seatQuery     = "SET registered_count = registered_count + 1"
	diagnoseQuery = "EXISTS (SELECT 1 FROM event_volunteers r WHERE r.event_id = e.event_id AND r.user_id = $2)"
	getEventQuery = "FROM events e WHERE e.event_id = $1"
)

func newTestEventRepo(t *testing.T) (*eventRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	return &eventRepository{DB: newDB(db, l), logger: l}, mock
}

func eventRow(id string, status models.EventStatus, required int, volunteers string) *sqlmock.Rows {
	date := time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(eventRowColumns).AddRow(
		id, "Beach cleanup", "Collect litter", "Riga", "cleaning", "", "Cleaner beach",
		date, string(status), "org1", required, date, date, volunteers,
	)
}

func testApplication() models.Application {
	return models.Application{
		EventID:      "e1",
		UserID:       "u1",
		Skills:       "first aid",
		Motivation:   "help",
		Availability: models.AvailabilityWeekends,
		AppliedAt:    time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}
}

// ─── CreateEvent / GetEvent / ListEvents ────────────────────────────────────

func TestCreateEvent_Success(t *testing.T) {
	repo, mock := newTestEventRepo(t)

	now := time.Now()
	event := models.Event{
		EventID:            "e1",
		Title:              "Beach cleanup",
		Category:           models.CategoryCleaning,
		Status:             models.EventUpcoming,
		Organizer:          "org1",
		RequiredVolunteers: 3,
		Date:               now.Add(24 * time.Hour),
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO events")).
		WithArgs("e1", "Beach cleanup", "", "", "cleaning", "", "", event.Date, "upcoming", "org1", 3).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.CreateEvent(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	assert.Equal(t, []string{}, created.RegisteredVolunteers)
}

func TestCreateEvent_UnknownOrganizer(t *testing.T) {
	repo, mock := newTestEventRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO events")).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateEvent(context.Background(), models.Event{EventID: "e1"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetEvent_Success(t *testing.T) {
	repo, mock := newTestEventRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(getEventQuery)).
		WithArgs("e1").
		WillReturnRows(eventRow("e1", models.EventOngoing, 5, "u2,u1"))

	event, err := repo.GetEvent(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, models.EventOngoing, event.Status)
	assert.Equal(t, models.CategoryCleaning, event.Category)
	assert.Equal(t, []string{"u2", "u1"}, event.RegisteredVolunteers)
	assert.Equal(t, 5, event.RequiredVolunteers)
}

func TestGetEvent_NotFound(t *testing.T) {
	repo, mock := newTestEventRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(getEventQuery)).
		WillReturnRows(sqlmock.NewRows(eventRowColumns))

	_, err := repo.GetEvent(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestListEvents_ByVolunteer(t *testing.T) {
	repo, mock := newTestEventRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("JOIN event_volunteers r ON r.event_id = e.event_id WHERE r.user_id = $1 ORDER BY r.seq")).
		WithArgs("u1").
		WillReturnRows(eventRow("e1", models.EventUpcoming, 2, "u1"))

	events, err := repo.ListEvents(context.Background(), models.EventFilter{VolunteerID: "u1"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "e1", events[0].EventID)
}

func TestListEvents_QueryError(t *testing.T) {
	repo, mock := newTestEventRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM events e")).WillReturnError(errors.New("boom"))

	_, err := repo.ListEvents(context.Background(), models.EventFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ─── UpdateEventStatus ──────────────────────────────────────────────────────

func TestUpdateEventStatus_Success(t *testing.T) {
	repo, mock := newTestEventRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE events SET status = $3")).
		WithArgs("e1", "upcoming", "ongoing").
		WillReturnRows(sqlmock.NewRows([]string{"updated", "status"}).AddRow("e1", "upcoming"))
	mock.ExpectQuery(regexp.QuoteMeta(getEventQuery)).
		WillReturnRows(eventRow("e1", models.EventOngoing, 2, ""))

	event, err := repo.UpdateEventStatus(context.Background(), "e1", models.EventUpcoming, models.EventOngoing)
	require.NoError(t, err)
	assert.Equal(t, models.EventOngoing, event.Status)
}

func TestUpdateEventStatus_NotFound(t *testing.T) {
	repo, mock := newTestEventRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE events SET status = $3")).
		WillReturnRows(sqlmock.NewRows([]string{"updated", "status"}).AddRow(nil, nil))

	_, err := repo.UpdateEventStatus(context.Background(), "e1", models.EventUpcoming, models.EventOngoing)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestUpdateEventStatus_Changed(t *testing.T) {
	repo, mock := newTestEventRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE events SET status = $3")).
		WillReturnRows(sqlmock.NewRows([]string{"updated", "status"}).AddRow(nil, "cancelled"))

	_, err := repo.UpdateEventStatus(context.Background(), "e1", models.EventUpcoming, models.EventOngoing)
	assert.ErrorIs(t, err, ErrStatusChanged)
}

// ─── RegisterVolunteer ──────────────────────────────────────────────────────

func TestRegisterVolunteer_Success(t *testing.T) {
	repo, mock := newTestEventRepo(t)
	app := testApplication()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(seatQuery)).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"event_id"}).AddRow("e1"))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO event_volunteers")).
		WithArgs("e1", "u1", "first aid", "", "help", "Weekends only", app.AppliedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta(getEventQuery)).
		WithArgs("e1").
		WillReturnRows(eventRow("e1", models.EventUpcoming, 2, "u0,u1"))

	event, err := repo.RegisterVolunteer(context.Background(), app)
	require.NoError(t, err)
	assert.Equal(t, []string{"u0", "u1"}, event.RegisteredVolunteers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestRegisterVolunteer_LastSeat plays two registrations for the final seat
// in the order the row lock serializes them: the first UPDATE reserves the
// seat, the second matches no row and is reported as full.
func TestRegisterVolunteer_LastSeat(t *testing.T) {
	repo, mock := newTestEventRepo(t)
	ctx := context.Background()

	first := testApplication()
	second := testApplication()
	second.UserID = "u2"

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(seatQuery)).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"event_id"}).AddRow("e1"))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO event_volunteers")).
		WithArgs("e1", "u1", "first aid", "", "help", "Weekends only", first.AppliedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta(getEventQuery)).
		WithArgs("e1").
		WillReturnRows(eventRow("e1", models.EventUpcoming, 1, "u1"))

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(seatQuery)).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"event_id"}))
	mock.ExpectQuery(regexp.QuoteMeta(diagnoseQuery)).
		WithArgs("e1", "u2").
		WillReturnRows(sqlmock.NewRows([]string{"status", "registered", "required", "on_roster"}).AddRow("upcoming", 1, 1, false))
	mock.ExpectRollback()

	event, err := repo.RegisterVolunteer(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, event.RegisteredVolunteers)

	_, err = repo.RegisterVolunteer(ctx, second)
	assert.ErrorIs(t, err, ErrEventFull)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTakeRosterSeat_GuardsCapacityAndStatus(t *testing.T) {
	assert.Contains(t, takeRosterSeat, "registered_count < required_volunteers")
	assert.Contains(t, takeRosterSeat, "status IN ('upcoming', 'ongoing')")
	assert.Contains(t, takeRosterSeat, "WHERE event_id = $1")
}

func TestRegisterVolunteer_Diagnostics(t *testing.T) {
	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		wantErr error
	}{
		{
			name:    "event missing",
			rows:    sqlmock.NewRows([]string{"status", "registered", "required", "on_roster"}),
			wantErr: ErrEventNotFound,
		},
		{
			name:    "event completed",
			rows:    sqlmock.NewRows([]string{"status", "registered", "required", "on_roster"}).AddRow("completed", 0, 5, false),
			wantErr: ErrEventClosed,
		},
		{
			name:    "event cancelled and full",
			rows:    sqlmock.NewRows([]string{"status", "registered", "required", "on_roster"}).AddRow("cancelled", 5, 5, false),
			wantErr: ErrEventClosed,
		},
		{
			name:    "event full",
			rows:    sqlmock.NewRows([]string{"status", "registered", "required", "on_roster"}).AddRow("upcoming", 1, 1, false),
			wantErr: ErrEventFull,
		},
		{
			name:    "full and already registered",
			rows:    sqlmock.NewRows([]string{"status", "registered", "required", "on_roster"}).AddRow("ongoing", 1, 1, true),
			wantErr: ErrEventFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestEventRepo(t)

			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(seatQuery)).
				WillReturnRows(sqlmock.NewRows([]string{"event_id"}))
			mock.ExpectQuery(regexp.QuoteMeta(diagnoseQuery)).
				WithArgs("e1", "u1").
				WillReturnRows(tt.rows)
			mock.ExpectRollback()

			_, err := repo.RegisterVolunteer(context.Background(), testApplication())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRegisterVolunteer_AlreadyRegistered(t *testing.T) {
	repo, mock := newTestEventRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(seatQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"event_id"}).AddRow("e1"))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO event_volunteers")).
		WillReturnError(pgConstraintError(pgerrcode.UniqueViolation, rosterPrimaryKey))
	mock.ExpectRollback()

	_, err := repo.RegisterVolunteer(context.Background(), testApplication())
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterVolunteer_BeginFails(t *testing.T) {
	repo, mock := newTestEventRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	_, err := repo.RegisterVolunteer(context.Background(), testApplication())
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestRegisterVolunteer_CommitFails(t *testing.T) {
	repo, mock := newTestEventRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(seatQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"event_id"}).AddRow("e1"))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO event_volunteers")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(pgError(pgerrcode.SerializationFailure))

	_, err := repo.RegisterVolunteer(context.Background(), testApplication())
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

// ─── WithdrawVolunteer ──────────────────────────────────────────────────────

func TestWithdrawVolunteer_Success(t *testing.T) {
	repo, mock := newTestEventRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM event_volunteers")).
		WithArgs("e1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("SET registered_count = registered_count - 1")).
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta(getEventQuery)).
		WillReturnRows(eventRow("e1", models.EventUpcoming, 2, ""))

	event, err := repo.WithdrawVolunteer(context.Background(), "e1", "u1")
	require.NoError(t, err)
	assert.Empty(t, event.RegisteredVolunteers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawVolunteer_NotRegistered(t *testing.T) {
	repo, mock := newTestEventRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM event_volunteers")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM events WHERE event_id = $1)")).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err := repo.WithdrawVolunteer(context.Background(), "e1", "u1")
	assert.ErrorIs(t, err, ErrNotRegistered)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawVolunteer_EventMissing(t *testing.T) {
	repo, mock := newTestEventRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM event_volunteers")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	_, err := repo.WithdrawVolunteer(context.Background(), "missing", "u1")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

// ─── ListApplications ───────────────────────────────────────────────────────

func TestListApplications_Success(t *testing.T) {
	repo, mock := newTestEventRepo(t)

	applied := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY r.seq")).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{
			"event_id", "user_id", "username", "email", "skills", "experience", "motivation", "availability", "applied_at",
		}).
			AddRow("e1", "u1", "ann", "ann@x.y", "cooking", "2 years", "fun", "Flexible", applied).
			AddRow("e1", "u2", "bob", "bob@x.y", "", "", "", "", applied))

	apps, err := repo.ListApplications(context.Background(), "e1")
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, models.Application{
		EventID:      "e1",
		UserID:       "u1",
		Name:         "ann",
		Email:        "ann@x.y",
		Skills:       "cooking",
		Experience:   "2 years",
		Motivation:   "fun",
		Availability: models.AvailabilityFlexible,
		AppliedAt:    applied,
	}, apps[0])
	assert.Equal(t, models.AvailabilityUnspecified, apps[1].Availability)
}
