package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-volunteer-hub/models"
)

const (
	usernameUniqueConstraint = "users_username_key"
	rosterPrimaryKey         = "event_volunteers_pkey"
)

// psql builds PostgreSQL ($1, $2, ...) placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	createUser = `INSERT INTO users (user_id, username, email, password_hash, role)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING created_at;`

	// registered_events and created_events are comma separated id lists.
	selectUsers = `SELECT u.user_id, u.username, u.email, u.password_hash, u.role, u.created_at,
        COALESCE((SELECT string_agg(r.event_id, ',' ORDER BY r.seq)
            FROM event_volunteers r WHERE r.user_id = u.user_id), '') AS registered_events,
        COALESCE((SELECT string_agg(c.event_id, ',' ORDER BY c.created_at, c.event_id)
            FROM events c WHERE c.organizer_id = u.user_id), '') AS created_events
    FROM users u`

	findUserByID       = selectUsers + ` WHERE u.user_id = $1;`
	findUserByUsername = selectUsers + ` WHERE u.username = $1;`
	findUserByEmail    = selectUsers + ` WHERE u.email = $1 ORDER BY u.created_at LIMIT 1;`
	listUsersExcept    = selectUsers + ` WHERE u.user_id <> $1 ORDER BY u.created_at, u.user_id;`

	userExists = `SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1);`

	createEvent = `INSERT INTO events (
            event_id,
            title,
            description,
            location,
            category,
            image,
            impact,
            date,
            status,
            organizer_id,
            required_volunteers
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING created_at, updated_at;`

	// updateEventStatusQuery returns the updated id (NULL when the status
	// did not match) and the current status (NULL when the event is missing).
	updateEventStatusQuery = `WITH target AS (
            SELECT status FROM events WHERE event_id = $1
        ), updated AS (
            UPDATE events SET status = $3, updated_at = NOW()
            WHERE event_id = $1 AND status = $2
            RETURNING event_id
        )
        SELECT (SELECT event_id FROM updated), (SELECT status FROM target);`

	// takeRosterSeat reserves one seat. The row lock it takes serializes
	// concurrent registrations for the same event.
	takeRosterSeat = `UPDATE events
        SET registered_count = registered_count + 1, updated_at = NOW()
        WHERE event_id = $1
            AND status IN ('upcoming', 'ongoing')
            AND registered_count < required_volunteers
        RETURNING event_id;`

	// diagnoseRegistration explains why takeRosterSeat updated nothing.
	diagnoseRegistration = `SELECT e.status, e.registered_count, e.required_volunteers,
            EXISTS (SELECT 1 FROM event_volunteers r WHERE r.event_id = e.event_id AND r.user_id = $2)
        FROM events e
        WHERE e.event_id = $1;`

	insertRosterEntry = `INSERT INTO event_volunteers (
            event_id,
            user_id,
            skills,
            experience,
            motivation,
            availability,
            applied_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7);`

	deleteRosterEntry = `DELETE FROM event_volunteers WHERE event_id = $1 AND user_id = $2;`

	releaseRosterSeat = `UPDATE events
        SET registered_count = registered_count - 1, updated_at = NOW()
        WHERE event_id = $1;`

	eventExists = `SELECT EXISTS (SELECT 1 FROM events WHERE event_id = $1);`

	listApplications = `SELECT r.event_id, r.user_id, u.username, u.email,
            r.skills, r.experience, r.motivation, r.availability, r.applied_at
        FROM event_volunteers r
        JOIN users u ON u.user_id = r.user_id
        WHERE r.event_id = $1
        ORDER BY r.seq;`
)

// eventColumns are scanned by scanEvent in this order.
var eventColumns = []string{
	"e.event_id",
	"e.title",
	"e.description",
	"e.location",
	"e.category",
	"e.image",
	"e.impact",
	"e.date",
	"e.status",
	"e.organizer_id",
	"e.required_volunteers",
	"e.created_at",
	"e.updated_at",
	`COALESCE((SELECT string_agg(v.user_id, ',' ORDER BY v.seq)
        FROM event_volunteers v WHERE v.event_id = e.event_id), '') AS registered_volunteers`,
}

// buildSelectEventsQuery builds the event listing for filter. Events are
// ordered by date unless filter.VolunteerID is set, in which case they
// follow registration order.
func buildSelectEventsQuery(filter models.EventFilter) (string, []any, error) {
	builder := psql.Select(eventColumns...).From("events e")

	if filter.VolunteerID != "" {
		builder = builder.
			Join("event_volunteers r ON r.event_id = e.event_id").
			Where(sq.Eq{"r.user_id": filter.VolunteerID}).
			OrderBy("r.seq")
	} else {
		builder = builder.OrderBy("e.date", "e.event_id")
	}

	if filter.OrganizerID != "" {
		builder = builder.Where(sq.Eq{"e.organizer_id": filter.OrganizerID})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"e.status": string(filter.Status)})
	}
	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"e.category": string(filter.Category)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildGetEventQuery selects a single event by id.
func buildGetEventQuery(eventID string) (string, []any, error) {
	query, args, err := psql.Select(eventColumns...).
		From("events e").
		Where(sq.Eq{"e.event_id": eventID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateUserQuery builds the partial profile update. A new email is
// only written when no other user has it; the statement then updates no
// row and the caller reports ErrEmailTaken.
func buildUpdateUserQuery(userID string, patch models.ProfilePatch) (string, []any, error) {
	if patch.Empty() {
		return "", nil, fmt.Errorf("%w: empty profile patch", ErrBuildingSQLQuery)
	}

	builder := psql.Update("users").Where(sq.Eq{"user_id": userID})

	if patch.Username != nil {
		builder = builder.Set("username", *patch.Username)
	}
	if patch.Email != nil {
		builder = builder.
			Set("email", *patch.Email).
			Where(sq.Expr("NOT EXISTS (SELECT 1 FROM users o WHERE o.email = ? AND o.user_id <> ?)", *patch.Email, userID))
	}

	query, args, err := builder.Suffix("RETURNING user_id").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// splitIDs turns a string_agg result into a slice. The empty string yields
// an empty, non-nil slice.
func splitIDs(joined string) []string {
	if joined == "" {
		return []string{}
	}
	return strings.Split(joined, ",")
}
