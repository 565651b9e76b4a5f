// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// goose starts by probing its version table.
	mock.ExpectQuery(".*").WillReturnError(errors.New("connection refused"))
	mock.ExpectExec(".*").WillReturnError(errors.New("connection refused"))

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

// ─── embedded files ─────────────────────────────────────────────────────────

func TestEmbeddedMigrations_AreOrderedAndReversible(t *testing.T) {
	names, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)
	require.Equal(t, []string{
		"00001_create_users.sql",
		"00002_create_events.sql",
		"00003_create_event_volunteers.sql",
	}, names)

	for _, name := range names {
		body, err := fs.ReadFile(embedMigrations, name)
		require.NoError(t, err)

		text := string(body)
		assert.Contains(t, text, "-- +goose Up", name)
		assert.Contains(t, text, "-- +goose Down", name)
	}
}

func TestEmbeddedMigrations_Constraints(t *testing.T) {
	users, err := fs.ReadFile(embedMigrations, "00001_create_users.sql")
	require.NoError(t, err)
	assert.Contains(t, string(users), "users_username_key UNIQUE (username)")

	events, err := fs.ReadFile(embedMigrations, "00002_create_events.sql")
	require.NoError(t, err)
	assert.Contains(t, string(events), "registered_count BETWEEN 0 AND required_volunteers")

	roster, err := fs.ReadFile(embedMigrations, "00003_create_event_volunteers.sql")
	require.NoError(t, err)
	assert.Contains(t, string(roster), "PRIMARY KEY (event_id, user_id)")
}
