// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose issues its own queries; none are expected

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

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "*.sql")
	if err != nil {
		t.Fatalf("failed to list embedded migrations: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("expected at least one embedded migration")
	}

	body, err := fs.ReadFile(embedMigrations, files[0])
	if err != nil {
		t.Fatalf("failed to read %s: %v", files[0], err)
	}
	for _, want := range []string{"-- +goose Up", "-- +goose Down", "employee_id  TEXT   NOT NULL UNIQUE"} {
		if !strings.Contains(string(body), want) {
			t.Errorf("expected %s to contain %q", files[0], want)
		}
	}
}
