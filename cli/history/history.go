// Copyright (c) Qualcomm Technologies, Inc. and/or its subsidiaries.
// SPDX-License-Identifier: BSD-3-Clause-Clear

// Package history keeps a local record of scheduled runs so later commands
// (show, artifacts) can resolve a run without the user re-pasting its ARN.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	arn TEXT NOT NULL PRIMARY KEY,
	name TEXT NOT NULL,
	project TEXT NOT NULL,
	scheduled_at INTEGER NOT NULL,
	status TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS runs_scheduled_at ON runs (scheduled_at);
`

type Run struct {
	Arn         string
	Name        string
	Project     string
	ScheduledAt time.Time
	Status      string
}

type Store struct {
	db *sql.DB
}

// Open creates the history database (and its parent directory) if needed.
func Open(dbfile string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbfile), 0o755); err != nil {
		return nil, fmt.Errorf("unable to initialize history storage: %w", err)
	}
	db, err := sql.Open("sqlite3", dbfile+"?_journal=WAL")
	if err != nil {
		return nil, fmt.Errorf("unable to open history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("unable to initialize history database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Add records a newly scheduled run.
func (s *Store) Add(r Run) error {
	_, err := s.db.Exec(
		"INSERT INTO runs (arn, name, project, scheduled_at, status) VALUES (?, ?, ?, ?, ?)",
		r.Arn, r.Name, r.Project, r.ScheduledAt.Unix(), r.Status)
	if err != nil {
		return fmt.Errorf("unable to record run %s: %w", r.Arn, err)
	}
	return nil
}

// SetStatus updates the recorded status of a run. Unknown ARNs are ignored.
func (s *Store) SetStatus(arn, status string) error {
	if _, err := s.db.Exec("UPDATE runs SET status = ? WHERE arn = ?", status, arn); err != nil {
		return fmt.Errorf("unable to update run %s: %w", arn, err)
	}
	return nil
}

// List returns up to limit runs, most recently scheduled first.
func (s *Store) List(limit int) ([]Run, error) {
	rows, err := s.db.Query(
		"SELECT arn, name, project, scheduled_at, status FROM runs ORDER BY scheduled_at DESC, arn LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("unable to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ts int64
		if err := rows.Scan(&r.Arn, &r.Name, &r.Project, &ts, &r.Status); err != nil {
			return nil, fmt.Errorf("unable to list runs: %w", err)
		}
		r.ScheduledAt = time.Unix(ts, 0)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Latest returns the most recently scheduled run, or nil when the history is
// empty.
func (s *Store) Latest() (*Run, error) {
	runs, err := s.List(1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}
