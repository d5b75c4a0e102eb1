// Package eventlog appends domain events (imports, clears, submissions) to
// the event_log table.
package eventlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

const (
	TypeQuestionsImported = "questions_imported"
	TypeQuestionsCleared  = "questions_cleared"
	TypeExamSubmitted     = "exam_submitted"
)

type Event struct {
	Seq       int64
	SiteID    string
	Type      string
	Key       string
	DataJSON  string
	CreatedAt int64
}

type Appender interface {
	Append(ctx context.Context, e Event) error
}

type Reader interface {
	Recent(ctx context.Context, limit int) ([]Event, error)
}

// Discard drops every event.
var Discard Appender = discard{}

type discard struct{}

func (discard) Append(context.Context, Event) error { return nil }

// NewEvent marshals data into an event; a nil data becomes "{}".
func NewEvent(typ, key string, data any) Event {
	b, err := json.Marshal(data)
	if err != nil || data == nil {
		b = []byte("{}")
	}
	return Event{SiteID: "local", Type: typ, Key: key, DataJSON: string(b)}
}

type SQLRepo struct{ db *sql.DB }

func NewSQLRepo(db *sql.DB) *SQLRepo { return &SQLRepo{db: db} }

func (r *SQLRepo) Append(ctx context.Context, e Event) error {
	if e.SiteID == "" {
		e.SiteID = "local"
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO event_log (site_id, typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		e.SiteID, e.Type, e.Key, e.DataJSON, time.Now().Unix())
	return err
}

// Recent returns up to limit events, newest first. A non-positive limit
// means 50.
func (r *SQLRepo) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT seq, site_id, typ, key, data, created_at FROM event_log ORDER BY seq DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Seq, &e.SiteID, &e.Type, &e.Key, &e.DataJSON, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
