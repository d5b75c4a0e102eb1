package question

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mind-engage/mindengage-mcq/internal/db"
	"github.com/mind-engage/mindengage-mcq/internal/mcq"
)

// SQL stores the bank in the questions table; seq keeps the saved order.
type SQL struct {
	db *sql.DB
}

func NewSQL(dbh *sql.DB) *SQL { return &SQL{db: dbh} }

func (s *SQL) Load(ctx context.Context) ([]mcq.Question, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT question_id,text,options_json,correct_answer FROM questions ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("question: query: %w", err)
	}
	defer rows.Close()

	out := []mcq.Question{}
	for rows.Next() {
		var q mcq.Question
		var ojson string
		if err := rows.Scan(&q.ID, &q.Text, &ojson, &q.CorrectAnswer); err != nil {
			return nil, fmt.Errorf("question: scan: %w", err)
		}
		if err := json.Unmarshal([]byte(ojson), &q.Options); err != nil {
			return nil, fmt.Errorf("question: decode options: %w", err)
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *SQL) Save(ctx context.Context, qs []mcq.Question) error {
	return db.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM questions`); err != nil {
			return err
		}
		for i, q := range qs {
			oj, err := json.Marshal(q.Options)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO questions (seq,question_id,text,options_json,correct_answer) VALUES ($1,$2,$3,$4,$5)`,
				i, q.ID, q.Text, string(oj), q.CorrectAnswer); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQL) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM questions`)
	return err
}
