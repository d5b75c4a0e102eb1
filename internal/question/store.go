// Package question persists the extracted question bank. Every backend
// replaces the whole bank on Save and returns it in saved order on Load.
package question

import (
	"context"
	"errors"

	"github.com/mind-engage/mindengage-mcq/internal/mcq"
)

var ErrUnknownBackend = errors.New("question: unknown store backend")

type Store interface {
	Load(ctx context.Context) ([]mcq.Question, error)
	Save(ctx context.Context, qs []mcq.Question) error
	Clear(ctx context.Context) error
}

// StripAnswers returns a copy of qs with correct answers removed, for
// serving an exam to the person taking it.
func StripAnswers(qs []mcq.Question) []mcq.Question {
	out := mcq.CloneAll(qs)
	for i := range out {
		out[i].CorrectAnswer = ""
	}
	return out
}
