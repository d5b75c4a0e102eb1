package mcq

// Reason explains why a line or an open record produced no output.
type Reason string

const (
	ReasonNoOptions      Reason = "no_options"
	ReasonNoOpenQuestion Reason = "no_open_question"
)

// Outcome is the result of finalizing an open record: either Emitted with
// a Question, or Discarded with a Reason.
type Outcome struct {
	Emitted  bool
	Question Question
	Reason   Reason
	ID       int // header id of the finalized record, set in both cases
}

// Discard records a question header that never made it to the output.
type Discard struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	Reason Reason `json:"reason"`
}

// partial is the open record between its header and its flush point.
type partial struct {
	id            int
	text          string
	correctAnswer string
}

// finalize is the only gate between an open record and the output: a record
// is emitted iff it has at least one option.
func finalize(p partial, options []string) Outcome {
	if len(options) == 0 {
		return Outcome{Reason: ReasonNoOptions, ID: p.id, Question: Question{ID: p.id, Text: p.text}}
	}
	return Outcome{
		Emitted: true,
		ID:      p.id,
		Question: Question{
			ID:            p.id,
			Text:          p.text,
			Options:       append([]string(nil), options...),
			CorrectAnswer: p.correctAnswer,
		},
	}
}
