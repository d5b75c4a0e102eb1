// Package mcq turns the line stream of an extracted document into
// multiple-choice question records.
package mcq

// Question is one extracted record. Options keep their leading letter token
// ("A. Paris"). CorrectAnswer is empty when no answer marker was seen.
type Question struct {
	ID            int      `json:"id" bson:"id"`
	Text          string   `json:"text" bson:"text"`
	Options       []string `json:"options" bson:"options"`
	CorrectAnswer string   `json:"correctAnswer,omitempty" bson:"correctAnswer,omitempty"`
}

// Clone returns a copy that shares no backing arrays with q.
func (q Question) Clone() Question {
	q.Options = append([]string(nil), q.Options...)
	return q
}

// CloneAll copies a record sequence, preserving order.
func CloneAll(in []Question) []Question {
	out := make([]Question, len(in))
	for i, q := range in {
		out[i] = q.Clone()
	}
	return out
}
