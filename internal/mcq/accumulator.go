package mcq

// Accumulator consumes classified lines in order and holds at most one open
// record. It is not safe for concurrent use; use one per input.
type Accumulator struct {
	open    *partial
	options []string
	orphans int
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator { return &Accumulator{} }

// Feed applies one line. When the line closes the previous open record the
// finalization outcome is returned with ok set.
func (a *Accumulator) Feed(l Line) (out Outcome, ok bool) {
	if l.Kind == KindQuestion {
		if a.open != nil {
			out, ok = finalize(*a.open, a.options), true
		}
		a.open = &partial{id: l.ID, text: l.Text}
		a.options = nil
		return out, ok
	}

	if a.open == nil {
		a.orphans++
		return Outcome{}, false
	}

	switch l.Kind {
	case KindAnswer:
		a.open.correctAnswer = l.Letter
	case KindOption:
		a.options = append(a.options, l.Raw)
	default:
		if n := len(a.options); n > 0 {
			a.options[n-1] += " " + l.Raw
		} else {
			a.open.text += " " + l.Raw
		}
	}
	return Outcome{}, false
}

// Finish flushes the open record at end of input, if any.
func (a *Accumulator) Finish() (Outcome, bool) {
	if a.open == nil {
		return Outcome{}, false
	}
	out := finalize(*a.open, a.options)
	a.open, a.options = nil, nil
	return out, true
}

// Orphans counts lines dropped because no question was open.
func (a *Accumulator) Orphans() int { return a.orphans }
