package mcq

import (
	"regexp"
	"strings"
)

// PageBreakPrefix starts the marker line the text extractor inserts between
// pages.
const PageBreakPrefix = "----------------Page"

// Result is the output of one extraction run.
type Result struct {
	Questions []Question `json:"questions"`
	Discarded []Discard  `json:"discarded,omitempty"`
	Orphans   int        `json:"orphans,omitempty"`
}

// Extract runs the whole line sequence through a fresh accumulator.
// No records for a non-empty input is a valid result here; callers decide
// whether that is a failure.
func Extract(lines []string) Result {
	acc := NewAccumulator()
	res := Result{Questions: []Question{}}
	collect := func(out Outcome) {
		if out.Emitted {
			res.Questions = append(res.Questions, out.Question)
			return
		}
		res.Discarded = append(res.Discarded, Discard{ID: out.ID, Text: out.Question.Text, Reason: out.Reason})
	}
	for _, line := range lines {
		l := Classify(line)
		if l.Raw == "" {
			continue
		}
		if out, ok := acc.Feed(l); ok {
			collect(out)
		}
	}
	if out, ok := acc.Finish(); ok {
		collect(out)
	}
	res.Orphans = acc.Orphans()
	return res
}

// ExtractText is SplitLines followed by Extract.
func ExtractText(text string) Result { return Extract(SplitLines(text)) }

var newlineRe = regexp.MustCompile(`\r\n|\n|\r`)

// SplitLines breaks raw extracted text into trimmed, non-empty lines with
// page-break markers removed.
func SplitLines(text string) []string {
	parts := newlineRe.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = Trim(p)
		if p == "" || strings.HasPrefix(p, PageBreakPrefix) {
			continue
		}
		out = append(out, p)
	}
	return out
}
