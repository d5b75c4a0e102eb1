package grading

import (
	"strings"

	"github.com/mind-engage/mindengage-mcq/internal/mcq"
)

// Result is the outcome of grading one question.
type Result struct {
	Index         int    `json:"index"`
	ID            int    `json:"id"`
	Answer        string `json:"answer,omitempty"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
	Answered      bool   `json:"answered"`
	Correct       bool   `json:"correct"`
}

// Sheet is a graded exam. Total counts every question, including those
// without a known correct answer.
type Sheet struct {
	Score   int      `json:"score"`
	Total   int      `json:"total"`
	Results []Result `json:"results"`
}

// Grade scores answers against the bank. answers[i] is the letter chosen
// for questions[i]; missing or blank entries are unanswered. A question with
// no correct answer can never score.
func Grade(questions []mcq.Question, answers []string) Sheet {
	sheet := Sheet{Total: len(questions), Results: make([]Result, 0, len(questions))}
	for i, q := range questions {
		res := Result{Index: i, ID: q.ID, CorrectAnswer: q.CorrectAnswer}
		if i < len(answers) {
			res.Answer = Letter(answers[i])
		}
		res.Answered = res.Answer != ""
		if res.Answered && q.CorrectAnswer != "" && res.Answer == q.CorrectAnswer {
			res.Correct = true
			sheet.Score++
		}
		sheet.Results = append(sheet.Results, res)
	}
	return sheet
}

// Letter normalises a response to an uppercase option letter. It accepts a
// bare letter ("b") or a full option line ("B. Lyon"); anything else is "".
func Letter(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if len(s) == 1 {
		s = strings.ToUpper(s)
		if s >= "A" && s <= "D" {
			return s
		}
		return ""
	}
	if l := mcq.Classify(s); l.Kind == mcq.KindOption {
		return strings.ToUpper(l.Letter)
	}
	return ""
}
