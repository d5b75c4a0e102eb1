package mcq

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"
)

// TestExtractionFeatures runs the extraction scenarios via godog.
func TestExtractionFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "extraction",
		ScenarioInitializer: initializeExtractionScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{filepath.Join("features", "extraction.feature")},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

type extractionState struct {
	lines  []string
	result Result
}

func initializeExtractionScenario(ctx *godog.ScenarioContext) {
	state := &extractionState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*state = extractionState{}
		return ctx, nil
	})

	ctx.Step(`^the lines:$`, state.givenLines)
	ctx.Step(`^the lines are extracted$`, state.extract)
	ctx.Step(`^(\d+) questions are produced$`, state.questionCount)
	ctx.Step(`^question (\d+) has id (\d+) and text "([^"]*)"$`, state.questionHas)
	ctx.Step(`^question (\d+) has options "([^"]*)"$`, state.questionOptions)
	ctx.Step(`^question (\d+) has correct answer "([^"]*)"$`, state.questionAnswer)
	ctx.Step(`^(\d+) headers are discarded$`, state.discardCount)
	ctx.Step(`^(\d+) lines are dropped before the first header$`, state.orphanCount)
}

func (s *extractionState) givenLines(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // header
		}
		s.lines = append(s.lines, row.Cells[0].Value)
	}
	return nil
}

func (s *extractionState) extract() error {
	s.result = Extract(s.lines)
	return nil
}

func (s *extractionState) questionCount(n int) error {
	if got := len(s.result.Questions); got != n {
		return fmt.Errorf("expected %d questions, got %d", n, got)
	}
	return nil
}

func (s *extractionState) question(pos int) (Question, error) {
	if pos < 1 || pos > len(s.result.Questions) {
		return Question{}, fmt.Errorf("no question at position %d", pos)
	}
	return s.result.Questions[pos-1], nil
}

func (s *extractionState) questionHas(pos, id int, text string) error {
	q, err := s.question(pos)
	if err != nil {
		return err
	}
	if q.ID != id || q.Text != text {
		return fmt.Errorf("question %d = (%d, %q), want (%d, %q)", pos, q.ID, q.Text, id, text)
	}
	return nil
}

func (s *extractionState) questionOptions(pos int, joined string) error {
	q, err := s.question(pos)
	if err != nil {
		return err
	}
	if got := strings.Join(q.Options, "|"); got != joined {
		return fmt.Errorf("question %d options = %q, want %q", pos, got, joined)
	}
	return nil
}

func (s *extractionState) questionAnswer(pos int, letter string) error {
	q, err := s.question(pos)
	if err != nil {
		return err
	}
	if q.CorrectAnswer != letter {
		return fmt.Errorf("question %d answer = %q, want %q", pos, q.CorrectAnswer, letter)
	}
	return nil
}

func (s *extractionState) discardCount(n int) error {
	if got := len(s.result.Discarded); got != n {
		return fmt.Errorf("expected %d discards, got %d", n, got)
	}
	return nil
}

func (s *extractionState) orphanCount(n int) error {
	if s.result.Orphans != n {
		return fmt.Errorf("expected %d dropped lines, got %d", n, s.result.Orphans)
	}
	return nil
}
