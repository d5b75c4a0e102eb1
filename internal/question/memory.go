package question

import (
	"context"
	"sync"

	"github.com/mind-engage/mindengage-mcq/internal/mcq"
)

// Memory keeps the bank in process; contents are lost on restart.
type Memory struct {
	mu        sync.RWMutex
	questions []mcq.Question
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Load(_ context.Context) ([]mcq.Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return mcq.CloneAll(m.questions), nil
}

func (m *Memory) Save(_ context.Context, qs []mcq.Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.questions = mcq.CloneAll(qs)
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.questions = nil
	return nil
}
