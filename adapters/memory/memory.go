// Package memory holds in-process implementations of the persistence
// ports, used when no database is configured and by tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"gosaju/internal/errors"
	"gosaju/ports"
)

// Ledger is a process-local credit ledger.
type Ledger struct {
	mu       sync.Mutex
	balances map[uuid.UUID]int
}

func NewLedger() *Ledger {
	return &Ledger{balances: make(map[uuid.UUID]int)}
}

var _ ports.CreditLedger = (*Ledger)(nil)

func (l *Ledger) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[userID], nil
}

func (l *Ledger) Consume(ctx context.Context, userID uuid.UUID, amount int, reason string) error {
	if amount < 0 {
		return errors.InvalidInput("consume amount must not be negative")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.balances[userID] < amount {
		return errors.InsufficientCredit("not enough credit")
	}
	l.balances[userID] -= amount
	return nil
}

func (l *Ledger) Grant(ctx context.Context, userID uuid.UUID, amount int, reason string) error {
	if amount < 0 {
		return errors.InvalidInput("grant amount must not be negative")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[userID] += amount
	return nil
}

// Readings is a process-local reading store.
type Readings struct {
	mu       sync.Mutex
	readings map[uuid.UUID]ports.Reading
}

func NewReadings() *Readings {
	return &Readings{readings: make(map[uuid.UUID]ports.Reading)}
}

var _ ports.ReadingRepository = (*Readings)(nil)

func (s *Readings) Save(ctx context.Context, r *ports.Reading) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	s.readings[r.ID] = *r
	return nil
}

func (s *Readings) ByUser(ctx context.Context, userID uuid.UUID, limit int) ([]ports.Reading, error) {
	if limit <= 0 {
		limit = 20
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []ports.Reading
	for _, r := range s.readings {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Readings) ByID(ctx context.Context, id uuid.UUID) (*ports.Reading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.readings[id]
	if !ok {
		return nil, errors.NotFound("reading")
	}
	return &r, nil
}
