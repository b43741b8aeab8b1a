package keyspace

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/mahdiidarabi/solvanity/internal/logger"
)

// ErrInvalidBits is returned for an occupied width outside [1, MaxBits].
var ErrInvalidBits = errors.New("occupied bits out of range")

// Manager loads, seeds and advances the persisted counter.
type Manager struct {
	store Store
	bits  uint
	rand  io.Reader
	log   *zap.SugaredLogger
}

// NewManager returns a manager advancing the counter in store by 2^bits.
func NewManager(store Store, bits uint, log *zap.SugaredLogger) (*Manager, error) {
	if bits < 1 || bits > MaxBits {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBits, bits)
	}
	return &Manager{
		store: store,
		bits:  bits,
		rand:  rand.Reader,
		log:   logger.WithServiceName(log, "keyspace"),
	}, nil
}

// WithRand replaces the random source used to seed a new counter.
func (m *Manager) WithRand(r io.Reader) *Manager {
	m.rand = r
	return m
}

// Bits returns the occupied width B.
func (m *Manager) Bits() uint {
	return m.bits
}

// LoadOrSeed returns the persisted counter, or a new counter whose high region
// is random and whose occupied bytes are zero. A new counter is not persisted
// until the first Increment.
func (m *Manager) LoadOrSeed() (Counter, error) {
	c, ok, err := m.store.Load()
	if err != nil {
		return Counter{}, err
	}
	if ok {
		m.log.Infof("resuming from counter %s", c)
		return c, nil
	}

	high := CounterSize - OccupiedBytes(m.bits)
	if _, err := io.ReadFull(m.rand, c[:high]); err != nil {
		return Counter{}, fmt.Errorf("failed to seed counter: %w", err)
	}
	m.log.Infof("seeded new counter %s", c)
	return c, nil
}

// Increment advances c by one stride, persists the result and returns it.
// The new value is returned even when persisting fails.
func (m *Manager) Increment(c Counter) (Counter, error) {
	next, corrected := Advance(c, m.bits)
	if corrected {
		m.log.Warnf("carry correction zeroed byte %d advancing %s", CounterSize-OccupiedBytes(m.bits), c)
	}
	if err := m.store.Save(next); err != nil {
		return next, err
	}
	return next, nil
}
