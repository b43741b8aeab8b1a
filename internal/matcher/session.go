package matcher

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/mahdiidarabi/solvanity/internal/keys"
	"github.com/mahdiidarabi/solvanity/internal/logger"
	"github.com/mahdiidarabi/solvanity/internal/pattern"
)

var (
	// ErrNoDevice is returned when no compute device is available.
	ErrNoDevice = errors.New("no compute device available")
	// ErrEmptyTable is returned when a session is opened with a table that
	// has no prefixes and could therefore never match.
	ErrEmptyTable = errors.New("prefix table is empty")
)

// progressInterval is how often a running dispatch logs lane progress.
const progressInterval = 5 * time.Second

// Device is a compute resource lanes are scheduled on.
type Device struct {
	Name         string
	ComputeUnits int
}

// Devices lists the available devices. The CPU is the only device type.
func Devices() []Device {
	n := runtime.NumCPU()
	if n < 1 {
		return nil
	}
	return []Device{{
		Name:         fmt.Sprintf("cpu/%s-%s", runtime.GOOS, runtime.GOARCH),
		ComputeUnits: n,
	}}
}

// FirstDevice returns the first of devs.
func FirstDevice(devs []Device) (Device, error) {
	if len(devs) == 0 {
		return Device{}, ErrNoDevice
	}
	return devs[0], nil
}

// Session runs batches on one device against one compiled table.
type Session struct {
	device Device
	table  pattern.Table
	scheme keys.Scheme
	log    *zap.SugaredLogger
}

// NewSession validates its inputs and returns a session. The table is copied;
// later changes to t do not affect the session.
func NewSession(dev Device, t *pattern.Table, scheme keys.Scheme, log *zap.SugaredLogger) (*Session, error) {
	if dev.ComputeUnits < 1 {
		return nil, fmt.Errorf("%w: %q has no compute units", ErrNoDevice, dev.Name)
	}
	if t == nil || t.Count == 0 {
		return nil, ErrEmptyTable
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if scheme == nil {
		scheme = keys.Ed25519{}
	}

	table := pattern.Table{
		Prefixes: append([]byte(nil), t.Prefixes...),
		Lengths:  append([]int(nil), t.Lengths...),
		Count:    t.Count,
		Suffix:   append([]byte(nil), t.Suffix...),
	}

	s := &Session{
		device: dev,
		table:  table,
		scheme: scheme,
		log:    logger.WithServiceName(log, "matcher"),
	}
	s.log.Infof("session on %s: %d compute units, %d prefixes, scheme %s", dev.Name, dev.ComputeUnits, table.Count, scheme.Name())
	s.log.Debugf("prefixes %q, suffix %q", table.Strings(), table.Suffix)
	return s, nil
}

// Name returns "cpu".
func (s *Session) Name() string { return "cpu" }

// Device returns the session device.
func (s *Session) Device() Device { return s.device }

// Scheme returns the key scheme lanes are derived with.
func (s *Session) Scheme() keys.Scheme { return s.scheme }

// Dispatch evaluates every lane of b and returns the first match found.
func (s *Session) Dispatch(ctx context.Context, b Batch) (Result, error) {
	if err := b.Validate(); err != nil {
		return Result{}, err
	}

	lanes := b.Lanes()
	local := b.localSize()
	groups := (lanes + local - 1) / local

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		cursor    atomic.Uint64
		evaluated atomic.Uint64
		found     atomic.Bool
		once      sync.Once
		out       [OutputSize]byte
		winner    uint64
		errOnce   sync.Once
		runErr    error
		wg        sync.WaitGroup
	)

	progressDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(progressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-progressDone:
				return
			case <-ticker.C:
				s.log.Debugf("progress: %d/%d lanes", evaluated.Load(), lanes)
			}
		}
	}()

	for w := 0; w < s.device.ComputeUnits; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				if found.Load() || runCtx.Err() != nil {
					return
				}
				g := cursor.Add(1) - 1
				if g >= groups {
					return
				}

				start := g * local
				end := min(start+local, lanes)
				for lane := start; lane < end; lane++ {
					seed := LaneSeed(b.Base, lane)
					pub, err := s.scheme.PublicKey(seed[:])
					if errors.Is(err, keys.ErrInvalidSeed) {
						continue
					}
					if err != nil {
						errOnce.Do(func() { runErr = fmt.Errorf("lane %d: %w", lane, err) })
						cancel()
						return
					}
					if s.table.Match(keys.Address(pub)) {
						once.Do(func() {
							out[0] = 1
							copy(out[1:], seed[:])
							winner = lane
							found.Store(true)
						})
						return
					}
				}
				evaluated.Add(end - start)
			}
		}()
	}

	wg.Wait()
	close(progressDone)

	if runErr != nil {
		return Result{}, runErr
	}
	if !found.Load() && ctx.Err() != nil {
		return Result{}, ctx.Err()
	}

	res, err := DecodeResult(out[:])
	if err != nil {
		return Result{}, err
	}
	res.Lane = winner
	return res, nil
}
