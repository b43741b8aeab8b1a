package vanity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mahdiidarabi/solvanity/internal/logger"
	"github.com/mahdiidarabi/solvanity/internal/matcher"
	"github.com/mahdiidarabi/solvanity/internal/result"
)

// Stats summarizes a run.
type Stats struct {
	RunID   string
	Batches uint64
	Lanes   uint64
	Matches uint64
	Elapsed time.Duration
}

// MHps returns the mean throughput in millions of lanes per second.
func (s Stats) MHps() float64 {
	return mhps(s.Lanes, s.Elapsed)
}

func mhps(lanes uint64, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(lanes) / d.Seconds() / 1e6
}

// StepResult describes one completed batch.
type StepResult struct {
	Base    Counter
	Next    Counter
	Match   MatchResult
	KeyPair *KeyPair
	Elapsed time.Duration
}

// Coordinator drives batches sequentially: dispatch, advance, persist matches.
type Coordinator struct {
	keyspace  *Manager
	matcher   Matcher
	validator *Validator
	localSize int

	// MaxBatches stops Run after that many batches. Zero means unbounded.
	MaxBatches uint64
	// ProgressEvery logs a summary every N batches. Zero disables it.
	ProgressEvery uint64

	current Counter
	loaded  bool
	stats   Stats
	log     *zap.SugaredLogger
}

// NewCoordinator returns a coordinator. The counter is loaded on the first
// Step.
func NewCoordinator(ks *Manager, m Matcher, v *Validator, log *zap.SugaredLogger) *Coordinator {
	return &Coordinator{
		keyspace:  ks,
		matcher:   m,
		validator: v,
		localSize: matcher.DefaultLocalSize,
		log:       logger.WithServiceName(log, "coordinator"),
	}
}

// WithLocalSize sets the lane group size passed to the matcher.
func (c *Coordinator) WithLocalSize(n int) *Coordinator {
	c.localSize = n
	return c
}

// Stats returns the totals accumulated so far.
func (c *Coordinator) Stats() Stats {
	return c.stats
}

// Step runs one batch. A dispatch error leaves the counter untouched. On
// success the counter is advanced and persisted whether or not a match was
// found, and a match is handed to the validator before Step returns.
func (c *Coordinator) Step(ctx context.Context) (StepResult, error) {
	if !c.loaded {
		base, err := c.keyspace.LoadOrSeed()
		if err != nil {
			return StepResult{}, fmt.Errorf("failed to load counter: %w", err)
		}
		c.current = base
		c.loaded = true
	}

	step := StepResult{Base: c.current}
	batch := matcher.Batch{Base: c.current, Bits: c.keyspace.Bits(), LocalSize: c.localSize}

	start := time.Now()
	res, err := c.matcher.Dispatch(ctx, batch)
	if err != nil {
		return step, fmt.Errorf("failed to dispatch batch at %s: %w", c.current, err)
	}
	step.Elapsed = time.Since(start)
	step.Match = res
	c.log.Infof("speed: %.2f MH/s", mhps(batch.Lanes(), step.Elapsed))

	next, err := c.keyspace.Increment(c.current)
	c.current = next
	step.Next = next
	c.stats.Batches++
	c.stats.Lanes += batch.Lanes()
	c.stats.Elapsed += step.Elapsed
	if err != nil {
		return step, fmt.Errorf("failed to advance counter: %w", err)
	}

	if !res.Found {
		return step, nil
	}
	kp, err := c.validator.Accept(res.Seed)
	if errors.Is(err, result.ErrUnverifiedMatch) {
		return step, nil
	}
	if err != nil {
		return step, fmt.Errorf("failed to persist match: %w", err)
	}
	c.stats.Matches++
	step.KeyPair = &kp
	return step, nil
}

// Run calls Step until ctx is done, MaxBatches is reached or a step fails.
// Cancellation is a clean stop and returns a nil error.
func (c *Coordinator) Run(ctx context.Context) (Stats, error) {
	runID, err := uuid.NewV7()
	if err != nil {
		return c.stats, fmt.Errorf("failed to create run id: %w", err)
	}
	c.stats.RunID = runID.String()
	log := c.log
	c.log = c.log.With("run_id", c.stats.RunID)
	defer func() { c.log = log }()

	c.log.Infof("starting search with matcher %s, 2^%d lanes per batch", c.matcher.Name(), c.keyspace.Bits())

	for {
		if ctx.Err() != nil {
			break
		}
		if c.MaxBatches > 0 && c.stats.Batches >= c.MaxBatches {
			break
		}

		step, err := c.Step(ctx)
		if err != nil {
			if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				c.log.Infof("batch at %s interrupted, it will be repeated on restart", step.Base)
				break
			}
			c.log.Errorf("search stopped: %v", err)
			return c.stats, err
		}

		if c.ProgressEvery > 0 && c.stats.Batches%c.ProgressEvery == 0 {
			c.log.Infof("progress: %d batches, %d lanes, %d matches, %.2f MH/s average",
				c.stats.Batches, c.stats.Lanes, c.stats.Matches, c.stats.MHps())
		}
	}

	c.log.Infof("search stopped after %d batches, %d matches", c.stats.Batches, c.stats.Matches)
	return c.stats, nil
}
