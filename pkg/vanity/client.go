package vanity

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mahdiidarabi/solvanity/internal/keys"
	"github.com/mahdiidarabi/solvanity/internal/keyspace"
	"github.com/mahdiidarabi/solvanity/internal/logger"
	"github.com/mahdiidarabi/solvanity/internal/matcher"
	"github.com/mahdiidarabi/solvanity/internal/pattern"
	"github.com/mahdiidarabi/solvanity/internal/result"
)

// Client wires a configuration into a compiler, a matcher session and a
// coordinator.
type Client struct {
	cfg     Config
	matcher Matcher
	scheme  Scheme
	store   Store
	log     *zap.SugaredLogger
}

// NewClient creates a client for cfg. Without further options it uses the
// CPU matcher on the first device and the counter file named in cfg.
func NewClient(cfg Config) *Client {
	return &Client{cfg: cfg}
}

// WithMatcher replaces the CPU matcher.
func (c *Client) WithMatcher(m Matcher) *Client {
	c.matcher = m
	return c
}

// WithScheme overrides the configured key scheme.
func (c *Client) WithScheme(s Scheme) *Client {
	c.scheme = s
	return c
}

// WithStore replaces the counter file.
func (c *Client) WithStore(s Store) *Client {
	c.store = s
	return c
}

// WithLogger sets the logger handed to every component.
func (c *Client) WithLogger(l *zap.SugaredLogger) *Client {
	c.log = l
	return c
}

// Compile compiles the configured patterns, writes the audit file and, when
// configured, rewrites the kernel source.
func (c *Client) Compile() (*Compilation, error) {
	comp, err := pattern.NewCompiler(c.cfg.Pattern.AuditFile, c.log).
		WithKernel(c.cfg.Pattern.KernelFile).
		Run(c.cfg.PrefixPatterns(), c.cfg.Pattern.Suffix)
	if err != nil {
		return nil, fmt.Errorf("failed to compile patterns: %w", err)
	}
	return comp, nil
}

// Coordinator compiles the patterns and builds a coordinator ready to Step or
// Run.
func (c *Client) Coordinator() (*Coordinator, error) {
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}
	scheme, err := c.resolveScheme()
	if err != nil {
		return nil, err
	}
	comp, err := c.Compile()
	if err != nil {
		return nil, err
	}

	m := c.matcher
	if m == nil {
		dev, err := matcher.FirstDevice(matcher.Devices())
		if err != nil {
			return nil, err
		}
		m, err = matcher.NewSession(dev, &comp.Table, scheme, c.log)
		if err != nil {
			return nil, fmt.Errorf("failed to open matcher session: %w", err)
		}
	}

	store := c.store
	if store == nil {
		store = keyspace.NewFileStore(c.cfg.Search.CounterFile)
	}
	ks, err := keyspace.NewManager(store, c.cfg.Search.OccupiedBits, c.log)
	if err != nil {
		return nil, err
	}

	v := result.NewValidator(scheme, c.cfg.Search.OutputDir, c.log)
	if c.cfg.Search.VerifyMatches {
		v.WithVerify(&comp.Table)
	} else {
		logger.OrNop(c.log).Debugf("match verification disabled, trusting matcher %s", m.Name())
	}

	co := NewCoordinator(ks, m, v, c.log).WithLocalSize(c.cfg.Search.LocalSize)
	co.MaxBatches = c.cfg.Search.MaxBatches
	co.ProgressEvery = c.cfg.Search.ProgressEvery
	return co, nil
}

// Search runs the search until ctx is cancelled or the configured batch limit
// is reached.
func (c *Client) Search(ctx context.Context) (Stats, error) {
	co, err := c.Coordinator()
	if err != nil {
		return Stats{}, err
	}
	return co.Run(ctx)
}

func (c *Client) resolveScheme() (Scheme, error) {
	if c.scheme != nil {
		return c.scheme, nil
	}
	return keys.SchemeByName(c.cfg.Search.Scheme)
}
