package pattern

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/mahdiidarabi/solvanity/internal/fileio"
	"github.com/mahdiidarabi/solvanity/internal/logger"
)

// Compiler compiles patterns and writes the resulting artifacts.
type Compiler struct {
	// AuditPath receives the accepted prefixes, one per line. Empty disables it.
	AuditPath string
	// KernelPath names an external kernel source whose table declarations are
	// rewritten in place. Empty disables it.
	KernelPath string

	log *zap.SugaredLogger
}

// NewCompiler returns a compiler writing the audit list to auditPath.
func NewCompiler(auditPath string, log *zap.SugaredLogger) *Compiler {
	return &Compiler{
		AuditPath: auditPath,
		log:       logger.WithServiceName(log, "pattern"),
	}
}

// WithKernel enables kernel source injection into path.
func (c *Compiler) WithKernel(path string) *Compiler {
	c.KernelPath = path
	return c
}

// Run compiles prefixes and suffix and writes the artifacts.
//
// Nothing is written unless compilation succeeds and the kernel source, when
// configured, has been read and rewritten in memory.
func (c *Compiler) Run(prefixes []Prefix, suffix string) (*Compilation, error) {
	c.log.Infof("expanding %d patterns into at most %d candidates", len(prefixes), candidateBound(prefixes))
	comp, err := Compile(prefixes, suffix)
	if err != nil {
		return nil, err
	}

	c.log.Infof("Skipped %d invalid prefixes", comp.Skipped())
	c.log.Infof("Valid prefixes: %d", comp.Table.Count)
	for _, r := range comp.Rejected {
		c.log.Debugf("rejected prefix %q", r)
	}

	var kernel []byte
	if c.KernelPath != "" {
		src, err := os.ReadFile(c.KernelPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read kernel source: %w", err)
		}
		var replaced []string
		kernel, replaced = InjectSource(src, &comp.Table)
		for _, m := range replaced {
			c.log.Infof("updated %q in kernel source", m)
		}
		if len(replaced) != len(Markers()) {
			c.log.Warnf("kernel source %s: only %d of %d table declarations found", c.KernelPath, len(replaced), len(Markers()))
		}
	}

	if c.AuditPath != "" {
		if prev, err := ReadAudit(c.AuditPath); err == nil && slices.Equal(prev, comp.Accepted) {
			c.log.Infof("prefix audit %s unchanged", c.AuditPath)
		} else if err == nil {
			c.log.Infof("prefix audit %s: %d -> %d prefixes", c.AuditPath, len(prev), len(comp.Accepted))
		}
		if err := WriteAudit(c.AuditPath, comp.Accepted); err != nil {
			return nil, err
		}
	}
	if kernel != nil {
		info, err := os.Stat(c.KernelPath)
		if err != nil {
			return nil, fmt.Errorf("failed to stat kernel source: %w", err)
		}
		if err := fileio.WriteAtomic(c.KernelPath, kernel, info.Mode().Perm()); err != nil {
			return nil, fmt.Errorf("failed to write kernel source: %w", err)
		}
	}

	return comp, nil
}

func candidateBound(prefixes []Prefix) int {
	n := 0
	for _, p := range prefixes {
		if p.IgnoreCase {
			n += VariantCount(p.Text)
		} else {
			n++
		}
	}
	return n
}

// WriteAudit writes prefixes to path, newline separated.
func WriteAudit(path string, prefixes []string) error {
	if err := fileio.WriteAtomic(path, []byte(strings.Join(prefixes, "\n")), 0o644); err != nil {
		return fmt.Errorf("failed to write prefix audit: %w", err)
	}
	return nil
}

// ReadAudit reads an audit file written by WriteAudit.
func ReadAudit(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prefix audit: %w", err)
	}
	if len(b) == 0 {
		return nil, nil
	}
	return strings.Split(strings.TrimRight(string(b), "\n"), "\n"), nil
}
