package result

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mahdiidarabi/solvanity/internal/keys"
	"github.com/mahdiidarabi/solvanity/internal/logger"
	"github.com/mahdiidarabi/solvanity/internal/pattern"
)

// ErrUnverifiedMatch is returned when verification is enabled and a reported
// seed does not satisfy the table.
var ErrUnverifiedMatch = errors.New("reported seed does not match the pattern table")

// Validator derives and persists the key pairs of matched seeds. By default
// it trusts the matcher; WithVerify makes it re-check the address first.
type Validator struct {
	scheme keys.Scheme
	writer Writer
	verify *pattern.Table
	log    *zap.SugaredLogger
}

// NewValidator returns a validator writing to outputDir. A nil scheme means
// ed25519.
func NewValidator(scheme keys.Scheme, outputDir string, log *zap.SugaredLogger) *Validator {
	if scheme == nil {
		scheme = keys.Ed25519{}
	}
	return &Validator{
		scheme: scheme,
		writer: Writer{Dir: outputDir},
		log:    logger.WithServiceName(log, "validator"),
	}
}

// WithVerify enables address verification against t before persisting.
func (v *Validator) WithVerify(t *pattern.Table) *Validator {
	v.verify = t
	return v
}

// Accept derives the key pair for seed, optionally verifies it and writes it.
func (v *Validator) Accept(seed [keys.SeedSize]byte) (KeyPair, error) {
	kp, err := Derive(v.scheme, seed)
	if err != nil {
		return KeyPair{}, err
	}
	if v.verify != nil && !v.verify.Match(kp.Address) {
		v.log.Warnf("discarding unverified match %s", kp.Address)
		return kp, fmt.Errorf("%w: %s", ErrUnverifiedMatch, kp.Address)
	}

	path, err := v.writer.Persist(kp)
	if err != nil {
		return kp, err
	}
	v.log.Infof("found key %s, saved to %s", kp.Address, path)
	return kp, nil
}
