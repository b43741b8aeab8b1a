package vanity

import (
	"go.uber.org/zap"

	"github.com/mahdiidarabi/solvanity/internal/config"
	"github.com/mahdiidarabi/solvanity/internal/keys"
	"github.com/mahdiidarabi/solvanity/internal/keyspace"
	"github.com/mahdiidarabi/solvanity/internal/logger"
	"github.com/mahdiidarabi/solvanity/internal/matcher"
	"github.com/mahdiidarabi/solvanity/internal/pattern"
	"github.com/mahdiidarabi/solvanity/internal/result"
)

// Configuration.
type (
	Config        = config.Config
	PatternConfig = config.PatternConfig
	PrefixConfig  = config.PrefixConfig
	SearchConfig  = config.SearchConfig
)

// Patterns.
type (
	// Prefix is one requested address prefix. An empty Text matches every
	// address, leaving the suffix as the only constraint.
	Prefix      = pattern.Prefix
	Table       = pattern.Table
	Compilation = pattern.Compilation
)

// Keys and counter state.
type (
	// Scheme derives the 32-byte public identifier of a seed.
	Scheme      = keys.Scheme
	KeyPair     = result.KeyPair
	Counter     = keyspace.Counter
	Store       = keyspace.Store
	FileStore   = keyspace.FileStore
	MemoryStore = keyspace.MemoryStore
	Manager     = keyspace.Manager
	Validator   = result.Validator
)

// Matcher contract. Implement Matcher, or wrap a function in MatcherFunc, to
// run batches on another device.
type (
	Matcher     = matcher.Matcher
	MatcherFunc = matcher.Func
	Batch       = matcher.Batch
	MatchResult = matcher.Result
	Device      = matcher.Device
	Session     = matcher.Session
)

const (
	SeedSize      = keys.SeedSize
	PublicKeySize = keys.PublicKeySize
	// OutputSize is the length of an encoded MatchResult: flag byte + seed.
	OutputSize = matcher.OutputSize
)

var (
	ErrInvalidConfig   = config.ErrInvalidConfig
	ErrInvalidSuffix   = pattern.ErrInvalidSuffix
	ErrUnknownScheme   = keys.ErrUnknownScheme
	ErrInvalidSeed     = keys.ErrInvalidSeed
	ErrCorruptCounter  = keyspace.ErrCorruptCounter
	ErrNoDevice        = matcher.ErrNoDevice
	ErrEmptyTable      = matcher.ErrEmptyTable
	ErrUnverifiedMatch = result.ErrUnverifiedMatch
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config { return config.Default() }

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) { return config.Load(path) }

// NewLogger returns the console logger used by the binaries.
func NewLogger(level string) (*zap.SugaredLogger, error) { return logger.New(level) }

// Ed25519 returns the default key scheme.
func Ed25519() Scheme { return keys.Ed25519{} }

// Secp256k1 returns the secp256k1 x-only key scheme.
func Secp256k1() Scheme { return keys.Secp256k1XOnly{} }

// SchemeByName looks up a scheme by its config name.
func SchemeByName(name string) (Scheme, error) { return keys.SchemeByName(name) }

// Address base58-encodes a public key.
func Address(pub [PublicKeySize]byte) string { return keys.Address(pub) }

// Compile builds the prefix and suffix tables without writing any file.
func Compile(prefixes []Prefix, suffix string) (*Compilation, error) {
	return pattern.Compile(prefixes, suffix)
}

func NewFileStore(path string) *FileStore { return keyspace.NewFileStore(path) }

func NewMemoryStore() *MemoryStore { return keyspace.NewMemoryStore() }

// NewManager returns a counter manager advancing store by 2^bits per batch.
func NewManager(store Store, bits uint, log *zap.SugaredLogger) (*Manager, error) {
	return keyspace.NewManager(store, bits, log)
}

// NewValidator returns a validator writing key pairs under outputDir.
func NewValidator(scheme Scheme, outputDir string, log *zap.SugaredLogger) *Validator {
	return result.NewValidator(scheme, outputDir, log)
}

// NewBatch returns a batch of 2^bits lanes with the default group size.
func NewBatch(base Counter, bits uint) Batch { return matcher.NewBatch(base, bits) }

// LaneSeed returns the seed a matcher derives for lane: base + lane.
func LaneSeed(base Counter, lane uint64) [SeedSize]byte { return matcher.LaneSeed(base, lane) }

// DecodeResult parses a 33-byte matcher output buffer.
func DecodeResult(out []byte) (MatchResult, error) { return matcher.DecodeResult(out) }

// Devices lists the CPU devices the built-in matcher can run on.
func Devices() []Device { return matcher.Devices() }

// NewSession opens the built-in CPU matcher on dev.
func NewSession(dev Device, t *Table, scheme Scheme, log *zap.SugaredLogger) (*Session, error) {
	return matcher.NewSession(dev, t, scheme, log)
}

// DeriveKeyPair computes the key pair of seed under scheme.
func DeriveKeyPair(scheme Scheme, seed [SeedSize]byte) (KeyPair, error) {
	return result.Derive(scheme, seed)
}

// ReadKeyPair loads a key pair file written by a search.
func ReadKeyPair(path string) (KeyPair, error) { return result.ReadKeyPair(path) }
