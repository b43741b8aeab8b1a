// Package vanity searches for signing keys whose base58 public address starts
// with one of a set of prefixes and, optionally, ends with a suffix.
//
// The search walks a persisted 256-bit counter. Each batch hands a 32-byte
// base key to a matcher, which derives 2^B candidate seeds (base + lane) and
// reports at most one seed whose address matches. After every batch the
// counter advances by 2^B and is written back to disk, so a restarted search
// continues where it stopped. Matching seeds are written to
// <output>/<address>.json as the 64-byte seed||public key.
//
// WARNING: key files hold private key material in plain text.
//
// Basic Usage:
//
//	cfg := vanity.DefaultConfig()
//	cfg.Pattern.Prefixes = []vanity.PrefixConfig{{Text: "abc", IgnoreCase: true}}
//	client := vanity.NewClient(cfg).WithLogger(log)
//	stats, err := client.Search(ctx)
//
// Compiling the pattern table on its own (audit file, optional kernel source
// injection):
//
//	comp, err := vanity.NewClient(cfg).Compile()
//
// Plugging in another matcher (for example a GPU primitive, or a stub in
// tests):
//
//	client := vanity.NewClient(cfg).WithMatcher(vanity.MatcherFunc(func(ctx context.Context, b vanity.Batch) (vanity.MatchResult, error) {
//		...
//	}))
//
// A matcher explores seeds vanity.LaneSeed(b.Base, lane) for every lane in
// [0, b.Lanes()) and reports at most one of them.
//
// An empty prefix matches every address, so a search constrained by the
// suffix alone uses:
//
//	cfg.Pattern.Prefixes = []vanity.PrefixConfig{{Text: ""}}
//	cfg.Pattern.Suffix = "pump"
//
// A single batch can be driven with Coordinator.Step; Coordinator.Run loops
// until the context is cancelled or the configured batch limit is reached.
package vanity
