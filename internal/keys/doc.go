// Package keys derives public identifiers from 32-byte signing-key seeds and
// encodes them as base58 addresses.
//
// Two schemes are provided:
//
//   - Ed25519: the RFC 8032 derivation (SHA-512 of the seed, clamped scalar,
//     base point multiplication). The address of a seed is the base58 encoding
//     of the 32-byte compressed Edwards point, which is the Solana address format.
//   - Secp256k1XOnly: the seed is the secp256k1 scalar and the identifier is the
//     32-byte x coordinate of the public point, as used by BIP-340 keys.
//
// Addresses carry no version byte and no checksum.
package keys
