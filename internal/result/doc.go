// Package result turns winning seeds into key pairs and persists them.
//
// A key pair file is named after the base58 address of the public key and
// holds the 32-byte seed followed by the 32-byte public key, written as a JSON
// array of 64 integers. That layout is what common wallet tooling accepts as a
// keypair file.
package result
