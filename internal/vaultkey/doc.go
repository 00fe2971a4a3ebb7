// Package vaultkey maps stable signatures to fixed key derivation
// configurations and produces encryption keys for vaults.
//
// A [Signature] is persisted next to every encrypted vault. The table behind
// [Lookup] is append-only: the parameters of an existing signature never
// change, otherwise previously encrypted vaults could no longer be opened.
package vaultkey
