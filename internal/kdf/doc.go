// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package kdf provides composable password-based key derivation primitives.
//
// Every [KeyDeriver] is an immutable value: it carries its parameters and
// nothing else, so one instance can be shared by any number of concurrent
// derivations. [KeyDeriver.AlgorithmIdentifier] renders the algorithm name and
// every tunable parameter into a canonical string. The identifier is the
// compatibility contract for stored vaults: it changes if and only if the
// derived key would change.
//
// Derivers can be chained with [Combination]:
//
//	key := PBKDF2 → HKDF → scrypt
//
// Each stage receives the previous stage's output as its password and the
// same salt. The chain checks the context between stages so a long
// derivation can be cancelled.
package kdf
