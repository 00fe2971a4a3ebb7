// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks entries before they are written to the vault.
//
// A Validator validates a whole value or, when field names are given, only
// those fields. Services call it right before persisting, so that entries
// reaching the store through URIs and restored backups obey the same rules.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
