// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes a single command described by args and blocks until it
	// completes or ctx is cancelled.
	Run(ctx context.Context, args []string) error
}

// Clipboard places rendered codes on the system clipboard.
type Clipboard interface {
	Available() bool
	Copy(text string) error
}
