// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the vaultctl command line front end.
//
// [App] parses a command with its arguments, calls the matching service and
// prints the outcome. Passwords are read line by line from the configured
// input so the client can be scripted; the key derivation itself runs inside
// the services.
package client
