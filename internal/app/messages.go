// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// vaultctl command line client.
//
// All Msg* constants are human-readable strings written to the terminal to
// prompt the user or describe the outcome of a command.
package app

const (
	// MsgEnterPassword prompts for the backup password.
	MsgEnterPassword = "backup password: "

	// MsgNoEntries is printed by list and watch when the vault is empty.
	MsgNoEntries = "no entries"

	// MsgEntrySkipped prefixes entries that are stored but cannot be decoded.
	MsgEntrySkipped = "skipped"

	// MsgCopiedToClipboard is printed after a code was placed on the clipboard.
	MsgCopiedToClipboard = "copied to clipboard"

	// MsgClipboardUnavailable is printed when -copy is used on a system
	// without a clipboard tool.
	MsgClipboardUnavailable = "clipboard is not available on this system"

	// MsgBackupIncomplete is printed when import ran out of frames before
	// every shard of the backup was seen.
	MsgBackupIncomplete = "backup is incomplete, scan the missing frames"

	// MsgUsage lists the available commands.
	MsgUsage = `usage: vaultctl [flags] <command> [args]

commands:
  add <otpauth-uri>        store a new entry
  list                     list stored entries
  code [-copy] <id>        show the current code of an entry
  next [-copy] <id>        show the next hotp code and advance the counter
  delete <id>              remove an entry
  watch                    print totp codes whenever they change
  export [-out dir]        write the encrypted backup as QR frames
  import <frame-file>...   restore entries from backup frames
  signatures               list key derivation signatures
  version                  print build information`
)
