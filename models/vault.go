// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EncryptedVaultVersion is the container format written by the vault cipher.
const EncryptedVaultVersion = "1.0.0"

// EncryptedVault is the encrypted container moved in and out of the
// application as a backup. Everything needed to recreate the key, except the
// password, travels with it.
type EncryptedVault struct {
	// Version is the container format version.
	Version string `json:"version"`

	// Data is the AES-GCM ciphertext including the authentication tag.
	Data []byte `json:"data"`

	// EncryptionIV is the GCM nonce.
	EncryptionIV []byte `json:"iv"`

	// KeygenSalt is the salt the encryption key was derived with.
	KeygenSalt []byte `json:"keygen_salt"`

	// KeygenSignature names the key deriver that produced the key.
	KeygenSignature string `json:"keygen_signature"`
}

// BackupVersion is the payload format written by backup exports.
const BackupVersion = "1.0.0"

// VaultBackup is the plaintext payload sealed inside an EncryptedVault.
type VaultBackup struct {
	Version string       `json:"version"`
	Created time.Time    `json:"created"`
	Items   []OTPRecord `json:"items"`
}
