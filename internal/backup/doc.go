// Package backup moves vaults in and out of the application as sequences of
// QR code frames.
//
// Export derives a fresh key, seals the backup with the vault cipher and
// splits the JSON container into shards. Import collects frames in any order,
// reassembles the container and recreates the key from the password together
// with the salt and signature stored in the container.
package backup
