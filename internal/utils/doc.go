// Package utils provides small helpers shared by the service layer and the
// CLI: entry ID generation and clipboard access.
package utils
