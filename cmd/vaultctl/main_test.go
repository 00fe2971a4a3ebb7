package main

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-otp-vault/internal/client"
	"github.com/MKhiriev/go-otp-vault/internal/logger"
	"github.com/stretchr/testify/require"
)

func TestRun_InMemoryVault(t *testing.T) {
	t.Chdir(t.TempDir())
	log := logger.Nop()
	ctx := log.WithContext(context.Background())

	require.NoError(t, run(ctx, log, []string{"-d", ":memory:", "version"}))

	err := run(ctx, log, []string{"-d", ":memory:"})
	require.ErrorIs(t, err, client.ErrNoCommand)
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	log := logger.Nop()

	err := run(context.Background(), log, []string{"-signature", "nope", "list"})
	require.Error(t, err)
}
