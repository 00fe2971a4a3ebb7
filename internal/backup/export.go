// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backup

import (
	"context"
	"encoding/json"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-otp-vault/internal/crypto"
	"github.com/MKhiriev/go-otp-vault/internal/shard"
	"github.com/MKhiriev/go-otp-vault/models"
)

const (
	// DefaultMaxShardSize keeps a base64 frame within the binary capacity of
	// a medium error correction QR code.
	DefaultMaxShardSize = 1024
	// DefaultQRSize is the PNG edge length in pixels.
	DefaultQRSize = 512
)

// Frame is one exported shard: its JSON text and, when enabled, the QR code
// that carries it.
type Frame struct {
	Index   int
	Payload string
	PNG     []byte
}

// Exporter turns a vault backup into a sequence of QR frames.
type Exporter struct {
	keys         KeyProvider
	cipher       crypto.VaultCipher
	builder      *shard.Builder
	maxShardSize int
	qrSize       int
}

// ExporterOption configures an Exporter.
type ExporterOption func(*Exporter)

// WithMaxShardSize sets the maximum number of container bytes per frame.
func WithMaxShardSize(size int) ExporterOption {
	return func(e *Exporter) {
		e.maxShardSize = size
	}
}

// WithQRSize sets the PNG edge length. A non-positive size disables QR
// rendering and only text payloads are produced.
func WithQRSize(size int) ExporterOption {
	return func(e *Exporter) {
		e.qrSize = size
	}
}

// WithShardBuilder replaces the shard builder.
func WithShardBuilder(b *shard.Builder) ExporterOption {
	return func(e *Exporter) {
		e.builder = b
	}
}

// NewExporter builds an Exporter deriving keys with keys and sealing with c.
func NewExporter(keys KeyProvider, c crypto.VaultCipher, opts ...ExporterOption) *Exporter {
	e := &Exporter{
		keys:         keys,
		cipher:       c,
		builder:      shard.NewBuilder(),
		maxShardSize: DefaultMaxShardSize,
		qrSize:       DefaultQRSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export encrypts backup under a key derived from password and splits the
// resulting container into frames ordered by shard index.
func (e *Exporter) Export(ctx context.Context, backup models.VaultBackup, password []byte) ([]Frame, error) {
	key, err := e.keys.CreateEncryptionKey(ctx, password)
	if err != nil {
		return nil, fmt.Errorf("create encryption key: %w", err)
	}
	vault, err := e.cipher.Encrypt(backup, key)
	clear(key.Key)
	if err != nil {
		return nil, fmt.Errorf("encrypt backup: %w", err)
	}

	container, err := json.Marshal(vault)
	if err != nil {
		return nil, fmt.Errorf("marshal vault: %w", err)
	}

	shards, err := e.builder.MakeShards(container, e.maxShardSize)
	if err != nil {
		return nil, fmt.Errorf("make shards: %w", err)
	}

	frames := make([]Frame, len(shards))
	for i, s := range shards {
		payload, err := shard.Encode(s)
		if err != nil {
			return nil, err
		}
		frames[i] = Frame{Index: s.Group.Index, Payload: string(payload)}
	}

	if e.qrSize <= 0 {
		return frames, nil
	}
	if err := e.renderQR(ctx, frames); err != nil {
		return nil, err
	}
	return frames, nil
}

func (e *Exporter) renderQR(ctx context.Context, frames []Frame) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := range frames {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			png, err := qrcode.Encode(frames[i].Payload, qrcode.Medium, e.qrSize)
			if err != nil {
				return fmt.Errorf("render frame %d: %w", frames[i].Index, err)
			}
			frames[i].PNG = png
			return nil
		})
	}
	return g.Wait()
}
