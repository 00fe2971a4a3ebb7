// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package shard

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	boxochunker "github.com/ipfs/boxo/chunker"

	"github.com/MKhiriev/go-otp-vault/models"
)

// GroupIDGenerator returns the group ID for a new set of shards.
type GroupIDGenerator func() uint32

// Builder splits payloads into shards.
type Builder struct {
	newGroupID GroupIDGenerator
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithGroupIDGenerator replaces the random group ID source, e.g. for
// deterministic tests.
func WithGroupIDGenerator(gen GroupIDGenerator) BuilderOption {
	return func(b *Builder) {
		b.newGroupID = gen
	}
}

// NewBuilder returns a Builder that draws group IDs at random.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{newGroupID: rand.Uint32}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// MakeShards splits payload into consecutive chunks of at most maxShardSize
// bytes. All shards share one group ID and are indexed 0..N-1. An empty
// payload yields a single empty shard so that it can still be transferred.
func (b *Builder) MakeShards(payload []byte, maxShardSize int) ([]models.Shard, error) {
	if maxShardSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidShardSize, maxShardSize)
	}

	splitter := boxochunker.NewSizeSplitter(bytes.NewReader(payload), int64(maxShardSize))

	chunks := make([][]byte, 0, len(payload)/maxShardSize+1)
	for {
		chunk, err := splitter.NextBytes()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("split payload: %w", err)
		}
		chunks = append(chunks, bytes.Clone(chunk))
	}
	if len(chunks) == 0 {
		chunks = append(chunks, []byte{})
	}

	groupID := b.newGroupID()
	shards := make([]models.Shard, len(chunks))
	for i, chunk := range chunks {
		shards[i] = models.Shard{
			Group: models.ShardGroup{ID: groupID, Index: i, Count: len(chunks)},
			Data:  chunk,
		}
	}

	return shards, nil
}
