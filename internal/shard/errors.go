package shard

import "errors"

var (
	// ErrInvalidShardSize is returned when the maximum shard size is not positive.
	ErrInvalidShardSize = errors.New("max shard size must be positive")
	// ErrInvalidShard is returned for frames that cannot be parsed or carry
	// inconsistent group information.
	ErrInvalidShard = errors.New("invalid shard")
	// ErrIncomplete is returned by DecodeData before every shard was seen.
	ErrIncomplete = errors.New("shard group is incomplete")
)
