package models

// ShardGroup identifies a shard inside a group of shards produced from one
// payload.
type ShardGroup struct {
	// ID is shared by every shard built from the same payload.
	ID uint32 `json:"id"`

	// Index is the zero-based position of the shard in the payload.
	Index int `json:"idx"`

	// Count is the total number of shards in the group.
	Count int `json:"tot"`
}

// Shard is one bounded-size fragment of a larger payload.
// Data is transported as base64 by encoding/json.
type Shard struct {
	Group ShardGroup `json:"g"`
	Data  []byte     `json:"d"`
}
