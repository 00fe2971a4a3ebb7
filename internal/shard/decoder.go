package shard

import (
	"bytes"
	"fmt"

	"github.com/MKhiriev/go-otp-vault/models"
)

// Decoder accumulates the shards of one group. It is a single-writer
// accumulator and must not be shared between goroutines.
type Decoder struct {
	tracking bool
	groupID  uint32
	count    int
	chunks   map[int][]byte
}

// NewDecoder returns an empty Decoder.
func NewDecoder() *Decoder {
	return &Decoder{chunks: make(map[int][]byte)}
}

// Add records one scanned frame. The first valid frame selects the group;
// later frames of a different group are ignored without error. A repeated
// index replaces the chunk recorded earlier.
func (d *Decoder) Add(frame []byte) error {
	s, err := Parse(frame)
	if err != nil {
		return err
	}
	d.AddShard(s)
	return nil
}

// AddShard records an already parsed shard. It reports whether the shard
// belongs to the tracked group.
func (d *Decoder) AddShard(s models.Shard) bool {
	if !d.tracking {
		d.tracking = true
		d.groupID = s.Group.ID
		d.count = s.Group.Count
	}
	if s.Group.ID != d.groupID || s.Group.Count != d.count {
		return false
	}

	d.chunks[s.Group.Index] = bytes.Clone(s.Data)
	return true
}

// IsReadyToDecode reports whether every index of the tracked group is present.
func (d *Decoder) IsReadyToDecode() bool {
	return d.tracking && len(d.chunks) == d.count
}

// Progress returns the number of distinct shards seen and the group size.
// Both are zero before the first shard.
func (d *Decoder) Progress() (seen, total int) {
	return len(d.chunks), d.count
}

// GroupID returns the tracked group and whether a group is being tracked.
func (d *Decoder) GroupID() (uint32, bool) {
	return d.groupID, d.tracking
}

// DecodeData concatenates the chunks in index order.
func (d *Decoder) DecodeData() ([]byte, error) {
	if !d.IsReadyToDecode() {
		seen, total := d.Progress()
		return nil, fmt.Errorf("%w: %d of %d shards", ErrIncomplete, seen, total)
	}

	var buf bytes.Buffer
	for i := 0; i < d.count; i++ {
		buf.Write(d.chunks[i])
	}
	return buf.Bytes(), nil
}

// Reset drops all state so a new group can be scanned.
func (d *Decoder) Reset() {
	d.tracking = false
	d.groupID = 0
	d.count = 0
	clear(d.chunks)
}
