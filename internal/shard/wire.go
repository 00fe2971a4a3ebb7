package shard

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-otp-vault/models"
)

// Encode serializes a shard into its JSON frame:
//
//	{"g":{"id":1234,"idx":0,"tot":3},"d":"<base64 chunk>"}
func Encode(s models.Shard) ([]byte, error) {
	frame, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode shard: %w", err)
	}
	return frame, nil
}

// Parse reads a JSON frame and checks that its index lies inside its group.
func Parse(frame []byte) (models.Shard, error) {
	var s models.Shard
	if err := json.Unmarshal(frame, &s); err != nil {
		return models.Shard{}, fmt.Errorf("%w: %w", ErrInvalidShard, err)
	}
	if s.Group.Count <= 0 || s.Group.Index < 0 || s.Group.Index >= s.Group.Count {
		return models.Shard{}, fmt.Errorf("%w: index %d of %d", ErrInvalidShard, s.Group.Index, s.Group.Count)
	}
	return s, nil
}
