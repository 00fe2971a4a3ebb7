// Package shard splits payloads into bounded-size, ID-tagged shards for
// transport through QR codes and reassembles them on the receiving side.
//
// A [Builder] turns one payload into a group of shards sharing a random
// group ID. A [Decoder] accumulates scanned frames for one group at a time:
// frames belonging to another group are ignored so a scanner can keep running
// past unrelated codes, and the payload becomes available once every index of
// the group has been seen.
package shard
