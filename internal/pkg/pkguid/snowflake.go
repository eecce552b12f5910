package pkguid

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/bwmarrin/snowflake"
)

// snowflakeEpoch is Jan 01 2025 00:00:00 UTC. Generated IDs sort by
// creation time relative to it.
const snowflakeEpoch = 1735689600000

// Snowflake produces time-ordered numeric IDs.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake constructs a generator on a random node ID, so instances
// started together do not mint colliding IDs.
func NewSnowflake() (*Snowflake, error) {
	nodeID, err := randomNodeID()
	if err != nil {
		return nil, err
	}

	snowflake.Epoch = snowflakeEpoch

	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns a new unique numeric ID.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}

// randomNodeID draws a node ID in the 10-bit range the snowflake layout
// reserves for it.
func randomNodeID() (int64, error) {
	var raw [8]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return 0, err
	}

	return int64(binary.BigEndian.Uint64(raw[:]) & (1<<10 - 1)), nil
}
