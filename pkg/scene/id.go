package scene

import (
	"crypto/sha256"
	"encoding/hex"
)

// NodeID is a content-addressed identifier for scene nodes. It is the hex
// SHA-256 of the node's path, e.g. "defsolid/cube" or "place/cube/1".
type NodeID string

// NewNodeID derives the ID for a node path. Equal paths give equal IDs.
func NewNodeID(path string) NodeID {
	sum := sha256.Sum256([]byte(path))
	return NodeID(hex.EncodeToString(sum[:]))
}

// Short returns the first 8 characters, for messages.
func (id NodeID) Short() string {
	if len(id) <= 8 {
		return string(id)
	}
	return string(id[:8])
}

// IsZero reports whether the ID is unset.
func (id NodeID) IsZero() bool {
	return id == ""
}
