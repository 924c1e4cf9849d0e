package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/cszach/Network-Inoculator/pkg/layout"
	"github.com/cszach/Network-Inoculator/pkg/netgraph"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// GraphHash fingerprints a graph's topology. Two graphs with the same node
// count and edge set hash identically regardless of how they were built.
func GraphHash(g *netgraph.Graph) string {
	data, _ := json.Marshal(struct {
		Nodes int      `json:"nodes"`
		Edges [][2]int `json:"edges"`
	}{g.NodeCount(), g.Edges()})
	return Hash(data)
}

// LayoutKey generates the cache key for a layout computed from the graph
// identified by graphHash with the given simulation parameters.
func LayoutKey(graphHash string, cfg layout.Config) string {
	return hashKey("layout", graphHash, cfg.Width, cfg.Height, cfg.Iterations, cfg.Seed)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}
