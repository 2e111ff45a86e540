package uid

import (
	"hash/fnv"
	"os"

	"github.com/bwmarrin/snowflake"
)

// Snowflake generates time-ordered int64 identifiers.
//
// The node ID is derived from the hostname so replicas of the same deployment
// get distinct generators without extra coordination.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake returns a snowflake-based numeric ID generator.
func NewSnowflake() (*Snowflake, error) {
	host, err := os.Hostname()
	if err != nil {
		host = "shelfwise"
	}

	h := fnv.New32a()
	if _, err := h.Write([]byte(host)); err != nil {
		return nil, err
	}

	node, err := snowflake.NewNode(int64(h.Sum32() % 1024))
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns a new int64 identifier.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}
