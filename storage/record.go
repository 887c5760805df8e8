package storage

import (
	"github.com/forgechain/forge-go/model/forge"
)

// CommitRecord is the value stored for every committed transaction and
// batch, pointing back at the block that committed it.
type CommitRecord struct {
	BlockID forge.Identifier
	Height  uint64
}
