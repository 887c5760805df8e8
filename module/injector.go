package module

import (
	"github.com/forgechain/forge-go/model/forge"
)

// BatchInjector supplies mandatory protocol batches that are placed at the
// start of each block, ahead of all externally submitted batches.
//
// Injectors are polled exactly once per candidate, at the moment the first
// external batch is admitted. A failing injector contributes no batches; it
// never aborts block construction.
type BatchInjector interface {

	// BlockStart returns the batches to inject at the start of the block
	// extending the given previous block.
	BlockStart(previous *forge.Block) ([]*forge.Batch, error)
}
