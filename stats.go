package arena

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// SizeInUse returns the total number of bytes currently allocated in the
// arena. This includes internal fragmentation due to alignment.
func (a *Arena) SizeInUse() int {
	sum := 0
	for i := range a.blocks {
		sum += int(a.blocks[i].used)
	}
	return sum
}

// NumBlocks returns the number of blocks currently in the chain.
func (a *Arena) NumBlocks() int {
	return len(a.blocks)
}

// Capacity returns the total capacity (in bytes) of all blocks in the
// arena.
func (a *Arena) Capacity() int {
	return a.total
}

// Utilization returns the ratio of bytes in use to total capacity
// (0.0 to 1.0). Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	if a.total == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(a.total)
}

// BlockSize returns the default block size used by this arena.
func (a *Arena) BlockSize() int {
	return a.blockSize
}

// Stats returns a snapshot of arena statistics, aggregated over the block
// chain. Pure read; safe to call at any point for diagnostics.
func (a *Arena) Stats() ArenaStats {
	return ArenaStats{
		TotalSize:  a.Capacity(),
		UsedSize:   a.SizeInUse(),
		BlockCount: a.NumBlocks(),
	}
}

// ArenaStats contains statistical information about an arena.
type ArenaStats struct {
	TotalSize  int // total capacity in bytes
	UsedSize   int // bytes currently allocated
	BlockCount int // number of blocks in the chain
}

// String renders the stats in human-readable form.
func (st ArenaStats) String() string {
	return fmt.Sprintf("%s used of %s in %d block(s)",
		humanize.IBytes(uint64(st.UsedSize)),
		humanize.IBytes(uint64(st.TotalSize)),
		st.BlockCount)
}
