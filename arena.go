// Package arena implements a block-chained bump allocator (memory arena)
// with rewindable temporary regions. Typical usage: create one arena per
// task, allocate many temporary objects from it, then Reset() at the end
// for O(1) cleanup — or open a Scratch to rewind just part of the arena.
package arena

import "unsafe"

// DefaultBlockSize is the default block size for new arenas (1 MiB).
const DefaultBlockSize = 1 << 20

// DefaultAlignment is the alignment applied by AllocBytes and CallocBytes.
const DefaultAlignment = 8

// block represents a single memory block within an arena.
type block struct {
	buf  []byte  // backing memory, never reallocated or moved
	used uintptr // allocation offset within buf
}

// Arena is a block-chained bump allocator. Not goroutine-safe; use one
// arena per goroutine.
type Arena struct {
	blocks    []block
	blockSize int
	total     int // sum of block capacities
	current   *block

	marks     [MaxTempMarkers]tempMark
	markCount int
}

// NewArena creates a new Arena with the specified block size.
// If blockSize <= 0, DefaultBlockSize is used.
func NewArena(blockSize int) *Arena {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	a := &Arena{blockSize: blockSize}
	a.grow(0)
	return a
}

// AllocBytes returns an n-byte slice pointing into the arena's current
// block, aligned to DefaultAlignment. The caller must ensure the arena
// remains reachable while the returned slice is in use.
// Returns nil if n <= 0.
func (a *Arena) AllocBytes(n int) []byte {
	return a.AllocBytesAligned(n, DefaultAlignment)
}

// AllocBytesAligned returns an n-byte slice whose address is a multiple of
// align. align must be a power of two; this is a caller precondition and
// is not validated. Returns nil if n <= 0.
func (a *Arena) AllocBytesAligned(n, align int) []byte {
	if n <= 0 {
		return nil
	}

	// Fast path: bump within the current block.
	c := a.current
	if c != nil {
		base := uintptr(unsafe.Pointer(unsafe.SliceData(c.buf)))
		off := alignForward(base+c.used, uintptr(align)) - base
		if off+uintptr(n) <= uintptr(len(c.buf)) {
			start := int(off)
			c.used = off + uintptr(n)
			return unsafe.Slice((*byte)(unsafe.Pointer(&c.buf[start])), n)
		}
	}

	return a.allocBytesSlow(n, align)
}

// allocBytesSlow handles allocation when the current block is full.
func (a *Arena) allocBytesSlow(n, align int) []byte {
	a.panicIfReleased()

	// The new block must fit the request even after address alignment.
	a.grow(n + align - 1)

	c := a.current
	base := uintptr(unsafe.Pointer(unsafe.SliceData(c.buf)))
	off := alignForward(base, uintptr(align)) - base
	start := int(off)
	c.used = off + uintptr(n)
	return unsafe.Slice((*byte)(unsafe.Pointer(&c.buf[start])), n)
}

// CallocBytes allocates n bytes like AllocBytes and zero-fills them.
func (a *Arena) CallocBytes(n int) []byte {
	b := a.AllocBytes(n)
	if len(b) > 0 {
		clear(b)
	}
	return b
}

// EnsureCapacity ensures the current block has at least n free bytes at
// DefaultAlignment. If not, it grows the arena with a new block.
func (a *Arena) EnsureCapacity(n int) {
	a.panicIfReleased()
	c := a.current
	base := uintptr(unsafe.Pointer(unsafe.SliceData(c.buf)))
	off := alignForward(base+c.used, DefaultAlignment) - base
	if off+uintptr(n) > uintptr(len(c.buf)) {
		a.grow(n)
	}
}

// Reset drops every block after the head, rewinds the head to empty, and
// discards all temp markers. The head block's buffer is retained and
// reused, so the common drain-and-refill pattern causes no heap churn.
func (a *Arena) Reset() {
	a.panicIfReleased()
	a.truncate(0)
	a.blocks[0].used = 0
	a.markCount = 0
}

// Release drops all blocks and makes the arena unusable.
// Any subsequent operations will panic.
func (a *Arena) Release() {
	a.blocks = nil
	a.current = nil
	a.total = 0
	a.markCount = 0
}

// grow appends a new block of at least min bytes and makes it current.
func (a *Arena) grow(min int) {
	size := a.blockSize
	if min > size {
		size = min
	}
	buf := make([]byte, size)
	a.blocks = append(a.blocks, block{buf: buf})
	a.current = &a.blocks[len(a.blocks)-1]
	a.total += size
}

// truncate drops every block after index keep and makes blocks[keep]
// current. Dropped slots are cleared so their buffers become collectible
// despite the slice's retained capacity.
func (a *Arena) truncate(keep int) {
	for i := keep + 1; i < len(a.blocks); i++ {
		a.total -= len(a.blocks[i].buf)
		a.blocks[i] = block{}
	}
	a.blocks = a.blocks[:keep+1]
	a.current = &a.blocks[keep]
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.blocks == nil {
		panic("arena: use after Release()")
	}
}

// alignForward rounds addr up to the next multiple of align.
// align must be a power of two.
func alignForward(addr, align uintptr) uintptr {
	mask := align - 1
	return (addr + mask) &^ mask
}
