// Package arena implements a block-chained bump allocator (memory arena)
// with rewindable temporary regions, pooled scratch sessions, and a small
// context layer that ties them together.
//
// # Overview
//
// An arena allocator serves allocations by advancing an offset within
// large heap blocks, with no per-allocation metadata and no individual
// free. Memory is reclaimed in bulk: by resetting the arena, by rewinding
// to a temp marker, or by releasing the arena entirely. This suits:
//
//   - Request- or task-scoped allocation with batch cleanup
//   - Parser/compiler-style workloads with phase-shaped lifetimes
//   - Reducing garbage collection pressure for many small objects
//
// # Basic Usage
//
//	a := arena.NewArena(0) // default 1 MiB blocks
//	defer a.Release()      // clean up when done
//
//	buf := a.AllocBytes(1024)
//	ptr := arena.Alloc[MyStruct](a)
//	ids := arena.AllocSlice[int64](a, 100)
//
//	a.Reset() // O(blocks) bulk reclaim; head block is reused
//
// # Temporary Regions
//
// TempBegin records the arena's allocation state on a fixed 32-deep
// marker stack; TempEnd rewinds to a marker, releasing everything
// allocated after it. Ending an older marker also invalidates all younger
// ones, so markers may be used strictly nested or rewound en masse to an
// earlier point.
//
//	m, _ := a.TempBegin()
//	// ... temporary allocations ...
//	a.TempEnd(m)
//
// # Scratch Sessions and Pooling
//
// Scratch wraps the marker pair into a guard-style handle:
//
//	s, _ := arena.BeginScratch(a)
//	defer s.End()
//	tmp := s.AllocBytes(512)
//
// ScratchPool amortizes repeated scratch churn on one arena by keeping up
// to 8 finished sessions and deferring their rewind until reuse. Context
// packages a long-lived arena with a pooled temp arena for application
// code.
//
// # Thread Safety
//
// Nothing in this package is goroutine-safe; there is no internal locking
// by design. Use one arena (and its scratches, pools, and context) per
// goroutine.
//
// # Performance Characteristics
//
//   - Allocation: O(1) amortized bump arithmetic
//   - TempEnd/Reset: O(blocks dropped)
//   - Release: O(1)
//   - Warm pooled scratch cycle: two marker operations, no heap traffic
//
// # Important Notes
//
//   - Allocated memory is only valid while the arena exists and has not
//     been reset or rewound past it
//   - Alignment arguments must be powers of two (caller-enforced)
//   - Memory is not zeroed unless using CallocBytes, Alloc, or the
//     *Zeroed variants
package arena
