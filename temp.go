package arena

import "errors"

// MaxTempMarkers is the fixed depth of an arena's temp marker stack.
const MaxTempMarkers = 32

// ErrTempMarkersExhausted is returned by TempBegin when the marker stack
// is full. The condition is recoverable: ending any live marker frees a
// slot.
var ErrTempMarkersExhausted = errors.New("arena: temp marker stack exhausted")

// Marker identifies a temp region pushed by TempBegin. Markers are stack
// indices: marker 0 is the oldest live region.
type Marker int

const noMarker Marker = -1

// tempMark snapshots the allocation state at TempBegin time. The block is
// referenced by index so a snapshot stays valid when the blocks slice
// header moves on append.
type tempMark struct {
	block int     // index of the block that was current
	used  uintptr // its used offset at that moment
}

// TempBegin pushes a temp marker recording the arena's current allocation
// state and returns it. Everything allocated after TempBegin is released
// by the matching TempEnd. Returns ErrTempMarkersExhausted if all
// MaxTempMarkers slots are live.
func (a *Arena) TempBegin() (Marker, error) {
	a.panicIfReleased()
	if a.markCount >= MaxTempMarkers {
		return noMarker, ErrTempMarkersExhausted
	}
	m := Marker(a.markCount)
	a.marks[a.markCount] = tempMark{block: len(a.blocks) - 1, used: a.current.used}
	a.markCount++
	return m, nil
}

// TempEnd rewinds the arena to the state recorded by marker m: the
// snapshot block's offset is restored and every block appended after it
// is dropped. The marker and every marker pushed after it become invalid.
// Markers therefore need not be ended in strict LIFO order — ending an
// older marker implicitly ends all younger ones.
//
// A marker outside the live stack (already ended, or never issued) is a
// silent no-op, so defensive double-ends are safe.
func (a *Arena) TempEnd(m Marker) {
	if a.blocks == nil {
		return
	}
	if m < 0 || int(m) >= a.markCount {
		return
	}
	mk := a.marks[m]
	a.truncate(mk.block)
	a.current.used = mk.used
	a.markCount = int(m)
}

// TempDepth reports the number of live temp markers.
func (a *Arena) TempDepth() int {
	return a.markCount
}
