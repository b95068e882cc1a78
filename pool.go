package arena

// ScratchPoolSize is the fixed capacity of a ScratchPool's free list.
const ScratchPoolSize = 8

// ScratchPool is a bounded free list of scratch sessions, all bound to one
// parent arena. Put defers the rewind of a returned session until its slot
// is reused by Get, so a warm get/put cycle costs two marker operations
// and no block churn. The price is that a pooled slot's memory stays
// reserved in the parent arena between cycles.
//
// Not goroutine-safe, like the arena it fronts.
type ScratchPool struct {
	parent *Arena
	free   [ScratchPoolSize]Scratch
	count  int
}

// NewScratchPool creates a pool whose sessions are bound to parent.
func NewScratchPool(parent *Arena) *ScratchPool {
	return &ScratchPool{parent: parent}
}

// Get returns a scratch session positioned at the parent arena's current
// state. A pooled session is rewound (releasing whatever its previous
// user left allocated) and given a fresh marker; if the pool is empty a
// new session is opened directly. Fails only if the parent's temp marker
// stack is exhausted.
func (p *ScratchPool) Get() (Scratch, error) {
	if p.count > 0 {
		p.count--
		s := p.free[p.count]
		p.free[p.count] = Scratch{}

		// Release the previous session's memory, then re-mark at the
		// reclaimed position.
		s.arena.TempEnd(s.marker)
		m, err := s.arena.TempBegin()
		if err != nil {
			return Scratch{marker: noMarker}, err
		}
		s.marker = m
		return s, nil
	}
	return BeginScratch(p.parent)
}

// Put returns a session to the pool without rewinding it; the rewind
// happens when the slot is reused by Get. If the pool is full the session
// is ended immediately. An already-ended session is ignored.
func (p *ScratchPool) Put(s Scratch) {
	if s.arena == nil {
		return
	}
	if p.count < ScratchPoolSize {
		p.free[p.count] = s
		p.count++
		return
	}
	s.End()
}

// Len reports the number of sessions currently pooled.
func (p *ScratchPool) Len() int {
	return p.count
}

// Parent returns the arena all pooled sessions are bound to.
func (p *ScratchPool) Parent() *Arena {
	return p.parent
}
