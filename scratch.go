package arena

// Scratch is a scoped temporary-memory session on a parent arena. Begin
// pushes a temp marker; End rewinds to it, releasing everything the
// session allocated. Scratch holds a non-owning reference and must not
// outlive its arena.
//
// Multiple Scratches on the same arena must be ended innermost-first:
// ending an outer one also invalidates the markers of every inner one
// (see Arena.TempEnd). Ending an already-ended Scratch is a no-op.
type Scratch struct {
	arena  *Arena
	marker Marker
}

// BeginScratch opens a scratch session on a. Fails only if the arena's
// temp marker stack is exhausted.
func BeginScratch(a *Arena) (Scratch, error) {
	m, err := a.TempBegin()
	if err != nil {
		return Scratch{marker: noMarker}, err
	}
	return Scratch{arena: a, marker: m}, nil
}

// End rewinds the parent arena to the session's marker and invalidates
// the handle. Safe to call more than once; only the first call rewinds.
func (s *Scratch) End() {
	if s.arena == nil {
		return
	}
	s.arena.TempEnd(s.marker)
	s.arena = nil
	s.marker = noMarker
}

// Active reports whether the session has not been ended.
func (s *Scratch) Active() bool {
	return s.arena != nil
}

// Arena returns the parent arena, or nil after End.
func (s *Scratch) Arena() *Arena {
	return s.arena
}

// AllocBytes allocates n bytes from the parent arena; the bytes are
// released when the session ends.
func (s *Scratch) AllocBytes(n int) []byte {
	s.panicIfEnded()
	return s.arena.AllocBytes(n)
}

// AllocBytesAligned allocates n bytes at the given power-of-two alignment
// from the parent arena.
func (s *Scratch) AllocBytesAligned(n, align int) []byte {
	s.panicIfEnded()
	return s.arena.AllocBytesAligned(n, align)
}

// CallocBytes allocates n zeroed bytes from the parent arena.
func (s *Scratch) CallocBytes(n int) []byte {
	s.panicIfEnded()
	return s.arena.CallocBytes(n)
}

func (s *Scratch) panicIfEnded() {
	if s.arena == nil {
		panic("arena: use of ended Scratch")
	}
}
