package spatial

import "github.com/hupe1980/polygo/internal/pool"

// Scratch is reusable traversal state. A Scratch must be used by one
// goroutine at a time; Release returns its buffers to a shared pool.
type Scratch struct {
	sc *pool.SearchContext

	vertex vertexVisitor
	cost   costVisitor
	edge   edgeVisitor
}

// ScratchStats reports the work done through a Scratch.
type ScratchStats struct {
	NodesVisited int
	ItemsScored  int
}

// AcquireScratch returns a Scratch backed by pooled buffers.
func AcquireScratch() *Scratch {
	return &Scratch{sc: pool.Get()}
}

// Release returns the buffers to the pool. The Scratch must not be used
// afterwards.
func (s *Scratch) Release() {
	pool.Put(s.sc)
	s.sc = nil
}

// Stats returns the cumulative traversal counters.
func (s *Scratch) Stats() ScratchStats {
	st := s.sc.Stats()
	return ScratchStats{NodesVisited: st.NodesVisited, ItemsScored: st.ItemsScored}
}

func ensureScratch(s *Scratch) (*Scratch, func()) {
	if s != nil {
		return s, func() {}
	}
	s = AcquireScratch()
	return s, s.Release
}
