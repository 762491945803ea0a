package leakcheck

import "sync/atomic"

// Recorder receives lifecycle events from guards. *Ledger implements it.
// Implementations must be safe for concurrent use.
type Recorder interface {
	RecordAllocation(id Identity, tag string)
	RecordDeallocation(id Identity, tag string)
}

var (
	_ Recorder = (*Ledger)(nil)
	_ Recorder = NoopRecorder{}
)

// Guard binds one tracked instance to exactly one allocation/deallocation pair.
// The allocation is recorded when the guard is created and the deallocation on the
// first call to Release. Guards are handed out as pointers and must not be copied;
// passing the pointer around transfers ownership without recording anything.
// The atomic.Bool field makes `go vet` (copylocks) flag copies by value.
type Guard struct {
	rec      Recorder
	id       Identity
	tag      string
	released atomic.Bool
}

// NewGuard records an allocation of id under tag and returns the guard owning it.
// A nil recorder, or a nil *Ledger, records nothing.
func NewGuard(r Recorder, id Identity, tag string) *Guard {
	if r == nil {
		r = NoopRecorder{}
	}
	g := &Guard{rec: r, id: id, tag: tag}
	r.RecordAllocation(id, tag)
	return g
}

// Track declares an instance of T as tracked, optionally under tag.
// The typical use is a guard field set in T's constructor and released in its Close:
//
//	type Conn struct {
//		guard *leakcheck.Guard
//	}
//
//	func NewConn(r leakcheck.Recorder) *Conn {
//		return &Conn{guard: leakcheck.Track[Conn](r, "net")}
//	}
//
//	func (c *Conn) Close() error {
//		c.guard.Release()
//		return nil
//	}
func Track[T any](r Recorder, tag string) *Guard {
	return NewGuard(r, IdentityOf[T](), tag)
}

// Release records the matching deallocation. Only the first call has an effect;
// it is safe to call from any goroutine and on a nil guard.
func (g *Guard) Release() {
	if g == nil {
		return
	}
	if g.released.CompareAndSwap(false, true) {
		g.rec.RecordDeallocation(g.id, g.tag)
	}
}

// Released reports whether Release has been called.
func (g *Guard) Released() bool {
	return g != nil && g.released.Load()
}

func (g *Guard) Identity() Identity { return g.id }
func (g *Guard) Tag() string        { return g.tag }

// Scope runs fn while holding a guard for id and releases it on every exit path:
// normal return, returned error, or panic (which keeps propagating after release).
func Scope(r Recorder, id Identity, tag string, fn func(g *Guard) error) error {
	g := NewGuard(r, id, tag)
	defer g.Release()
	return fn(g)
}
