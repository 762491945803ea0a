/*
Package leakcheck provides deterministic, in-process tracking of object lifetimes for
automated leak detection in tests.

# Overview

The library is organized around two pieces:

1. Ledger: a concurrency-safe, append-only log of allocation and deallocation events with
an on/off switch. Tests open a session with Restart, exercise the code under test, and ask
for live counts (allocations minus deallocations) by type identity or by tag.

	type Inspector interface {
	  CountByIdentity(id Identity) int
	  CountByTag(tag string) (int, error)
	  Events() []Event
	  Live() []LiveRecord
	}

2. Guard: a handle owned by each tracked instance. Creating it records an allocation,
releasing it records the matching deallocation exactly once.

# How it works (high level)

 1. A ledger starts with logging disabled, so components created before any test opts in
    never pollute counts. Restart clears the history and enables logging; Stop disables
    logging and freezes the history until the next Restart.
 2. Every operation takes the same mutex for the duration of a single read or mutation.
    Counting is an exact scan of the session history.
 3. CountByTag fails with *TagAmbiguousError (matching ErrTagAmbiguous) when more than one
    type identity recorded events under the tag in the current session. A tag is meant to
    denote one logical group; the check is lazy, so a tag can be reused after Restart.
 4. Live reports every identity/tag pair with a non-zero count. Negative counts mean a
    deallocation without an allocation and are reported as invariant violations (logged,
    or a panic in builds with the leakcheck_strict tag).

# Examples

	type Session struct {
	    guard *leakcheck.Guard
	}

	func NewSession(r leakcheck.Recorder) *Session {
	    return &Session{guard: leakcheck.Track[Session](r, "sessions")}
	}

	func (s *Session) Close() { s.guard.Release() }

	func TestNoSessionLeak(t *testing.T) {
	    l := leakcheck.NewLedger()
	    l.Restart()
	    defer l.Stop()

	    s := NewSession(l)
	    s.Close()

	    if n := leakcheck.Count[Session](l); n != 0 {
	        t.Fatalf("leaked %d sessions", n)
	    }
	}

The package-level Restart, Stop, CountByIdentity and CountByTag operate on the
process-wide ledger returned by Default.

# Build and test

- Run unit tests:

	go test ./...

- Compile tracking out (every ledger stays disabled and all counts are 0):

	go test -tags=noleakcheck ./...

- Panic on negative live counts:

	go test -tags=leakcheck_strict ./...

# Prometheus

Package promexport exposes live counts of a ledger as Prometheus metrics for diagnostic
endpoints.
*/
package leakcheck
