package leakcheck

import (
	"slices"
	"sync"
)

// Ledger is an in-memory, concurrency-safe log of allocation and deallocation events.
// All state (the event history and the logging flag) is guarded by a single mutex, so
// every count observes a consistent snapshot and never interleaves with an append.
// The logger is never called while the mutex is held.
//
// A new Ledger has logging disabled; nothing is recorded until Restart is called.
type Ledger struct {
	logger   Logger
	tracking bool

	mu      sync.Mutex
	events  []Event
	enabled bool

	// per-pair invariant report counts for the current session; see reportInvariantViolation
	reportMu sync.Mutex
	reports  map[liveKey]int
}

// NewLedger constructs a new Ledger.
// Accepts optional functional options to customize behavior.
func NewLedger(opts ...LedgerOption) *Ledger {
	cfg := &ledgerConfig{}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	l := cfg.logger
	if l == nil {
		l = newNoopLogger()
	}
	return &Ledger{
		logger:   l,
		tracking: trackingCompiledIn && !cfg.trackingDisabled,
	}
}

// RecordAllocation appends an allocation event if logging is enabled.
func (l *Ledger) RecordAllocation(id Identity, tag string) {
	l.record(Event{Kind: Allocation, Identity: id, Tag: tag})
}

// RecordDeallocation appends a deallocation event if logging is enabled.
func (l *Ledger) RecordDeallocation(id Identity, tag string) {
	l.record(Event{Kind: Deallocation, Identity: id, Tag: tag})
}

func (l *Ledger) record(e Event) {
	if l == nil {
		return
	}
	l.mu.Lock()
	if l.enabled {
		l.events = append(l.events, e)
	}
	l.mu.Unlock()
}

// CountByIdentity returns allocations minus deallocations of id since the last Restart.
func (l *Ledger) CountByIdentity(id Identity) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, e := range l.events {
		if e.Identity == id {
			n += e.delta()
		}
	}
	return n
}

// CountByTag returns allocations minus deallocations recorded under tag since the last
// Restart. It fails with *TagAmbiguousError when events from more than one identity were
// recorded under tag in this session, including identities whose count has since
// dropped back to zero. The empty tag denotes untagged events and always counts 0.
func (l *Ledger) CountByTag(tag string) (int, error) {
	if tag == "" {
		return 0, nil
	}

	n, ids := l.scanTag(tag)
	if len(ids) > 1 {
		err := &TagAmbiguousError{Tag: tag, Identities: ids}
		l.logger.Warnf("[leakcheck] %v", err)
		return 0, err
	}
	return n, nil
}

// scanTag returns the signed count under tag and the distinct identities seen under it.
func (l *Ledger) scanTag(tag string) (int, []Identity) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var (
		n   int
		ids []Identity
	)
	for _, e := range l.events {
		if e.Tag != tag {
			continue
		}
		n += e.delta()
		if !slices.Contains(ids, e.Identity) {
			ids = append(ids, e.Identity)
		}
	}
	return n, ids
}

// Restart clears the history and enables logging, starting a new session.
// It does nothing on a ledger with tracking disabled.
func (l *Ledger) Restart() {
	if !l.tracking {
		return
	}
	l.mu.Lock()
	discarded := len(l.events)
	l.events = nil
	l.enabled = true
	l.mu.Unlock()

	l.reportMu.Lock()
	l.reports = nil
	l.reportMu.Unlock()

	l.logger.Debugf("[leakcheck] session restarted (%d events discarded)", discarded)
}

// Stop disables logging. Events recorded so far stay queryable until the next Restart.
func (l *Ledger) Stop() {
	l.mu.Lock()
	wasEnabled := l.enabled
	l.enabled = false
	retained := len(l.events)
	l.mu.Unlock()

	if wasEnabled {
		l.logger.Debugf("[leakcheck] session stopped (%d events retained)", retained)
	}
}

// Enabled reports whether the ledger is currently recording.
func (l *Ledger) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

// Count returns the live count of T in l.
func Count[T any](l *Ledger) int {
	return l.CountByIdentity(IdentityOf[T]())
}
