package leakcheck

import "fmt"

// maxReports caps invariant reports per (identity, tag) pair and session, so repeated
// inspection (for example a metrics scrape) does not log or panic on every call.
const maxReports = 10

// Snapshot is a consistent, point-in-time view of a ledger taken under a single lock.
type Snapshot struct {
	Enabled bool
	Events  []Event
	Live    []LiveRecord
}

// Snapshot returns the logging flag, a copy of the session history and the live records
// derived from that same history.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	events := make([]Event, len(l.events))
	copy(events, l.events)
	enabled := l.enabled
	l.mu.Unlock()

	return Snapshot{Enabled: enabled, Events: events, Live: l.live(events)}
}

// Events returns a copy of the current session history.
func (l *Ledger) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

type liveKey struct {
	id  Identity
	tag string
}

// Live returns a point-in-time list of (identity, tag) pairs whose live count is not zero,
// in the order they were first seen. An empty result after a scenario means no leaks.
// Negative counts indicate a deallocation without a matching allocation and are reported
// as invariant violations.
func (l *Ledger) Live() []LiveRecord {
	return l.live(l.Events())
}

func (l *Ledger) live(events []Event) []LiveRecord {
	idx := make(map[liveKey]int)
	var all []LiveRecord
	for _, e := range events {
		k := liveKey{id: e.Identity, tag: e.Tag}
		i, ok := idx[k]
		if !ok {
			i = len(all)
			idx[k] = i
			all = append(all, LiveRecord{Identity: e.Identity, Tag: e.Tag})
		}
		all[i].Count += e.delta()
	}

	var live []LiveRecord
	for _, r := range all {
		if r.Count < 0 {
			l.reportInvariantViolation(r)
		}
		if r.Count != 0 {
			live = append(live, r)
		}
	}
	return live
}

// reportInvariantViolation reports a negative live count, at most maxReports times per
// pair until the next Restart. In strict builds it panics; otherwise it logs a warning.
func (l *Ledger) reportInvariantViolation(r LiveRecord) {
	k := liveKey{id: r.Identity, tag: r.Tag}
	l.reportMu.Lock()
	if l.reports == nil {
		l.reports = make(map[liveKey]int)
	}
	l.reports[k]++
	count := l.reports[k]
	l.reportMu.Unlock()
	if count > maxReports {
		return
	}

	msg := fmt.Sprintf("[leakcheck] invariant violation: negative live count %d for %s (tag %q)",
		r.Count, r.Identity, r.Tag)

	if strictBuild {
		panic(msg)
	}
	l.logger.Warnf("%s", msg)
}
