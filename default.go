package leakcheck

import "sync"

var (
	defaultOnce   sync.Once
	defaultLedger *Ledger
)

// Default returns the process-wide ledger, creating it on first use.
// It lives for the duration of the process; sessions are delimited by Restart and Stop.
func Default() *Ledger {
	defaultOnce.Do(func() {
		defaultLedger = NewLedger()
	})
	return defaultLedger
}

// Restart starts a new session on the default ledger.
func Restart() { Default().Restart() }

// Stop ends the current session on the default ledger.
func Stop() { Default().Stop() }

// CountByIdentity counts live instances of id in the default ledger.
func CountByIdentity(id Identity) int { return Default().CountByIdentity(id) }

// CountByTag counts live instances under tag in the default ledger.
func CountByTag(tag string) (int, error) { return Default().CountByTag(tag) }
