package leakcheck

// Inspector provides read-only access to a ledger's session history.
// Methods must be safe for concurrent use and return defensive copies.
type Inspector interface {
	CountByIdentity(id Identity) int
	CountByTag(tag string) (int, error)

	// Events returns the session history in recording order.
	Events() []Event
	// Live returns every (identity, tag) pair with a non-zero live count.
	Live() []LiveRecord
	// Snapshot returns the flag, history and live records from a single lock acquisition.
	Snapshot() Snapshot
}

// LiveRecord is the live count of one identity under one tag.
type LiveRecord struct {
	Identity Identity
	Tag      string
	Count    int
}

var _ Inspector = (*Ledger)(nil)
