package leakcheck

type ledgerConfig struct {
	logger Logger
	// when true, Restart never enables logging and every guard is effectively a no-op.
	trackingDisabled bool
}

// LedgerOption configures a Ledger constructed by NewLedger.
type LedgerOption func(*ledgerConfig)

// WithLogger sets the logger used for lifecycle and invariant diagnostics.
// A nil logger keeps the default no-op logger.
func WithLogger(l Logger) LedgerOption {
	return func(cfg *ledgerConfig) { cfg.logger = l }
}

// WithTrackingDisabled turns the ledger into a permanent no-op: Restart does not enable
// logging, so no event is ever recorded and every count stays 0. Builds with the
// noleakcheck tag behave as if this option were always set.
func WithTrackingDisabled() LedgerOption {
	return func(cfg *ledgerConfig) { cfg.trackingDisabled = true }
}
