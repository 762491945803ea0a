package leakcheck

// NoopRecorder is a Recorder that drops every event.
type NoopRecorder struct{}

func (NoopRecorder) RecordAllocation(Identity, string)   {}
func (NoopRecorder) RecordDeallocation(Identity, string) {}
