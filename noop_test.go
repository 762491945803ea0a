package leakcheck

import "testing"

func TestNoopRecorder_Minimal(t *testing.T) {
	var r Recorder = NoopRecorder{}

	// should be no-op and not panic
	r.RecordAllocation(widgetID, "x")
	r.RecordDeallocation(widgetID, "x")

	w := newWidget(r, "x")
	w.Close()
	if !w.guard.Released() {
		t.Fatal("expected guard released")
	}
}
