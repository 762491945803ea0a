package leakcheck

import "testing"

// requireTracking skips tests that need recorded events in builds with tracking compiled out.
func requireTracking(t *testing.T) {
	t.Helper()
	if !trackingCompiledIn {
		t.Skip("tracking compiled out (noleakcheck)")
	}
}

// widget and gadget are tracked components wired the way callers are expected to wire them.
type widget struct {
	guard *Guard
	name  string
}

func newWidget(r Recorder, tag string) *widget {
	return &widget{guard: Track[widget](r, tag), name: "w"}
}

func (w *widget) Close() { w.guard.Release() }

type gadget struct {
	guard *Guard
}

func newGadget(r Recorder, tag string) *gadget {
	return &gadget{guard: Track[gadget](r, tag)}
}

func (g *gadget) Close() { g.guard.Release() }
