package leakcheck

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithLogger_LifecycleAndAmbiguity(t *testing.T) {
	requireTracking(t)
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewLedger(WithLogger(zap.New(core).Sugar()))

	l.Restart()
	w := newWidget(l, "G")
	g := newGadget(l, "G")
	if _, err := l.CountByTag("G"); err == nil {
		t.Fatal("expected ambiguity error")
	}
	w.Close()
	g.Close()
	l.Stop()
	l.Stop() // already stopped, not logged again

	if n := logs.FilterMessageSnippet("session restarted").Len(); n != 1 {
		t.Fatalf("expected 1 restart log, got %d", n)
	}
	if n := logs.FilterMessageSnippet("session stopped (4 events retained)").Len(); n != 1 {
		t.Fatalf("expected 1 stop log, got %d", n)
	}
	amb := logs.FilterMessageSnippet(`tag "G" is ambiguous`).All()
	if len(amb) != 1 || amb[0].Level != zapcore.WarnLevel {
		t.Fatalf("expected one warn-level ambiguity log, got %+v", amb)
	}
}

func TestWithLogger_ZapTest(t *testing.T) {
	l := NewLedger(WithLogger(zaptest.NewLogger(t).Sugar()))
	l.Restart()
	newWidget(l, "").Close()
	l.Stop()
}

func TestWithLogger_NilKeepsNoop(t *testing.T) {
	l := NewLedger(WithLogger(nil), nil)
	if _, ok := l.logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger, got %T", l.logger)
	}
	l.Restart()
	l.Stop()
}

func TestWithTrackingDisabled(t *testing.T) {
	l := NewLedger(WithTrackingDisabled())
	l.Restart()
	if l.Enabled() {
		t.Fatal("disabled ledger must not enable logging")
	}

	w := newWidget(l, "ui")
	g := NewGuard(l, gadgetID, "ui")
	if got := l.CountByIdentity(widgetID); got != 0 {
		t.Fatalf("want 0, got %d", got)
	}
	if n, err := l.CountByTag("ui"); err != nil || n != 0 {
		t.Fatalf("want 0,nil got %d,%v", n, err)
	}
	w.Close()
	g.Release()
	if n := len(l.Events()); n != 0 {
		t.Fatalf("want no events, got %d", n)
	}
	if live := l.Live(); len(live) != 0 {
		t.Fatalf("want no live records, got %+v", live)
	}
}
