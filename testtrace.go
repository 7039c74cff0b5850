package amk

import (
	"testing"
	"time"
)

// TestTracer reports trace events through a testing.T log.
type TestTracer struct{ T *testing.T }

var _ Tracer = TestTracer{}

func (tr TestTracer) Debug(t *Trace, msg string, args ...any) {
	tr.T.Logf("amk-DEBUG: "+msg+" %v", args)
}

func (tr TestTracer) Info(t *Trace, msg string, args ...any) {
	tr.T.Logf("amk-INFO: "+msg+" %v", args)
}

func (tr TestTracer) Warn(t *Trace, msg string, args ...any) {
	tr.T.Logf("amk-WARN: "+msg+" %v", args)
}

func (tr TestTracer) StartTarget(t *Trace, tgt *Target) {
	tr.T.Logf("amk-StartTarget: %s", tgt)
}

func (tr TestTracer) DoneTarget(t *Trace, tgt *Target, dt time.Duration) {
	tr.T.Logf("amk-DoneTarget: %s %s", tgt, dt)
}

func (tr TestTracer) RunOp(t *Trace, tgt *Target, op Operation) {
	tr.T.Logf("amk-RunOp: %s (%s)", tgt, op.Describe(tgt.Project()))
}

func (tr TestTracer) SkipOps(t *Trace, tgt *Target, n int) {
	tr.T.Logf("amk-SkipOps: %s %d", tgt, n)
}

func (tr TestTracer) RemovePath(t *Trace, path string) {
	tr.T.Logf("amk-RemovePath: %s", path)
}
