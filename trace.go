package amk

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// Tracer receives the events of running targets. Implementations decide how
// to render them, see [WriteTracer] and [TestTracer].
type Tracer interface {
	Debug(t *Trace, msg string, args ...any)
	Info(t *Trace, msg string, args ...any)
	Warn(t *Trace, msg string, args ...any)

	StartTarget(t *Trace, tgt *Target)
	DoneTarget(t *Trace, tgt *Target, dt time.Duration)

	// RunOp is called before each operation, also in dry runs.
	RunOp(t *Trace, tgt *Target, op Operation)

	// SkipOps reports the n operations of tgt that will not run because an
	// earlier operation failed.
	SkipOps(t *Trace, tgt *Target, n int)

	// RemovePath reports a path a filesystem operation is about to remove.
	RemovePath(t *Trace, path string)
}

type TraceLog int

const (
	TraceWarn TraceLog = (1 << iota)
	TraceInfo
	TraceDebug
)

// A Trace is handed down from the [Runner] through targets into operations.
// It carries the run's context, a [Tracer] and a tag path that localizes
// trace output within the run.
type Trace struct {
	root *traceRoot
	up   *Trace
	obj  any
	id   uint64
}

func NewTrace(ctx context.Context, tr Tracer) *Trace {
	root := &traceRoot{ctx: ctx, tr: tr}
	return &Trace{root: root}
}

func (t *Trace) Ctx() context.Context { return t.root.ctx }

// Run returns the number of the current [Runner] run, starting at 1.
func (t *Trace) Run() uint64 { return t.root.run.Load() }

func (t *Trace) Debug(msg string, args ...any) { t.root.tr.Debug(t, msg, args...) }
func (t *Trace) Info(msg string, args ...any)  { t.root.tr.Info(t, msg, args...) }
func (t *Trace) Warn(msg string, args ...any)  { t.root.tr.Warn(t, msg, args...) }

// RemovePath forwards to the tracer. It is exported for operation
// implementations outside this package, e.g. package fsops.
func (t *Trace) RemovePath(path string) { t.root.tr.RemovePath(t, path) }

func (t *Trace) startTarget(tgt *Target) { t.root.tr.StartTarget(t, tgt) }

func (t *Trace) doneTarget(tgt *Target, dt time.Duration) {
	t.root.tr.DoneTarget(t, tgt, dt)
}

func (t *Trace) runOp(tgt *Target, op Operation) { t.root.tr.RunOp(t, tgt, op) }

func (t *Trace) skipOps(tgt *Target, n int) { t.root.tr.SkipOps(t, tgt, n) }

func (t *Trace) TopID() uint64 { return t.id }

func (t *Trace) TopTag() string {
	switch t.obj.(type) {
	case *Target:
		return fmt.Sprintf("{%d}", t.id)
	case Operation:
		return fmt.Sprintf("(%d)", t.id)
	case nil:
		return ""
	}
	return fmt.Sprintf("!%T!", t.obj)
}

func (t *Trace) Path() string {
	var sb strings.Builder
	sb.WriteByte('<')
	for ; t != nil; t = t.up {
		sb.WriteString(t.TopTag())
	}
	sb.WriteByte('>')
	return sb.String()
}

func (t *Trace) String() string {
	return fmt.Sprintf("%d@%s", t.Run(), t.Path())
}

func (t *Trace) beginRun() uint64 { return t.root.run.Add(1) }

func (t *Trace) pushTarget(tgt *Target) *Trace {
	return &Trace{
		root: t.root,
		up:   t,
		obj:  tgt,
		id:   t.root.idSeq.Add(1),
	}
}

func (t *Trace) pushOp(op Operation) *Trace {
	return &Trace{
		root: t.root,
		up:   t,
		obj:  op,
		id:   t.root.idSeq.Add(1),
	}
}

type traceRoot struct {
	ctx   context.Context
	tr    Tracer
	run   atomic.Uint64
	idSeq atomic.Uint64
}
