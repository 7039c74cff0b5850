package amk

import (
	"context"
	"errors"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
)

func recOp(name string, log *[]string, fail error) Operation {
	return OpFunc(name, func(*Trace, *Target, *Env) error {
		*log = append(*log, name)
		return fail
	})
}

func testRunner(t *testing.T) *Runner {
	return NewRunner(NewTrace(context.Background(), TestTracer{t}), new(Env))
}

func TestRunner_opsRunInOrder(t *testing.T) {
	var log []string
	prj := NewProject(t.Name())
	testerr.Shall1(prj.Target("tgt", "",
		recOp("one", &log, nil),
		recOp("two", &log, nil),
		recOp("three", &log, nil),
	)).BeNil(t)

	rn := testRunner(t)
	testerr.Shall(rn.Target(prj, "tgt")).BeNil(t)
	if len(log) != 3 || log[0] != "one" || log[1] != "two" || log[2] != "three" {
		t.Errorf("ops ran as %v", log)
	}
	if n := rn.DoneCount(); n != 3 {
		t.Errorf("done count %d", n)
	}
}

func TestRunner_failureSkipsRest(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	prj := NewProject(t.Name())
	testerr.Shall1(prj.Target("tgt", "",
		recOp("one", &log, nil),
		recOp("two", &log, boom),
		recOp("three", &log, nil),
	)).BeNil(t)

	rn := testRunner(t)
	err := rn.Target(prj, "tgt")
	var opErr *OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("unexpected error: %v", err)
	}
	if opErr.Target != "tgt" || opErr.Op != 1 {
		t.Errorf("failed op reported as '%s' %d", opErr.Target, opErr.Op)
	}
	if !errors.Is(err, boom) {
		t.Error("cause not unwrapped")
	}
	if len(log) != 2 {
		t.Errorf("ops ran as %v", log)
	}
	if rn.DoneCount() != 1 || !rn.Done(0) || rn.Done(1) || rn.Done(2) {
		t.Error("completion set does not match the run")
	}
}

func TestRunner_unknownTarget(t *testing.T) {
	var log []string
	prj := NewProject(t.Name())
	testerr.Shall1(prj.Target("tgt", "", recOp("one", &log, nil))).BeNil(t)

	rn := testRunner(t)
	err := rn.Targets(prj, "tgt", "no-such-target")
	if !errors.Is(err, UnknownTarget("")) {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(log) != 0 {
		t.Errorf("ops ran before resolution failed: %v", log)
	}
}

func TestRunner_dryRun(t *testing.T) {
	var log []string
	prj := NewProject(t.Name())
	testerr.Shall1(prj.Target("tgt", "",
		recOp("one", &log, nil),
		recOp("two", &log, nil),
	)).BeNil(t)

	rn := testRunner(t)
	rn.DryRun = true
	testerr.Shall(rn.Target(prj, "tgt")).BeNil(t)
	if len(log) != 0 {
		t.Errorf("dry run executed ops: %v", log)
	}
	if n := rn.DoneCount(); n != 2 {
		t.Errorf("dry run traced %d ops", n)
	}
}
