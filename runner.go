package amk

import (
	"time"

	"github.com/bits-and-blooms/bitset"
)

// A Runner executes targets. Execution is synchronous: one operation after
// the other, front to back, stopping at the first failure. With DryRun set
// every operation is traced but none is executed.
type Runner struct {
	DryRun bool

	trace *Trace
	env   *Env
	done  *bitset.BitSet
}

// NewRunner creates a runner reporting to tr. A nil env is replaced by
// [DefaultEnv] on the first run.
func NewRunner(tr *Trace, env *Env) *Runner {
	return &Runner{trace: tr, env: env}
}

// Target runs the named target of prj. An unknown name returns
// [UnknownTarget] without running any operation. The first failing
// operation is returned as [OperationError]; the rest of the sequence is
// skipped.
func (rn *Runner) Target(prj *Project, name string) error {
	tgt := prj.FindTarget(name)
	if tgt == nil {
		return UnknownTarget(name)
	}
	return rn.run(tgt)
}

// Targets runs the named targets in order. All names are resolved before
// anything runs, so a single unknown name keeps the whole call free of side
// effects.
func (rn *Runner) Targets(prj *Project, names ...string) error {
	tgts := make([]*Target, 0, len(names))
	for _, n := range names {
		tgt := prj.FindTarget(n)
		if tgt == nil {
			return UnknownTarget(n)
		}
		tgts = append(tgts, tgt)
	}
	for _, tgt := range tgts {
		if err := rn.run(tgt); err != nil {
			return err
		}
	}
	return nil
}

func (rn *Runner) run(tgt *Target) error {
	rn.trace.beginRun()
	tr := rn.trace.pushTarget(tgt)
	start := time.Now()
	tr.startTarget(tgt)
	if rn.env == nil {
		rn.env = DefaultEnv(tr)
	}
	ops := tgt.Ops()
	rn.done = bitset.New(uint(len(ops)))
	for i, op := range ops {
		otr := tr.pushOp(op)
		otr.runOp(tgt, op)
		if rn.DryRun {
			rn.done.Set(uint(i))
			continue
		}
		if err := op.Do(otr, tgt, rn.env); err != nil {
			tr.skipOps(tgt, len(ops)-i-1)
			return &OperationError{
				Target: tgt.Name(),
				Op:     i,
				Desc:   op.Describe(tgt.Project()),
				Err:    err,
			}
		}
		rn.done.Set(uint(i))
	}
	tr.doneTarget(tgt, time.Since(start))
	return nil
}

// Done reports whether operation i of the most recently run target
// completed. In a dry run traced operations count as done.
func (rn *Runner) Done(i int) bool {
	return rn.done != nil && rn.done.Test(uint(i))
}

// DoneCount returns the number of completed operations of the most recently
// run target.
func (rn *Runner) DoneCount() int {
	if rn.done == nil {
		return 0
	}
	return int(rn.done.Count())
}
