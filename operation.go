package amk

// An Operation is a single side-effecting action within a [Target]. The
// trace carries the run's context; blocking operations must honor it.
type Operation interface {
	Describe(prj *Project) string
	Do(tr *Trace, tgt *Target, env *Env) error
}

// OpFunc wraps an in-process function as an [Operation].
func OpFunc(desc string, f func(*Trace, *Target, *Env) error) Operation {
	return funcOp{desc: desc, f: f}
}

type funcOp struct {
	desc string
	f    func(*Trace, *Target, *Env) error
}

func (fo funcOp) Describe(*Project) string { return fo.desc }

func (fo funcOp) Do(tr *Trace, tgt *Target, env *Env) error {
	tr.Debug("call `function`", `function`, fo.desc)
	return fo.f(tr, tgt, env)
}
