package amk

import (
	"fmt"
	"io"
	"time"

	"git.fractalqb.de/fractalqb/sllm/v3"
)

// WriteTracer renders trace events line by line to W. Debug, Info and Warn
// messages are filtered by Log and rendered with sllm's backtick templates.
type WriteTracer struct {
	W   io.Writer
	Log TraceLog
}

var _ Tracer = (*WriteTracer)(nil)

func (tr *WriteTracer) ParseLogFlag(f string) error {
	switch f {
	case "":
		return nil
	case "off":
		tr.Log = 0
	case "warn", "w":
		tr.Log = TraceWarn
	case "info", "i":
		tr.Log = TraceWarn | TraceInfo
	case "debug", "d":
		tr.Log = TraceWarn | TraceInfo | TraceDebug
	default:
		return fmt.Errorf("write tracer: illegal log flag '%s'", f)
	}
	return nil
}

func (tr *WriteTracer) Debug(t *Trace, msg string, args ...any) {
	if tr.Log&TraceDebug == 0 {
		return
	}
	fmt.Fprintf(tr.W, "%d@%s\t  DEBUG ", t.Run(), t.TopTag())
	sllm.Fprint(tr.W, msg, sllmArgs(args).append)
	fmt.Fprintln(tr.W)
}

func (tr *WriteTracer) Info(t *Trace, msg string, args ...any) {
	if tr.Log&(TraceInfo|TraceDebug) == 0 {
		return
	}
	fmt.Fprintf(tr.W, "%d@%s\t  INFO  ", t.Run(), t.TopTag())
	sllm.Fprint(tr.W, msg, sllmArgs(args).append)
	fmt.Fprintln(tr.W)
}

func (tr *WriteTracer) Warn(t *Trace, msg string, args ...any) {
	if tr.Log&(TraceWarn|TraceInfo|TraceDebug) == 0 {
		return
	}
	fmt.Fprintf(tr.W, "%d@%s\t  WARN  ", t.Run(), t.TopTag())
	sllm.Fprint(tr.W, msg, sllmArgs(args).append)
	fmt.Fprintln(tr.W)
}

func (tr *WriteTracer) StartTarget(t *Trace, tgt *Target) {
	fmt.Fprintf(tr.W, "%d@%s\t{ run target '%s' in %s\n",
		t.Run(),
		t.TopTag(),
		tgt.Name(),
		tgt.Project().Dir,
	)
}

func (tr *WriteTracer) DoneTarget(t *Trace, tgt *Target, dt time.Duration) {
	fmt.Fprintf(tr.W, "%d@%s\t} target '%s' took %s\n",
		t.Run(),
		t.TopTag(),
		tgt.Name(),
		dt,
	)
}

func (tr *WriteTracer) RunOp(t *Trace, tgt *Target, op Operation) {
	if tr.Log&(TraceInfo|TraceDebug) == 0 {
		return
	}
	fmt.Fprintf(tr.W, "%d@%s\t  run op (%s)\n",
		t.Run(),
		t.TopTag(),
		op.Describe(tgt.Project()),
	)
}

func (tr *WriteTracer) SkipOps(t *Trace, tgt *Target, n int) {
	if n == 0 {
		return
	}
	fmt.Fprintf(tr.W, "%d@%s\t! skip %d ops of target '%s'\n",
		t.Run(),
		t.TopTag(),
		n,
		tgt.Name(),
	)
}

func (tr *WriteTracer) RemovePath(t *Trace, path string) {
	if tr.Log&(TraceInfo|TraceDebug) == 0 {
		return
	}
	fmt.Fprintf(tr.W, "%d@%s\t  remove %s\n", t.Run(), t.TopTag(), path)
}

type sllmArgs []any

func (as sllmArgs) append(buf []byte, _ int, n string) ([]byte, error) {
	for len(as) > 1 {
		k, ok := as[0].(string)
		if !ok {
			return buf, fmt.Errorf("illegal key type %T", as[0])
		}
		if k == n {
			return sllm.AppendArg(buf, as[1]), nil
		}
		as = as[2:]
	}
	return buf, fmt.Errorf("no key '%s'", n)
}
