package amk

import (
	"fmt"
	"io"
	"maps"
	"os"
	"strings"
)

// Env is the environment operations run in: the stdio streams handed to
// external commands and a set of tags that becomes their exec environment.
type Env struct {
	In       io.Reader
	Out, Err io.Writer

	tags    map[string]string
	xenv    []string
	xenvErr error
}

// DefaultEnv returns an Env on the process stdio with tags taken from the
// process environment. Malformed entries are reported to tr and skipped.
func DefaultEnv(tr *Trace) *Env {
	env := &Env{
		In:   os.Stdin,
		Out:  os.Stdout,
		Err:  os.Stderr,
		tags: make(map[string]string),
	}
	for _, evar := range os.Environ() {
		k, v, ok := strings.Cut(evar, "=")
		if k == "" {
			if tr != nil {
				tr.Warn("ignoring default `env`", `env`, evar)
			}
			continue
		}
		if !ok {
			v = ""
		}
		env.tags[k] = v
	}
	return env
}

// Clone returns an independent copy of e with the same streams and tags.
func (e *Env) Clone() *Env {
	return &Env{
		In: e.In, Out: e.Out, Err: e.Err,
		tags: maps.Clone(e.tags),
	}
}

func (e *Env) Tag(key string) (string, bool) {
	v, ok := e.tags[key]
	return v, ok
}

func (e *Env) SetTag(key, val string) {
	if e.tags == nil {
		e.tags = make(map[string]string)
	}
	e.tags[key] = val
	e.clearXEnv()
}

func (e *Env) DelTag(key string) {
	delete(e.tags, key)
	e.clearXEnv()
}

// NonExecEnvKeys reports tag keys that cannot be passed to an external
// command, i.e. empty keys or keys containing '='.
type NonExecEnvKeys []string

func (e NonExecEnvKeys) Error() string {
	return fmt.Sprintf("illegal exec env keys: %s", strings.Join(e, ", "))
}

func (NonExecEnvKeys) Is(target error) bool {
	_, ok := target.(NonExecEnvKeys)
	return ok
}

// ExecEnv returns e's tags in the "key=value" form expected by [os/exec].
// Tags with illegal keys are left out and reported as [NonExecEnvKeys].
func (e *Env) ExecEnv() ([]string, error) {
	if e.xenv == nil {
		var errKeys []string
		for k, v := range e.tags {
			switch {
			case k == "":
				errKeys = append(errKeys, `""`)
			case strings.ContainsRune(k, '='):
				errKeys = append(errKeys, k)
			default:
				e.xenv = append(e.xenv, fmt.Sprintf("%s=%s", k, v))
			}
		}
		if len(errKeys) > 0 {
			e.xenvErr = NonExecEnvKeys(errKeys)
		}
	}
	return e.xenv, e.xenvErr
}

func (e *Env) clearXEnv() {
	e.xenv = nil
	e.xenvErr = nil
}
