package amk

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// A Project maps target names to their targets. Targets keep their
// declaration order for listings; nothing else depends on it.
type Project struct {
	Dir string

	targets map[string]*Target
	order   []string
}

// NewProject creates a project rooted at dir. An empty dir means the current
// working directory.
func NewProject(dir string) *Project {
	if dir == "" {
		dir, _ = os.Getwd()
	}
	return &Project{
		Dir:     dir,
		targets: make(map[string]*Target),
	}
}

func (prj *Project) Name() string {
	tmp := prj.Dir
	if tmp == "" || tmp == "." {
		tmp, _ = filepath.Abs(tmp)
	}
	return filepath.Base(tmp)
}

// Target declares a new target with the given operation sequence. Declaring
// a name twice is an error.
func (prj *Project) Target(name, desc string, ops ...Operation) (*Target, error) {
	if _, ok := prj.targets[name]; ok {
		return nil, fmt.Errorf("redefining target '%s'", name)
	}
	t := &Target{name: name, desc: desc, ops: ops, prj: prj}
	prj.targets[name] = t
	prj.order = append(prj.order, name)
	return t, nil
}

// FindTarget returns nil if no target is declared under name.
func (prj *Project) FindTarget(name string) *Target {
	return prj.targets[name]
}

// Targets returns all targets in declaration order.
func (prj *Project) Targets() []*Target {
	ts := make([]*Target, 0, len(prj.order))
	for _, n := range prj.order {
		ts = append(ts, prj.targets[n])
	}
	return ts
}

// AbsPath resolves p against the project directory.
func (prj *Project) AbsPath(p string) (string, error) {
	if filepath.IsAbs(p) {
		return filepath.Clean(p), nil
	}
	return filepath.Abs(filepath.Join(prj.Dir, p))
}

// WriteTargets writes the target listing in declaration order, one line per
// target with its description.
func (prj *Project) WriteTargets(w io.Writer) {
	for _, t := range prj.Targets() {
		fmt.Fprintf(w, "%-12s %s\n", t.Name(), t.Desc())
	}
}

// A Target is a named, invokable unit of work: an ordered sequence of
// operations that the [Runner] executes strictly front to back.
type Target struct {
	name, desc string
	ops        []Operation
	prj        *Project
}

func (t *Target) Project() *Project { return t.prj }

func (t *Target) Name() string { return t.name }

func (t *Target) Desc() string { return t.desc }

// Ops returns the target's operation sequence.
func (t *Target) Ops() []Operation { return t.ops }

// Add appends ops to the target's sequence and returns t.
func (t *Target) Add(ops ...Operation) *Target {
	t.ops = append(t.ops, ops...)
	return t
}

func (t *Target) String() string {
	return fmt.Sprintf("[%s]%s", t.name, t.prj.Name())
}
