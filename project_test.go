package amk

import (
	"fmt"
	"strings"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
)

func TestProject_redefineTarget(t *testing.T) {
	prj := NewProject(t.Name())
	testerr.Shall1(prj.Target("clean", "")).BeNil(t)
	if _, err := prj.Target("clean", ""); err == nil {
		t.Error("redefinition not rejected")
	}
}

func TestProject_targetOrder(t *testing.T) {
	prj := NewProject(t.Name())
	for _, n := range []string{"all", "clean", "install"} {
		testerr.Shall1(prj.Target(n, "")).BeNil(t)
	}
	ts := prj.Targets()
	if len(ts) != 3 {
		t.Fatalf("have %d targets", len(ts))
	}
	for i, n := range []string{"all", "clean", "install"} {
		if ts[i].Name() != n {
			t.Errorf("target %d is '%s', want '%s'", i, ts[i].Name(), n)
		}
	}
}

func TestProject_findTarget(t *testing.T) {
	prj := NewProject(t.Name())
	tgt := testerr.Shall1(prj.Target("install", "")).BeNil(t)
	if prj.FindTarget("install") != tgt {
		t.Error("declared target not found")
	}
	if prj.FindTarget("nope") != nil {
		t.Error("found undeclared target")
	}
}

func ExampleProject_WriteTargets() {
	prj := NewProject("example")
	prj.Target("all", "print this target listing")
	prj.Target("clean", "delete build artifacts")
	var sb strings.Builder
	prj.WriteTargets(&sb)
	fmt.Print(sb.String())
	// Output:
	// all          print this target listing
	// clean        delete build artifacts
}
