package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/amigaos-dev/amk"
)

func TestDeclareTargets(t *testing.T) {
	prj := amk.NewProject(t.Name())
	if err := declareTargets(prj); err != nil {
		t.Fatal(err)
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
	for _, tgt := range ts {
		if len(tgt.Ops()) == 0 {
			t.Errorf("target '%s' has no operations", tgt.Name())
		}
	}
}

func TestNewConsoleTracer_badLevel(t *testing.T) {
	if _, err := newConsoleTracer(nil, "loud"); err == nil {
		t.Error("illegal trace level accepted")
	}
}

func TestRootCmd_badTraceFlag(t *testing.T) {
	defer func() {
		traceArg = ""
		rootCmd.SetArgs(nil)
	}()
	rootCmd.SetArgs([]string{"--trace", "loud"})
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("bad --trace flag accepted")
	}
	if !strings.Contains(err.Error(), "bad --trace flag") {
		t.Errorf("unexpected error: %s", err)
	}
}

func TestConsoleTracer_startTarget(t *testing.T) {
	var buf bytes.Buffer
	tr, err := newConsoleTracer(&buf, "info")
	if err != nil {
		t.Fatal(err)
	}
	prj := amk.NewProject(t.Name())
	tgt, err := prj.Target("clean", "")
	if err != nil {
		t.Fatal(err)
	}
	tr.StartTarget(amk.NewTrace(context.Background(), tr), tgt)
	line := buf.String()
	if !strings.Contains(line, "run target 'clean'") {
		t.Errorf("unexpected trace line: %s", line)
	}
	if strings.Contains(line, "<nil>") {
		t.Errorf("trace line has an unset field: %s", line)
	}
}
