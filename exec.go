package amk

import (
	"fmt"
	"os/exec"
	"path/filepath"
)

// CmdOp delegates to an external command. The command runs in the project
// directory, or in CWD resolved against it, with the [Env]'s tags as its
// environment and the Env's streams as its stdio. A non-zero exit surfaces
// as the operation's error.
type CmdOp struct {
	CWD  string
	Exe  string
	Args []string
	Desc string
}

var _ Operation = (*CmdOp)(nil)

func (op *CmdOp) Describe(*Project) string {
	if op.Desc == "" {
		op.Desc = fmt.Sprintf("%s$%s%v", filepath.Base(op.Exe), op.Exe, op.Args)
	}
	return op.Desc
}

func (op *CmdOp) Do(tr *Trace, tgt *Target, env *Env) error {
	xenv, err := env.ExecEnv()
	if err != nil {
		tr.Warn(err.Error())
	}
	dir, err := tgt.Project().AbsPath(op.CWD)
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(tr.Ctx(), op.Exe, op.Args...)
	cmd.Dir = dir
	cmd.Env = xenv
	cmd.Stdin = env.In
	cmd.Stdout = env.Out
	cmd.Stderr = env.Err
	tr.Debug("exec `cmd` in `dir`", `cmd`, cmd.String(), `dir`, cmd.Dir)
	return cmd.Run()
}
