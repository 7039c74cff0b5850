// Command amk runs the build targets of the AmigaOS development toolkit.
package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/amigaos-dev/amk"
	"github.com/amigaos-dev/amk/fsops"
)

var (
	chdir    string
	python   string
	dryRun   bool
	traceArg string
)

var rootCmd = &cobra.Command{
	Use:   "amk [flags] [TARGET...]",
	Short: "Build glue for the AmigaOS development toolkit",
	Long: `amk replaces the toolkit's Makefile. Without arguments it runs 'all',
which prints the target listing. Targets run their operations in order and
stop at the first failure.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&chdir, "chdir", "C", "",
		"Project root directory, defaults to the working directory")
	rootCmd.Flags().StringVar(&python, "python", "python3",
		"Python interpreter used by the install target")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false,
		"Trace operations without executing them")
	rootCmd.Flags().StringVar(&traceArg, "trace", "",
		"Trace verbosity: off, warn, info, debug")
}

func run(cmd *cobra.Command, args []string) error {
	tracer, err := newConsoleTracer(os.Stderr, traceArg)
	if err != nil {
		return eris.Wrap(err, "bad --trace flag")
	}

	prj := amk.NewProject(chdir)
	if err := declareTargets(prj); err != nil {
		return eris.Wrap(err, "declaring targets")
	}

	env := amk.DefaultEnv(nil)
	env.Out = amk.NewPrefixWriter(os.Stdout, "amk| ")
	env.Err = amk.NewPrefixWriter(os.Stderr, "amk! ")

	rn := amk.NewRunner(amk.NewTrace(cmd.Context(), tracer), env)
	rn.DryRun = dryRun
	if len(args) == 0 {
		args = []string{"all"}
	}
	return rn.Targets(prj, args...)
}

func declareTargets(prj *amk.Project) error {
	_, err := prj.Target("all", "print this target listing",
		amk.OpFunc("list targets", func(_ *amk.Trace, tgt *amk.Target, env *amk.Env) error {
			tgt.Project().WriteTargets(env.Out)
			return nil
		}),
	)
	if err != nil {
		return err
	}

	_, err = prj.Target("clean", "delete bytecode, editor backups and packaging output",
		fsops.Sweep{
			Dir: ".",
			Filter: fsops.Any{
				fsops.NameMatch("*.pyc"),
				fsops.NameMatch("*~"),
				fsops.All{fsops.IsDir(true), fsops.NameMatch("__pycache__")},
			},
		},
		fsops.RemoveTree{Path: "build"},
		fsops.RemoveTree{Path: "dist"},
		fsops.RemoveTree{Path: "amidev.egg-info"},
	)
	if err != nil {
		return err
	}

	_, err = prj.Target("install", "run '"+python+" setup.py install'",
		&amk.CmdOp{
			Exe:  python,
			Args: []string{"setup.py", "install"},
			Desc: python + " setup.py install",
		},
	)
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "amk:", err)
		os.Exit(1)
	}
}
