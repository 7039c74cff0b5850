// Package amk is a small make-replacement for the AmigaOS development
// toolkit. Instead of a Makefile, the build glue of a project is a Go
// program that declares named targets ([Target]) on a [Project] and hands
// them to a [Runner]. Each target is an ordered list of operations
// ([Operation]) with shell-level side effects: deleting files by name
// pattern, deleting a directory tree, or delegating to an external command.
//
// There is deliberately no dependency graph, no up-to-date checking and no
// parallelism. A target runs its operations strictly in declaration order
// and stops at the first failure. This keeps the behavior of the runner
// exactly as predictable as the Makefile it replaces.
//
// The conventional binary built from this module is cmd/amk:
//
//	amk            # same as 'amk all': print the target listing
//	amk clean      # sweep editor backups, bytecode and packaging output
//	amk install    # run 'python3 setup.py install'
package amk
