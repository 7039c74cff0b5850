// Package fsops provides the filesystem operations of amk targets:
// recursive deletion by name pattern and recursive deletion of a path. All
// operations treat missing paths as already done, so running them twice
// yields the same filesystem state as running them once.
package fsops

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/amigaos-dev/amk"
)

// Sweep walks Dir and removes every entry the Filter matches. Matched
// directories are removed with their contents and not descended into. A nil
// Filter matches everything. With Prune, directories the sweep left empty
// are removed too; Dir itself is kept.
type Sweep struct {
	Dir    string
	Filter Filter
	Prune  bool
}

var _ amk.Operation = Sweep{}

func (s Sweep) Describe(*amk.Project) string {
	return fmt.Sprintf("sweep %s", s.Dir)
}

func (s Sweep) Do(tr *amk.Trace, tgt *amk.Target, _ *amk.Env) error {
	root, err := tgt.Project().AbsPath(s.Dir)
	if err != nil {
		return err
	}
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}
	var dirs []string
	err = filepath.WalkDir(root, func(path string, e fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		ok := true
		if s.Filter != nil {
			if ok, err = s.Filter.Ok(rel, e); err != nil {
				return err
			}
		}
		if ok {
			tr.RemovePath(path)
			if e.IsDir() {
				if err := os.RemoveAll(path); err != nil {
					return err
				}
				return fs.SkipDir
			}
			return os.Remove(path)
		}
		if e.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil || !s.Prune {
		return err
	}
	slices.Reverse(dirs) // deepest first
	for _, d := range dirs {
		ok, err := isDirEmpty(d)
		if err != nil {
			return err
		}
		if ok {
			tr.RemovePath(d)
			if err := os.Remove(d); err != nil {
				return err
			}
		}
	}
	return nil
}

// RemoveTree removes Path with everything below it. A missing path is not
// an error.
type RemoveTree struct {
	Path string
}

var _ amk.Operation = RemoveTree{}

func (r RemoveTree) Describe(*amk.Project) string {
	return fmt.Sprintf("remove %s", r.Path)
}

func (r RemoveTree) Do(tr *amk.Trace, tgt *amk.Target, _ *amk.Env) error {
	path, err := tgt.Project().AbsPath(r.Path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}
	tr.RemovePath(path)
	return os.RemoveAll(path)
}

func isDirEmpty(path string) (bool, error) {
	dir, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer dir.Close()
	if _, err = dir.ReadDir(1); errors.Is(err, io.EOF) {
		return true, nil
	}
	return false, err
}
