package fsops

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
)

func dirEntries(t *testing.T) map[string]fs.DirEntry {
	t.Helper()
	root := t.TempDir()
	testerr.Shall(os.WriteFile(filepath.Join(root, "a.pyc"), nil, 0666)).BeNil(t)
	testerr.Shall(os.WriteFile(filepath.Join(root, "keep.py"), nil, 0666)).BeNil(t)
	testerr.Shall(os.Mkdir(filepath.Join(root, "__pycache__"), 0777)).BeNil(t)
	es := testerr.Shall1(os.ReadDir(root)).BeNil(t)
	res := make(map[string]fs.DirEntry)
	for _, e := range es {
		res[e.Name()] = e
	}
	return res
}

func ok(t *testing.T, f Filter, e fs.DirEntry) bool {
	t.Helper()
	return testerr.Shall1(f.Ok(e.Name(), e)).BeNil(t)
}

func TestFilters(t *testing.T) {
	es := dirEntries(t)
	if !ok(t, NameMatch("*.pyc"), es["a.pyc"]) {
		t.Error("NameMatch misses a.pyc")
	}
	if ok(t, NameMatch("*.pyc"), es["keep.py"]) {
		t.Error("NameMatch matches keep.py")
	}
	if !ok(t, IsDir(true), es["__pycache__"]) {
		t.Error("IsDir misses __pycache__")
	}
	if ok(t, Not(NameMatch("*.pyc")), es["a.pyc"]) {
		t.Error("Not inverts wrong")
	}
	if !ok(t, All{IsDir(true), NameMatch("__pycache__")}, es["__pycache__"]) {
		t.Error("All misses __pycache__")
	}
	if ok(t, All{IsDir(true), NameMatch("*.pyc")}, es["a.pyc"]) {
		t.Error("All matches file as dir")
	}
	if !ok(t, Any{NameMatch("*.pyc"), NameMatch("*~")}, es["a.pyc"]) {
		t.Error("Any misses a.pyc")
	}
	if ok(t, Any{}, es["a.pyc"]) {
		t.Error("empty Any matches")
	}
}
