package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"voz-orientador-be/internal/model"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

// fakeExtractor serves canned page texts keyed by file name.
type fakeExtractor struct {
	pages map[string][]string
	fail  map[string]bool
}

func (f *fakeExtractor) ExtractPages(path string) ([]string, error) {
	name := filepath.Base(path)
	if f.fail[name] {
		return nil, errors.New("corrupt file")
	}
	return f.pages[name], nil
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadAssignsSequentialIDsInTraversalOrder(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "b.pdf"))
	touch(t, filepath.Join(root, "a.pdf"))
	touch(t, filepath.Join(root, "sub", "c.pdf"))
	touch(t, filepath.Join(root, "notas.txt"))

	ext := &fakeExtractor{pages: map[string][]string{
		"a.pdf": {"página uno", "  ", "página tres"}, // blank page skipped
		"b.pdf": {"contenido b"},
		"c.pdf": {"contenido c"},
	}}
	loader := NewLoader(ext, nopLogger{})

	pages := loader.Load(root)

	want := []struct {
		file string
		page int
	}{
		{"a.pdf", 1},
		{"a.pdf", 3},
		{"b.pdf", 1},
		{"c.pdf", 1},
	}
	if len(pages) != len(want) {
		t.Fatalf("loaded %d pages, want %d", len(pages), len(want))
	}
	for i, w := range want {
		if pages[i].ID != i {
			t.Errorf("page %d has id %d, want %d", i, pages[i].ID, i)
		}
		if pages[i].SourceFile != w.file || pages[i].Page != w.page {
			t.Errorf("page %d = %s p%d, want %s p%d", i, pages[i].SourceFile, pages[i].Page, w.file, w.page)
		}
	}
}

func TestLoadSkipsFailingFiles(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "bueno.pdf"))
	touch(t, filepath.Join(root, "malo.pdf"))

	ext := &fakeExtractor{
		pages: map[string][]string{"bueno.pdf": {"texto útil"}},
		fail:  map[string]bool{"malo.pdf": true},
	}
	loader := NewLoader(ext, nopLogger{})

	pages := loader.Load(root)
	if len(pages) != 1 {
		t.Fatalf("loaded %d pages, want 1", len(pages))
	}
	if pages[0].SourceFile != "bueno.pdf" {
		t.Errorf("loaded %s, want bueno.pdf", pages[0].SourceFile)
	}
}

func TestLoadIsDeterministicAcrossRebuilds(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"z.pdf", "m.pdf", "a.pdf"} {
		touch(t, filepath.Join(root, name))
	}
	ext := &fakeExtractor{pages: map[string][]string{
		"a.pdf": {"alfa"},
		"m.pdf": {"medio"},
		"z.pdf": {"zeta uno", "zeta dos"},
	}}
	loader := NewLoader(ext, nopLogger{})

	first := loader.Load(root)
	second := loader.Load(root)

	if len(first) != len(second) {
		t.Fatalf("page counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("page %d differs between loads: %+v vs %+v", i, first[i], second[i])
		}
	}
	// Lexicographic traversal: a, m, z.
	order := []model.DocumentPage{first[0], first[1], first[2]}
	if order[0].SourceFile != "a.pdf" || order[1].SourceFile != "m.pdf" || order[2].SourceFile != "z.pdf" {
		t.Errorf("traversal order = %s, %s, %s", order[0].SourceFile, order[1].SourceFile, order[2].SourceFile)
	}
}

func TestLoadMissingRootYieldsNoPages(t *testing.T) {
	loader := NewLoader(&fakeExtractor{}, nopLogger{})
	if pages := loader.Load(filepath.Join(t.TempDir(), "no-existe")); len(pages) != 0 {
		t.Errorf("loaded %d pages from a missing root, want 0", len(pages))
	}
}
