package service

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"voz-orientador-be/internal/corpus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedExtractor blocks inside ExtractPages until released, letting tests
// hold a rebuild in flight. entered signals the first call.
type gatedExtractor struct {
	gate    chan struct{}
	entered chan struct{}
	once    sync.Once
	texts   []string
}

func (g *gatedExtractor) ExtractPages(string) ([]string, error) {
	if g.entered != nil {
		g.once.Do(func() { close(g.entered) })
	}
	if g.gate != nil {
		<-g.gate
	}
	return g.texts, nil
}

func corpusDir(t *testing.T, names ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("%PDF-1.4"), 0o644))
	}
	return root
}

func TestIndexServiceStartsWithEmptySentinel(t *testing.T) {
	loader := corpus.NewLoader(&gatedExtractor{}, nopLogger{})
	svc := NewIndexService(loader, t.TempDir(), nopLogger{})

	idx := svc.Current()
	require.NotNil(t, idx)
	assert.True(t, idx.Empty())
	assert.Nil(t, idx.Search("cualquier cosa", 5))
}

func TestRebuildSwapsGeneration(t *testing.T) {
	root := corpusDir(t, "doc.pdf")
	loader := corpus.NewLoader(&gatedExtractor{texts: []string{"ciberseguridad hacking ético riesgos"}}, nopLogger{})
	svc := NewIndexService(loader, root, nopLogger{})

	old := svc.Current()
	require.NoError(t, svc.Rebuild(context.Background()))

	fresh := svc.Current()
	assert.NotSame(t, old, fresh)
	assert.Equal(t, 1, fresh.Len())
	assert.Len(t, fresh.Search("ciberseguridad", 5), 1)

	// The previous generation is untouched and still answers queries.
	assert.True(t, old.Empty())
	assert.Nil(t, old.Search("ciberseguridad", 5))
}

func TestConcurrentRebuildIsRejected(t *testing.T) {
	root := corpusDir(t, "doc.pdf")
	gate := make(chan struct{})
	entered := make(chan struct{})
	loader := corpus.NewLoader(&gatedExtractor{gate: gate, entered: entered, texts: []string{"texto"}}, nopLogger{})
	svc := NewIndexService(loader, root, nopLogger{})

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- svc.Rebuild(context.Background())
	}()

	// Wait until the first rebuild is inside the extractor, then try a
	// second one.
	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("first rebuild never reached the extractor")
	}
	assert.ErrorIs(t, svc.Rebuild(context.Background()), ErrRebuildInProgress)

	// Queries during the in-flight rebuild still see the old generation.
	assert.True(t, svc.Current().Empty())

	close(gate)
	require.NoError(t, <-firstDone)
	assert.Equal(t, 1, svc.Current().Len())
}

func TestRebuildIdsAreReassignedFromZero(t *testing.T) {
	root := corpusDir(t, "a.pdf", "b.pdf")
	loader := corpus.NewLoader(&gatedExtractor{texts: []string{"una página"}}, nopLogger{})
	svc := NewIndexService(loader, root, nopLogger{})

	require.NoError(t, svc.Rebuild(context.Background()))
	first := svc.Current()
	require.NoError(t, svc.Rebuild(context.Background()))
	second := svc.Current()

	require.Equal(t, first.Len(), second.Len())
	h1 := first.Search("página", 10)
	h2 := second.Search("página", 10)
	require.Equal(t, len(h1), len(h2))
	for i := range h1 {
		assert.Equal(t, h1[i].Page.ID, h2[i].Page.ID)
		assert.Equal(t, h1[i].Page.SourceFile, h2[i].Page.SourceFile)
		assert.Equal(t, h1[i].Page.Page, h2[i].Page.Page)
	}
}
