package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"voz-orientador-be/internal/corpus"
	"voz-orientador-be/internal/pkg/logger"
	"voz-orientador-be/pkg/retrieval"
)

// ErrRebuildInProgress is returned when a rebuild is requested while another
// one is still running. The second request is rejected, not queued.
var ErrRebuildInProgress = errors.New("index rebuild already in progress")

// IIndexService owns the live similarity-index generation shared by all
// sessions. Current never blocks; Rebuild replaces the generation with a
// single atomic swap so in-flight searches against the old generation finish
// unaffected.
type IIndexService interface {
	Current() *retrieval.Index
	Rebuild(ctx context.Context) error
}

type indexService struct {
	loader    *corpus.Loader
	corpusDir string
	logger    logger.ILogger

	current   atomic.Pointer[retrieval.Index]
	rebuildMu sync.Mutex
}

// NewIndexService starts with the empty-index sentinel; callers run the
// first Rebuild during bootstrap.
func NewIndexService(loader *corpus.Loader, corpusDir string, log logger.ILogger) IIndexService {
	s := &indexService{
		loader:    loader,
		corpusDir: corpusDir,
		logger:    log,
	}
	s.current.Store(retrieval.Build(nil))
	return s
}

func (s *indexService) Current() *retrieval.Index {
	return s.current.Load()
}

func (s *indexService) Rebuild(ctx context.Context) error {
	if !s.rebuildMu.TryLock() {
		return ErrRebuildInProgress
	}
	defer s.rebuildMu.Unlock()

	// The expensive part happens off the shared pointer; readers keep
	// querying the previous generation until the swap below.
	pages := s.loader.Load(s.corpusDir)
	if err := ctx.Err(); err != nil {
		return err
	}
	idx := retrieval.Build(pages)

	s.current.Store(idx)
	if idx.Empty() {
		s.logger.Warn("Index", "No pages indexed", map[string]interface{}{"corpus_dir": s.corpusDir})
	} else {
		s.logger.Info("Index", "Index rebuilt", map[string]interface{}{"pages": idx.Len(), "corpus_dir": s.corpusDir})
	}
	return nil
}
