// Package corpus materializes DocumentPage records from a directory of PDF
// files, ready to be fed into an index build.
package corpus

import (
	"io/fs"
	"path/filepath"
	"strings"

	"voz-orientador-be/internal/model"
	"voz-orientador-be/internal/pkg/logger"
)

// Extractor turns a document file into per-page plain text. Implemented by
// pkg/extractor for PDFs; tests substitute fakes.
type Extractor interface {
	ExtractPages(path string) ([]string, error)
}

type Loader struct {
	extractor Extractor
	logger    logger.ILogger
}

func NewLoader(extractor Extractor, log logger.ILogger) *Loader {
	return &Loader{
		extractor: extractor,
		logger:    log,
	}
}

// Load walks root recursively in lexical order, extracts per-page text from
// every PDF and returns the pages with sequential ids starting at 0. The
// traversal order is deterministic, so an unchanged corpus always produces
// the same ids across rebuilds. A file that fails extraction is logged and
// skipped; Load never fails as a whole, and a corpus with zero extractable
// pages simply yields an empty slice.
func (l *Loader) Load(root string) []model.DocumentPage {
	var pages []model.DocumentPage
	id := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			l.logger.Warn("Corpus", "Skipping unreadable entry", map[string]interface{}{"path": path, "error": err.Error()})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), ".pdf") {
			return nil
		}

		texts, err := l.extractor.ExtractPages(path)
		if err != nil {
			l.logger.Warn("Corpus", "Extraction failed, file skipped", map[string]interface{}{"path": path, "error": err.Error()})
			return nil
		}
		for pnum, text := range texts {
			text = strings.TrimSpace(text)
			if text == "" {
				continue
			}
			pages = append(pages, model.DocumentPage{
				ID:         id,
				SourceFile: d.Name(),
				Page:       pnum + 1,
				Path:       path,
				Text:       text,
			})
			id++
		}
		return nil
	})
	if err != nil {
		l.logger.Error("Corpus", "Corpus walk aborted", map[string]interface{}{"root": root, "error": err.Error()})
	}

	return pages
}
