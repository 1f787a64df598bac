// Command indexer builds the similarity index from the corpus directory and
// prints a per-file summary. Useful for checking what a "reindex" command
// will pick up without starting the server.
package main

import (
	"fmt"
	"os"

	"voz-orientador-be/internal/config"
	"voz-orientador-be/internal/corpus"
	"voz-orientador-be/internal/pkg/logger"
	"voz-orientador-be/pkg/extractor"
	"voz-orientador-be/pkg/retrieval"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()
	root := cfg.Corpus.Dir
	if len(os.Args) > 1 {
		root = os.Args[1]
	}

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, true)
	defer sysLogger.Sync()

	loader := corpus.NewLoader(extractor.NewPDFExtractor(), sysLogger)
	pages := loader.Load(root)
	idx := retrieval.Build(pages)

	if idx.Empty() {
		color.Red("No indexable pages found under %s", root)
		os.Exit(1)
	}

	perFile := make(map[string]int)
	order := make([]string, 0)
	for _, p := range pages {
		if _, seen := perFile[p.SourceFile]; !seen {
			order = append(order, p.SourceFile)
		}
		perFile[p.SourceFile]++
	}

	color.Cyan("Corpus: %s", root)
	for _, file := range order {
		fmt.Printf("  %s: %s\n", file, color.GreenString("%d página(s)", perFile[file]))
	}
	color.Cyan("Indexed %d pages across %d files (%d terms)", idx.Len(), len(order), idx.VocabSize())
}
