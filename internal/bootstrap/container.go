package bootstrap

import (
	"context"
	"log"

	"voz-orientador-be/internal/config"
	"voz-orientador-be/internal/corpus"
	"voz-orientador-be/internal/pkg/logger"
	"voz-orientador-be/internal/repository/memory"
	"voz-orientador-be/internal/service"
	"voz-orientador-be/internal/websocket"
	"voz-orientador-be/pkg/extractor"
	"voz-orientador-be/pkg/speech"
)

type Container struct {
	// Services
	IndexService   service.IIndexService
	SessionService service.ISessionService

	// WebSockets
	WebSocketHub *websocket.Hub
	WSLogger     logger.ILogger

	// System logger (exposed for Sync on shutdown)
	Logger logger.ILogger
}

// NewContainer wires the dependency graph: config -> logger -> corpus loader
// -> index service -> speech providers -> session service -> websocket hub.
// The first index build runs here so the server starts with a live
// generation; a corpus with no extractable pages yields the empty sentinel
// and the server still comes up.
func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Corpus & Index
	pdfExtractor := extractor.NewPDFExtractor()
	loader := corpus.NewLoader(pdfExtractor, sysLogger)
	indexService := service.NewIndexService(loader, cfg.Corpus.Dir, sysLogger)
	if err := indexService.Rebuild(context.Background()); err != nil {
		log.Printf("[WARN] Initial index build failed: %v", err)
	}

	// 3. Speech Collaborators
	transcriber, err := speech.NewVoskProvider(cfg.Speech.VoskModelDir)
	if err != nil {
		// No transcription model means no dialogue at all.
		log.Fatalf("[FATAL] %v", err)
	}
	synthesizer := speech.NewPiperProvider(cfg.Speech.TTSBaseURL)

	// 4. Session Domain
	sessionRepo := memory.NewSessionRepository()
	sessionService := service.NewSessionService(
		indexService,
		sessionRepo,
		transcriber,
		synthesizer,
		sysLogger,
	)

	// 5. WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/websocket.log")
	wsHub := websocket.NewHub(wsLogger)
	go wsHub.Run()

	return &Container{
		IndexService:   indexService,
		SessionService: sessionService,
		WebSocketHub:   wsHub,
		WSLogger:       wsLogger,
		Logger:         sysLogger,
	}
}
