package server

import (
	"log"

	"voz-orientador-be/internal/bootstrap"
	"voz-orientador-be/internal/config"
	"voz-orientador-be/internal/constant"
	"voz-orientador-be/internal/dto"
	ws "voz-orientador-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CorsAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	registerRoutes(app, cfg, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	addr := s.cfg.App.BindHost + ":" + s.cfg.App.BindPort
	log.Printf("✅ Voz Orientador is running on http://%s", addr)
	return s.app.Listen(addr)
}

func registerRoutes(app *fiber.App, cfg *config.Config, c *bootstrap.Container) {
	app.Get("/", func(ctx *fiber.Ctx) error {
		ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return ctx.SendString("<h3>Voz Orientador – WebSocket en /ws</h3>")
	})

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"status":   "ok",
			"sessions": c.WebSocketHub.Count(),
			"pages":    c.IndexService.Current().Len(),
		})
	})

	app.Use("/ws", func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		// Shared-secret handshake: a bad token gets one explanatory
		// frame and the connection closes.
		if conn.Query("token") != cfg.App.WSToken {
			conn.WriteJSON(dto.ServerReply{ReplyText: constant.InvalidTokenText})
			conn.Close()
			return
		}
		ws.ServeWs(c.WebSocketHub, conn, c.SessionService, c.WSLogger)
	}))
}
