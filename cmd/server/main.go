package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmarkovic7/voiphub/internal/config"
	memoryrepo "github.com/dmarkovic7/voiphub/internal/repository/memory"
	"github.com/dmarkovic7/voiphub/internal/seed"
	"github.com/dmarkovic7/voiphub/internal/service"
	"github.com/dmarkovic7/voiphub/internal/transport/http/handlers"
	"github.com/dmarkovic7/voiphub/internal/transport/http/middleware"
	"github.com/dmarkovic7/voiphub/internal/transport/ws"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Repositories. Everything is in-memory; a restart resets the demo.
	convRepo := memoryrepo.NewConversationRepo()
	listingRepo := memoryrepo.NewListingRepo()
	modRepo := memoryrepo.NewModerationRepo()

	if err := seed.Demo(ctx, convRepo, listingRepo); err != nil {
		log.Fatal(err)
	}
	log.Println("Seeded demo data")

	// Services
	authService := service.NewAuthService(convRepo, cfg.JWTSecret)
	chatService := service.NewChatService(convRepo, modRepo, cfg.AutoReplyDelay)
	defer chatService.Close()
	moderationService := service.NewModerationService(modRepo)
	catalogService := service.NewCatalogService(listingRepo, chatService)

	// WebSocket hub
	hub := ws.NewHub(chatService)
	go hub.Run()
	chatService.SetNotifier(ws.NewHubNotifier(hub))

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	chatHandler := handlers.NewChatHandler(chatService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	moderationHandler := handlers.NewModerationHandler(moderationService)

	// Auth middleware
	auth := middleware.Auth(cfg.JWTSecret)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/v1/listings", catalogHandler.List)
	mux.HandleFunc("GET /ws", ws.ServeWS(hub, cfg.JWTSecret))

	// Protected - Session
	mux.Handle("GET /api/v1/auth/me", auth(http.HandlerFunc(authHandler.Me)))
	mux.Handle("POST /api/v1/auth/logout", auth(http.HandlerFunc(authHandler.Logout)))

	// Protected - Conversations
	mux.Handle("GET /api/v1/conversations", auth(http.HandlerFunc(chatHandler.List)))
	mux.Handle("GET /api/v1/conversations/{id}", auth(http.HandlerFunc(chatHandler.Get)))
	mux.Handle("POST /api/v1/conversations/{id}/messages", auth(http.HandlerFunc(chatHandler.SendMessage)))
	mux.Handle("POST /api/v1/conversations/{id}/read", auth(http.HandlerFunc(chatHandler.MarkRead)))

	// Protected - Catalog
	mux.Handle("POST /api/v1/listings", auth(http.HandlerFunc(catalogHandler.Create)))
	mux.Handle("PUT /api/v1/listings/{id}", auth(http.HandlerFunc(catalogHandler.Update)))
	mux.Handle("DELETE /api/v1/listings/{id}", auth(http.HandlerFunc(catalogHandler.Delete)))
	mux.Handle("POST /api/v1/listings/{id}/purchase", auth(http.HandlerFunc(catalogHandler.Purchase)))
	mux.Handle("POST /api/v1/listings/{id}/enquiry", auth(http.HandlerFunc(catalogHandler.Enquiry)))

	// Protected - Moderation
	mux.Handle("GET /api/v1/moderation", auth(http.HandlerFunc(moderationHandler.ListBlocked)))
	mux.Handle("GET /api/v1/moderation/me", auth(http.HandlerFunc(moderationHandler.Status)))
	mux.Handle("POST /api/v1/moderation/{id}/toggle", auth(http.HandlerFunc(moderationHandler.Toggle)))

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{Addr: addr, Handler: middleware.CORS(mux)}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
