package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/misionantigua/backend/internal/config"
	"github.com/misionantigua/backend/internal/handler"
	"github.com/misionantigua/backend/internal/logging"
	"github.com/misionantigua/backend/internal/mailer"
	"github.com/misionantigua/backend/internal/repository"
	"github.com/misionantigua/backend/internal/service"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load config", "error", err)
	}

	pool, err := repository.NewPool(context.Background(), cfg.DSN())
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	contactRepo := repository.NewPgContactRepository(pool)
	sender := mailer.NewSMTPSender(mailer.Config{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPass,
		Secure:      cfg.SMTPImplicitTLS(),
		FromAddress: cfg.FromAddress(),
		FromName:    cfg.FromName,
	})
	contactService := service.NewContactService(contactRepo, sender, cfg.AdminEmail, cfg.FromName, cfg.FromAddress())

	h := handler.New(pool, cfg.FrontendURL)
	contactHandler := handler.NewContactHandler(contactService, cfg.Production())
	emailHandler := handler.NewEmailHandler(contactService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/contacts", contactHandler.List)
	mux.HandleFunc("POST /api/contacts", contactHandler.Create)
	mux.HandleFunc("POST /api/test-email", emailHandler.SendTest)

	chain := handler.Recover(handler.RequestLogger(handler.SecurityHeaders(h.CORS(mux))))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      chain,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "env", cfg.AppEnv)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
