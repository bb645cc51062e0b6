package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/bantaydagat/bantay-dagat-api/api/handlers"
	"github.com/bantaydagat/bantay-dagat-api/api/scheduler"
	"github.com/bantaydagat/bantay-dagat-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	//initialize database and router
	if err := a.Initialize(); err != nil {
		zap.S().Fatalw("failed to initialize", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	audit := scheduler.NewScheduler(a.Reports(), a.Config.AuditSchedule)
	if err := audit.Start(); err != nil {
		zap.S().Fatalw("failed to start scheduler", "error", err)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%v", a.Config.Port),
		Handler: a.Router,
	}
	go func() {
		zap.S().Infow("bantay-dagat-api is up and running",
			"port", a.Config.Port,
			"url", a.Config.BaseURL,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Fatalw("server stopped", "error", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	audit.Stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.S().Errorw("graceful shutdown failed", "error", err)
	}
	if err := a.Client.Disconnect(shutdownCtx); err != nil {
		zap.S().Errorw("failed to disconnect from database", "error", err)
	}
	zap.S().Info("bantay-dagat-api stopped")
}
