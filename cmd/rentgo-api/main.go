// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rentgo/internal/advisor"
	"rentgo/internal/ai"
	"rentgo/internal/config"
	httptransport "rentgo/internal/http"
	"rentgo/internal/infra"
	"rentgo/internal/logger"
	"rentgo/internal/modules/aiusage"
	"rentgo/internal/modules/booking"
	"rentgo/internal/modules/fleet"
	"rentgo/internal/modules/pricing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.AI.GeminiKey == "" {
		log.Fatal("GEMINI_API_KEY is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appLog := logger.New(cfg.Logger.Namespace)

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer provider.Close()

	fleetStore := fleet.NewPGStore(dbPool)
	fleetSvc := fleet.NewService(fleetStore, appLog)

	bookingStore := booking.NewPGStore(dbPool)
	bookingSvc := booking.NewService(fleetStore, bookingStore, pricing.NewService(nil), appLog)

	aiClient := ai.NewClient(provider, time.Duration(cfg.Advisor.TimeoutSeconds)*time.Second, appLog)
	advisorSvc := advisor.NewService(aiClient, redisClient,
		time.Duration(cfg.Advisor.RouteCacheTTLSecond)*time.Second, appLog)

	quotaSvc := aiusage.NewService(aiusage.NewPGStore(dbPool))

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Fleet:   fleetSvc,
		Booking: bookingSvc,
		Advisor: advisorSvc,
		Quota:   quotaSvc,
		Log:     appLog,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	appLog.Info("listening", logger.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
