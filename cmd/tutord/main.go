package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielpatrickdp/socratic-tutor/internal/auth"
	"github.com/danielpatrickdp/socratic-tutor/internal/config"
	"github.com/danielpatrickdp/socratic-tutor/internal/gateway"
	"github.com/danielpatrickdp/socratic-tutor/internal/httpapi"
	"github.com/danielpatrickdp/socratic-tutor/internal/llm"
	"github.com/danielpatrickdp/socratic-tutor/internal/orchestrator"
	"github.com/danielpatrickdp/socratic-tutor/internal/scheduler"
	"github.com/danielpatrickdp/socratic-tutor/internal/store"
)

// #region main
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("[MAIN] config: %v", err)
	}

	st, err := store.NewStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("[MAIN] failed to open store: %v", err)
	}
	defer st.Close()

	gw := buildGateway(cfg)
	orch := orchestrator.New(gw, st)
	authSvc := auth.NewService(st)

	if cfg.RollupEnabled {
		sched := scheduler.New(st)
		if err := sched.Start(); err != nil {
			log.Fatalf("[MAIN] scheduler: %v", err)
		}
		defer sched.Stop()
	}

	srv := httpapi.NewServer(cfg.Addr, cfg.StaticDir, orch, authSvc, st)

	go func() {
		log.Printf("[MAIN] listening on %s (db=%s provider=%s)", cfg.Addr, cfg.DBPath, cfg.LLMProvider)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[MAIN] server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Printf("[MAIN] shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[MAIN] shutdown: %v", err)
	}
}

// buildGateway returns nil when no credential is configured; the pipeline
// reports that per request instead of refusing to boot.
func buildGateway(cfg *config.Config) *gateway.Gateway {
	apiKey := cfg.APIKey()
	if apiKey == "" {
		log.Printf("[MAIN] no API key for provider %q, generation disabled", cfg.LLMProvider)
		return nil
	}
	client, err := llm.NewClient(context.Background(), cfg.LLMProvider, apiKey, cfg.OpenAIBaseURL)
	if err != nil {
		log.Printf("[MAIN] llm client init failed: %v, generation disabled", err)
		return nil
	}
	return gateway.New(client, cfg.DefaultModel, cfg.FallbackModel, cfg.CallTimeout)
}

// #endregion main
