package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/docsight/internal/analyze"
	"github.com/dgallion1/docsight/internal/api"
	"github.com/dgallion1/docsight/internal/config"
	"github.com/dgallion1/docsight/internal/langmodel"
	"github.com/dgallion1/docsight/internal/outline"
	"github.com/dgallion1/docsight/internal/persona"
	"github.com/dgallion1/docsight/internal/pipeline"
	"github.com/dgallion1/docsight/internal/rank"
	"github.com/dgallion1/docsight/internal/section"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Language model provider: optional, rule-based fallbacks run without it.
	var provider langmodel.Provider = langmodel.None()
	var claude *langmodel.ClaudeProvider
	if cfg.AnthropicAPIKey != "" {
		claude = langmodel.NewClaudeProvider(cfg.AnthropicAPIKey, cfg.AnthropicModel)
		provider = claude
		log.Info("language model provider enabled", "model", cfg.AnthropicModel)
	} else {
		log.Info("no language model provider, using rule-based extraction only")
	}

	// Wire the analysis components.
	classifier := outline.NewClassifier(provider, log)
	classifier.RuleThreshold = cfg.RuleThreshold
	classifier.ModelThreshold = cfg.ModelThreshold
	outliner := outline.NewExtractor(classifier, log)

	personaBuilder := persona.NewBuilder(provider, log)
	weights := rank.Weights{
		Semantic:   cfg.SemanticWeight,
		Keyword:    cfg.KeywordWeight,
		Structural: cfg.StructuralWeight,
		Quality:    cfg.QualityWeight,
	}
	diversity := rank.DiversityConfig{
		MaxPerDocument: cfg.DiversityMaxPerDoc,
		PenaltyStep:    cfg.DiversityPenaltyPct,
		MaxPenalty:     cfg.DiversityMaxPenalty,
	}
	ranker := rank.NewRanker(rank.NewScorer(provider, weights, log), diversity, log)
	sectionCfg := section.Config{
		MinPageChars:       cfg.MinPageChars,
		MinSubsectionChars: cfg.MinSubsectionChars,
		MaxSubsections:     cfg.MaxSubsections,
	}
	analyzer := analyze.NewAnalyzer(personaBuilder, outliner, ranker, sectionCfg, log)

	// Initialize pipeline.
	orch := pipeline.NewOrchestrator(cfg, analyzer, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(orch, outliner, claude, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		if claude != nil {
			claude.Close()
		}
	}()

	log.Info("starting docsight", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
