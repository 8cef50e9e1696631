package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"quotecheck/internal/analyzer"
	"quotecheck/internal/app"
	"quotecheck/internal/httputil"
	"quotecheck/internal/runlog"
	"quotecheck/internal/schema"
)

// analyzeRequest accepts 'quote_text' (preferred) or 'quoteText'
// (frontend-friendly alias).
type analyzeRequest struct {
	QuoteText      string `json:"quote_text" validate:"required"`
	QuoteTextCamel string `json:"quoteText"`
}

func main() {
	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", deps.Config.Port),
		Handler: newRouter(deps),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deps.Log.Info("server listening", "addr", srv.Addr, "analyzer", deps.Config.AnalyzerProvider)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			deps.Log.Warn("shutdown failed", "err", err)
		}
		if err := deps.RunLog.Close(); err != nil {
			deps.Log.Warn("run log close failed", "err", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		deps.Log.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func newRouter(deps app.Deps) *chi.Mux {
	r := httputil.NewRouter(deps.Log)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: false,
	}))
	r.Post("/analyze", analyzeHandler(deps))
	r.Get("/health", httputil.HealthHandler(deps.Log))
	r.Get("/healthz", httputil.HealthHandler(deps.Log))
	return r
}

func analyzeHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}
		if req.QuoteText == "" {
			req.QuoteText = req.QuoteTextCamel
		}
		req.QuoteText = strings.TrimSpace(req.QuoteText)

		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}
		if len(req.QuoteText) > deps.Config.MaxQuoteBytes {
			httputil.Fail(deps.Log, w, fmt.Sprintf("quote text too large (max %d bytes)", deps.Config.MaxQuoteBytes), nil, http.StatusBadRequest)
			return
		}

		ctx := r.Context()
		requestID := uuid.NewString()
		started := time.Now()

		res, aerr := deps.Analyzer.Analyze(ctx, req.QuoteText, requestID)
		if res == nil {
			// Analyzer contract violation; still respond rather than fail.
			res = analyzer.Degraded(requestID, deps.Config.LLMModel)
		}
		res.Metadata.LatencyMS = time.Since(started).Milliseconds()
		if aerr != nil {
			deps.Log.Warn("analyzer degraded", "request_id", requestID, "err", aerr)
		}

		rec := runlog.Record{
			Event:         runlog.EventAnalyze,
			CreatedAt:     time.Now().UTC(),
			RequestID:     requestID,
			PromptVersion: res.Metadata.PromptVersion,
			Model:         res.Metadata.Model,
			LatencyMS:     res.Metadata.LatencyMS,
			SchemaValid:   res.Metadata.SchemaValid,
			NumItems:      len(res.LineItems),
			RiskCounts:    schema.RiskCounts(res),
			Uncertainty:   res.UncertaintyMarkers,
		}
		if aerr != nil {
			rec.Error = aerr.Error()
		}
		// Best-effort observability; a log write failure never fails the request.
		if err := deps.RunLog.Log(ctx, rec); err != nil {
			deps.Log.Warn("run log write failed", "request_id", requestID, "err", err)
		}

		httputil.WriteJSON(w, http.StatusOK, res)
	}
}
