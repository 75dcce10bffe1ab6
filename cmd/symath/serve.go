package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	rtdebug "runtime/debug"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	symath "github.com/symath/symath"
)

const maxBodyBytes = 1 << 20 // 1 MiB

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the engine over HTTP",
	Long: `Starts an HTTP server exposing the engine.

Endpoints:
  POST /eval   — body is one raw input line; response is JSON {"result": ...}
  GET  /health — engine health and liveness`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on")
}

// newServeMux builds the HTTP surface over a dispatch function and a health
// probe. Taking functions rather than the Engine keeps the handlers
// testable in isolation.
func newServeMux(dispatch func(string) string, healthy func() bool, log *zap.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/eval", func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic in /eval",
					zap.Any("cause", rec),
					zap.ByteString("stack", rtdebug.Stack()))
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()

		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		defer r.Body.Close()

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}

		result := dispatch(string(body))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"result": result})
	})

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "ok",
			"healthy": healthy(),
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	return mux
}

func runServe(cmd *cobra.Command, args []string) error {
	engine := symath.NewEngine(symath.WithLogger(logger))
	mux := newServeMux(engine.Dispatch, engine.Healthy, logger)

	addr := fmt.Sprintf(":%d", servePort)
	logger.Info("symath server listening",
		zap.String("addr", addr),
		zap.Strings("endpoints", []string{"POST /eval", "GET /health"}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
