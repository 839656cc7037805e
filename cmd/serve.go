package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geotech-cli/internal/correlate"
	"github.com/sells-group/geotech-cli/internal/pipeline"
	"github.com/sells-group/geotech-cli/internal/project"
	"github.com/sells-group/geotech-cli/internal/soil"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the calculation HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		tables, err := loadTables()
		if err != nil {
			return err
		}

		mux := newServeMux(tables, cfg.Calc.Settings, cfg.Calc.Workers)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mux,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// newServeMux builds the HTTP routes. Split out so tests can exercise the
// handlers without binding a port.
func newServeMux(tables *soil.Tables, base correlate.Settings, workers int) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("POST /calculate", func(w http.ResponseWriter, r *http.Request) {
		var doc project.Document
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if doc.SchemaVersion != project.SchemaVersion {
			http.Error(w, fmt.Sprintf(`{"error":"unsupported schema version %d"}`, doc.SchemaVersion), http.StatusBadRequest)
			return
		}
		if len(doc.Boreholes) == 0 {
			http.Error(w, `{"error":"no boreholes in project"}`, http.StatusBadRequest)
			return
		}

		orch, err := pipeline.New(tables, mergeSettings(base, doc.Settings))
		if err != nil {
			http.Error(w, fmt.Sprintf(`{"error":%q}`, err.Error()), http.StatusBadRequest)
			return
		}

		result := orch.RunAll(r.Context(), doc.BoreholePtrs(), doc.OverrideSet(), workers)

		zap.L().Info("calculate request complete",
			zap.String("project", doc.Name),
			zap.Int("boreholes", len(result.Boreholes)),
			zap.Int("failed", len(result.Failures)),
		)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(result)
	})

	return mux
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
