// Package api is the HTTP collector for Red Alert stats dumps. Game servers
// POST raw dumps; the collector decodes, archives and serves them.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/swaggo/swag"
	"gopkg.in/yaml.v3"
)

const shutdownTimeout = 10 * time.Second

// NewRouter wires every route of the collector
func NewRouter(server *Server) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger(server.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   server.config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", server.metrics.Handler())

	// Swagger documentation (unprotected)
	r.Get("/swagger/*", server.handleSwagger)

	m := server.metrics
	r.Route("/api/v1", func(r chi.Router) {
		if server.config.APIKey != "" {
			r.Use(m.InstrumentAuthMiddleware(apiKeyMiddleware(server.config.APIKey)))
		}

		r.Get("/health", m.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))

		r.Post("/decode", m.InstrumentHandler("POST", "/api/v1/decode", server.handleDecode))

		r.Post("/dumps", m.InstrumentHandler("POST", "/api/v1/dumps", server.handleStoreDump))
		r.Get("/dumps", m.InstrumentHandler("GET", "/api/v1/dumps", server.handleListDumps))
		r.Get("/dumps/{id}", m.InstrumentHandler("GET", "/api/v1/dumps/{id}", server.handleGetDump))
		r.Get("/dumps/{id}/text", m.InstrumentHandler("GET", "/api/v1/dumps/{id}/text", server.handleGetDumpText))
		r.Get("/dumps/{id}/raw", m.InstrumentHandler("GET", "/api/v1/dumps/{id}/raw", server.handleGetDumpRaw))
		r.Delete("/dumps/{id}", m.InstrumentHandler("DELETE", "/api/v1/dumps/{id}", server.handleDeleteDump))
	})

	return r
}

const swaggerUI = `<!DOCTYPE html>
<html>
<head>
	 <title>statsdump collector API</title>
	 <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@3.25.0/swagger-ui.css" />
</head>
<body>
	 <div id="swagger-ui"></div>
	 <script src="https://unpkg.com/swagger-ui-dist@3.25.0/swagger-ui-bundle.js"></script>
	 <script>
	   window.onload = function() {
	     SwaggerUIBundle({
	       url: '/swagger/swagger.json',
	       dom_id: '#swagger-ui',
	       presets: [
	         SwaggerUIBundle.presets.apis,
	         SwaggerUIBundle.presets.standalone
	       ]
	     });
	   };
	 </script>
</body>
</html>`

func (s *Server) handleSwagger(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/swagger/", "/swagger/index.html":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(swaggerUI))
		return
	case "/swagger/swagger.json", "/swagger/swagger.yaml":
	default:
		http.NotFound(w, r)
		return
	}

	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		s.logger.Error("failed to generate swagger doc", "error", err)
		http.Error(w, "Failed to generate Swagger documentation", http.StatusInternalServerError)
		return
	}

	if r.URL.Path == "/swagger/swagger.json" {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
		return
	}

	// JSON is valid YAML, so a round trip through yaml.v3 yields the YAML form
	var tree any
	if err := yaml.Unmarshal([]byte(doc), &tree); err != nil {
		s.logger.Error("failed to parse swagger doc", "error", err)
		http.Error(w, "Failed to generate Swagger documentation", http.StatusInternalServerError)
		return
	}
	out, err := yaml.Marshal(tree)
	if err != nil {
		http.Error(w, "Failed to generate Swagger documentation", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(out)
}

// NewRegistry returns a Prometheus registry with the Go runtime and process collectors
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

// StartServer serves the collector until ctx is cancelled, then shuts down gracefully
func StartServer(ctx context.Context, dumps DumpArchive, config ServerConfig, logger *slog.Logger) error {
	metrics := NewMetrics(NewRegistry())
	server := NewServer(dumps, config, metrics, logger)

	addr := net.JoinHostPort(config.Bind, strconv.Itoa(config.Port))
	SwaggerInfo.Host = addr
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(server),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting stats dump collector", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down stats dump collector")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
