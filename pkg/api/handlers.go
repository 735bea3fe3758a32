package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ssargent/statsdump/pkg/archive"
	"github.com/ssargent/statsdump/pkg/statsdump"
)

// Server holds the API server state
type Server struct {
	archive DumpArchive
	decoder *statsdump.Decoder
	config  ServerConfig
	metrics *Metrics
	logger  *slog.Logger
}

// NewServer creates a new API server
func NewServer(dumps DumpArchive, config ServerConfig, metrics *Metrics, logger *slog.Logger) *Server {
	return &Server{
		archive: dumps,
		decoder: statsdump.NewDecoder(statsdump.Options{Strict: config.Strict, Logger: logger}),
		config:  config,
		metrics: metrics,
		logger:  logger,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// readDump reads the request body, enforcing the configured size limit.
// It writes the error response itself and returns nil on failure.
func (s *Server) readDump(w http.ResponseWriter, r *http.Request) []byte {
	body := http.MaxBytesReader(w, r.Body, s.config.MaxDumpSize)
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			sendError(w, fmt.Sprintf("Dump exceeds %d bytes", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return nil
		}
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return nil
	}
	if len(data) == 0 {
		sendError(w, "Request body is empty", http.StatusBadRequest)
		return nil
	}
	return data
}

// decode decodes data and records the outcome. It writes the error response
// itself and returns nil on failure.
func (s *Server) decode(w http.ResponseWriter, data []byte) *statsdump.Record {
	rec, err := s.decoder.Decode(data)
	if err != nil {
		s.metrics.RecordDecode(len(data), 0, false)
		sendError(w, err.Error(), http.StatusUnprocessableEntity)
		return nil
	}
	s.metrics.RecordDecode(len(data), len(rec.UnknownTags), true)
	return rec
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	data := s.readDump(w, r)
	if data == nil {
		return
	}
	rec := s.decode(w, data)
	if rec == nil {
		return
	}
	sendSuccess(w, rec)
}

func (s *Server) handleStoreDump(w http.ResponseWriter, r *http.Request) {
	data := s.readDump(w, r)
	if data == nil {
		return
	}
	rec := s.decode(w, data)
	if rec == nil {
		return
	}

	start := time.Now()
	entry, duplicate, err := s.archive.Put(data, rec)
	s.metrics.RecordArchiveOperation("put", err == nil, time.Since(start))
	if err != nil {
		s.logger.Error("failed to archive dump", "error", err)
		sendError(w, fmt.Sprintf("Failed to archive dump: %v", err), http.StatusInternalServerError)
		return
	}

	s.logger.Info("archived stats dump",
		"id", entry.ID,
		"game", rec.GameNumber,
		"size", len(data),
		"duplicate", duplicate,
	)

	status := http.StatusCreated
	if duplicate {
		status = http.StatusOK
	}
	sendSuccessStatus(w, StoreResponse{ID: entry.ID, Duplicate: duplicate, Record: rec}, status)
}

func (s *Server) handleListDumps(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	entries, err := s.archive.List()
	s.metrics.RecordArchiveOperation("list", err == nil, time.Since(start))
	if err != nil {
		sendError(w, fmt.Sprintf("Failed to list dumps: %v", err), http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []archive.Entry{}
	}
	sendSuccess(w, entries)
}

// sendArchiveError maps archive errors to status codes
func sendArchiveError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, archive.ErrInvalidID):
		sendError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, archive.ErrNotFound):
		sendError(w, "Dump not found", http.StatusNotFound)
	default:
		sendError(w, err.Error(), http.StatusInternalServerError)
	}
}

// loadDump fetches the raw bytes for the {id} path parameter
func (s *Server) loadDump(w http.ResponseWriter, r *http.Request) (string, []byte) {
	id := chi.URLParam(r, "id")
	start := time.Now()
	raw, err := s.archive.Raw(id)
	s.metrics.RecordArchiveOperation("get", err == nil, time.Since(start))
	if err != nil {
		sendArchiveError(w, err)
		return id, nil
	}
	return id, raw
}

func (s *Server) handleGetDump(w http.ResponseWriter, r *http.Request) {
	id, raw := s.loadDump(w, r)
	if raw == nil {
		return
	}
	entry, err := s.archive.Get(id)
	if err != nil {
		sendArchiveError(w, err)
		return
	}
	rec := s.decode(w, raw)
	if rec == nil {
		return
	}
	sendSuccess(w, DumpResponse{Entry: entry, Record: rec})
}

func (s *Server) handleGetDumpText(w http.ResponseWriter, r *http.Request) {
	_, raw := s.loadDump(w, r)
	if raw == nil {
		return
	}
	rec := s.decode(w, raw)
	if rec == nil {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := rec.WriteText(w); err != nil {
		s.logger.Warn("failed to write text dump", "error", err)
	}
}

func (s *Server) handleGetDumpRaw(w http.ResponseWriter, r *http.Request) {
	id, raw := s.loadDump(w, r)
	if raw == nil {
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", id+".dmp"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

func (s *Server) handleDeleteDump(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	start := time.Now()
	err := s.archive.Delete(id)
	s.metrics.RecordArchiveOperation("delete", err == nil, time.Since(start))
	if err != nil {
		sendArchiveError(w, err)
		return
	}
	sendSuccess(w, map[string]string{"id": id, "status": "deleted"})
}
