// Package devserver implements a stand-in chat backend for local development.
// It answers /ask and /pdf with the same JSON shapes as the real service
// without calling a model.
package devserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/diogo/askweb/internal/logger"
	"github.com/diogo/askweb/internal/models"
)

// MaxUploadBytes bounds the multipart body accepted by /pdf
const MaxUploadBytes = 32 << 20

var pdfMagic = []byte("%PDF-")

// Config configures the stub server
type Config struct {
	Addr          string
	AllowedOrigin string
}

// Server routes the stub endpoints
type Server struct {
	router *chi.Mux
	cfg    Config
}

type askReply struct {
	OK     bool   `json:"ok"`
	Answer string `json:"answer"`
}

type summaryReply struct {
	OK      bool   `json:"ok"`
	Summary string `json:"summary"`
}

// New builds the router
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":5000"
	}
	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = "*"
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(accessLog)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With"},
		MaxAge:         300,
	}))

	s := &Server{router: r, cfg: cfg}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Post(models.EndpointAsk, s.handleAsk)
	s.router.Post(models.EndpointPDF, s.handlePDF)
}

// Router exposes the handler for tests and embedding
func (s *Server) Router() http.Handler { return s.router }

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() { errChan <- server.ListenAndServe() }()

	logger.InfoCF("devserver", "Listening", map[string]interface{}{"addr": s.cfg.Addr})

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.InfoCF("devserver", "Server stopped", nil)
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req models.AskRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	question := strings.TrimSpace(req.Question)
	if question == "" {
		writeJSON(w, http.StatusBadRequest, askReply{Answer: "Please ask a valid question."})
		return
	}
	writeJSON(w, http.StatusOK, askReply{OK: true, Answer: "You asked: " + question})
}

func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)
	if err := r.ParseMultipartForm(MaxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, summaryReply{Summary: "No PDF uploaded."})
		return
	}

	file, header, err := r.FormFile(models.PDFFieldName)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, summaryReply{Summary: "No PDF uploaded."})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil || !bytes.HasPrefix(data, pdfMagic) {
		writeJSON(w, http.StatusBadRequest, summaryReply{Summary: "Could not extract text from PDF."})
		return
	}

	summary := fmt.Sprintf("Received %s (%d bytes).", header.Filename, len(data))
	writeJSON(w, http.StatusOK, summaryReply{OK: true, Summary: summary})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// statusWriter captures the status and size for the access log
type statusWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(p)
	w.size += n
	return n, err
}

func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)

		logger.InfoCF("devserver", "http", map[string]interface{}{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      sw.status,
			"bytes":       sw.size,
			"duration_ms": time.Since(start).Milliseconds(),
			"req_id":      middleware.GetReqID(r.Context()),
		})
	})
}
