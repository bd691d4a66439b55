package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/medassist-lab/medassist/pkg/domain/model"
	"github.com/medassist-lab/medassist/pkg/utils/errutil"
	"github.com/medassist-lab/medassist/pkg/utils/logging"
	"github.com/medassist-lab/medassist/pkg/utils/safe"
)

// defaultLogTail is how many log lines GET /logs returns by default
const defaultLogTail = 50

// ChatUseCase handles one conversational turn. It never fails: a
// degraded but well-formed response is returned on internal errors.
type ChatUseCase interface {
	Chat(ctx context.Context, req *model.ChatRequest) *model.ChatResponse
}

type Server struct {
	router *chi.Mux
	uc     ChatUseCase
	logBuf *logging.RingBuffer
}

type Options func(*Server)

// WithLogBuffer exposes the most recent log lines over GET /logs
func WithLogBuffer(buf *logging.RingBuffer) Options {
	return func(s *Server) {
		s.logBuf = buf
	}
}

func New(uc ChatUseCase, opts ...Options) (*Server, error) {
	if uc == nil {
		return nil, goerr.New("chat use case is required")
	}

	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Post("/chat", s.handleChat)
	r.Get("/logs", s.handleLogs)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		safe.Write(r.Context(), w, []byte("OK"))
	})

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleChat decodes a strictly-shaped chat request, runs one dialogue
// turn, and writes the reply with the updated profile and phase.
// Unknown fields are rejected rather than silently passed through.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ChatRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "malformed chat request"), http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	// Attach a per-request logger so all chat logs carry the request ID
	logger := logging.From(ctx).With("request_id", uuid.Must(uuid.NewV7()).String())
	ctx = logging.With(ctx, logger)

	resp := s.uc.Chat(ctx, &req)

	writeJSON(ctx, w, resp)
}

// handleLogs serves the most recent operational log lines. This is an
// observability aid for the front end, not part of the chat contract.
func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.logBuf == nil {
		writeJSON(ctx, w, map[string][]string{"logs": {"Log buffer not configured."}})
		return
	}

	n := defaultLogTail
	if v := r.URL.Query().Get("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			errutil.HandleHTTP(ctx, w, goerr.New("invalid line count", goerr.V("n", v)), http.StatusBadRequest)
			return
		}
		n = parsed
	}

	writeJSON(ctx, w, map[string][]string{"logs": s.logBuf.Tail(n)})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.From(ctx).Error("failed to encode response", "error", err.Error())
	}
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
