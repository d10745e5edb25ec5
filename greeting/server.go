// Package greeting serves the small JSON greeting API used by the web
// front end: a health probe and a random love note.
package greeting

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jamesEmerson112/Valentine-2026/engine/logger"
)

// ServiceName is reported by /health
const ServiceName = "valentine-backend"

// DefaultFrom signs every greeting
const DefaultFrom = "Your Valentine"

// Quotes are the canned greetings
var Quotes = []string{
	"You are the reason I believe in love.",
	"Every love story is beautiful, but ours is my favorite.",
	"In all the world, there is no heart for me like yours.",
	"I love you more than yesterday, less than tomorrow.",
	"You had me at hello.",
	"To love and be loved is to feel the sun from both sides.",
	"My heart is, and always will be, yours.",
	"I wish I could turn back the clock. I'd find you sooner and love you longer.",
	"You are my today and all of my tomorrows.",
	"I fell in love the way you fall asleep: slowly, and then all at once.",
}

// fallback is used if the quote list is empty
const fallback = "I love you!"

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type GreetingResponse struct {
	Message string `json:"message"`
	From    string `json:"from"`
}

// Server answers greeting requests. Handlers run concurrently; the random
// source is the only shared state.
type Server struct {
	Addr   string
	From   string
	Quotes []string

	mu  sync.Mutex
	rng *rand.Rand
	log logrus.FieldLogger
}

// New creates a server listening on addr (e.g. ":8000"). A nil rng is
// seeded from the clock.
func New(addr string, rng *rand.Rand) *Server {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Server{
		Addr:   addr,
		From:   DefaultFrom,
		Quotes: Quotes,
		rng:    rng,
		log:    logger.Log.WithField("component", "greeting"),
	}
}

// Handler returns the routed handler, CORS included
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/api/greeting", enableCORS(s.handleGreeting))
	mux.HandleFunc("/api/valentine", enableCORS(s.handleGreeting))
	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("greeting service running on %s", s.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		s.log.Info("greeting service stopped")
		return nil
	}
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, HealthResponse{Status: "ok", Service: ServiceName}, s.log)
}

func (s *Server) handleGreeting(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, GreetingResponse{Message: s.pick(), From: s.From}, s.log)
}

// pick returns a random quote
func (s *Server) pick() string {
	if len(s.Quotes) == 0 {
		return fallback
	}
	s.mu.Lock()
	i := s.rng.Intn(len(s.Quotes))
	s.mu.Unlock()
	return s.Quotes[i]
}

func writeJSON(w http.ResponseWriter, v any, log logrus.FieldLogger) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("failed to write response")
	}
}
