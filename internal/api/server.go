// Package api provides the Study Quest HTTP server: a JSON REST API over
// the reward engine plus optional static hosting for the dashboard SPA.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/app/game"
	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
)

// Server is the Study Quest HTTP API server.
type Server struct {
	svc            *game.Service
	webDir         string
	metricsEnabled bool
}

// NewServer creates a new API server over the reward engine.
func NewServer(svc *game.Service) *Server {
	return &Server{svc: svc}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// SetWebDir serves the dashboard SPA from dir for unmatched routes.
func (s *Server) SetWebDir(dir string) { s.webDir = dir }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)
		r.Get("/users/{userID}", s.handleGetUser)

		r.Route("/quests", func(r chi.Router) {
			r.Get("/{userID}/daily", s.handleDailyQuests)
			r.Post("/{userID}", s.handleAddQuest)
			r.Post("/{questID}/complete", s.handleCompleteQuest)
		})

		r.Post("/pomodoro/{userID}/complete", s.handleCompletePomodoro)

		r.Route("/achievements", func(r chi.Router) {
			r.Get("/", s.handleListAchievements)
			r.Get("/{userID}", s.handleUserAchievements)
		})

		r.Route("/shop", func(r chi.Router) {
			r.Get("/", s.handleListShopItems)
			r.Get("/{userID}/items", s.handleUserItems)
			r.Post("/{userID}/purchase", s.handlePurchase)
		})

		r.Route("/pets", func(r chi.Router) {
			r.Get("/", s.handleListPets)
			r.Get("/{userID}", s.handleUserPets)
			r.Post("/{userID}/open-egg", s.handleOpenEgg)
			r.Post("/{userPetID}/hatch-progress", s.handleHatchProgress)
			r.Post("/{userPetID}/hatch", s.handleHatch)
			r.Post("/{userPetID}/interact", s.handleInteract)
		})

		r.Route("/boss", func(r chi.Router) {
			r.Get("/{userID}/current", s.handleCurrentBoss)
			r.Post("/{userID}/attack", s.handleAttackBoss)
			r.Get("/{userID}/history", s.handleBossHistory)
		})

		r.Route("/stats", func(r chi.Router) {
			r.Get("/{userID}", s.handleStatsSummary)
			r.Get("/{userID}/daily", s.handleDailyStats)
		})
	})

	// Prometheus metrics endpoint
	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	// Serve the dashboard SPA for all other routes
	if dir := s.findWebDir(); dir != "" {
		fileServer := http.FileServer(http.Dir(dir))
		r.Handle("/*", fileServer)
	}

	return r
}

// findWebDir validates the configured web directory.
func (s *Server) findWebDir() string {
	if s.webDir == "" {
		return ""
	}
	if _, err := os.Stat(filepath.Join(s.webDir, "index.html")); err != nil {
		return ""
	}
	return s.webDir
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// fail maps a reward-engine error onto its HTTP status.
func fail(w http.ResponseWriter, err error) {
	writeError(w, statusFor(err), err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrQuestNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrPetNotFound),
		errors.Is(err, domain.ErrNoActiveBattle):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrQuestCompleted):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUsernameRequired),
		errors.Is(err, domain.ErrTitleRequired),
		errors.Is(err, domain.ErrInvalidAction),
		errors.Is(err, domain.ErrInsufficientXP),
		errors.Is(err, domain.ErrNoEggInInventory),
		errors.Is(err, domain.ErrNoPetsForRarity),
		errors.Is(err, domain.ErrAlreadyHatched),
		errors.Is(err, domain.ErrNotHatched),
		errors.Is(err, domain.ErrNotEnoughProgress):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// corsMiddleware adds CORS headers for the dashboard SPA.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
