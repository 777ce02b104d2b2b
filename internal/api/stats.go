package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
)

func (s *Server) handleStatsSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.svc.Summary(chi.URLParam(r, "userID"))
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleDailyStats(w http.ResponseWriter, r *http.Request) {
	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "days must be an integer")
			return
		}
		days = n
	}

	stats, err := s.svc.DailyHistory(chi.URLParam(r, "userID"), days)
	if err != nil {
		fail(w, err)
		return
	}
	if stats == nil {
		stats = []domain.DailyStat{}
	}
	writeJSON(w, http.StatusOK, stats)
}
