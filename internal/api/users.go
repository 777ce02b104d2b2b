package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
)

type loginRequest struct {
	Username string `json:"username"`
}

// handleLogin finds or creates the account for a username. New accounts get
// the default daily quests seeded as part of the same transaction.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := s.svc.Login(req.Username)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.svc.User(chi.URLParam(r, "userID"))
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleListAchievements(w http.ResponseWriter, r *http.Request) {
	achievements, err := s.svc.Achievements()
	if err != nil {
		fail(w, err)
		return
	}
	if achievements == nil {
		achievements = []domain.Achievement{}
	}
	writeJSON(w, http.StatusOK, achievements)
}

func (s *Server) handleUserAchievements(w http.ResponseWriter, r *http.Request) {
	unlocks, err := s.svc.UserAchievements(chi.URLParam(r, "userID"))
	if err != nil {
		fail(w, err)
		return
	}
	if unlocks == nil {
		unlocks = []domain.UserAchievement{}
	}
	writeJSON(w, http.StatusOK, unlocks)
}
