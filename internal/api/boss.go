package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
)

func (s *Server) handleCurrentBoss(w http.ResponseWriter, r *http.Request) {
	battle, err := s.svc.CurrentBoss(chi.URLParam(r, "userID"))
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, battle)
}

type attackRequest struct {
	Damage int `json:"damage"`
}

type attackResponse struct {
	Boss    domain.BossBattle `json:"boss"`
	Rewards int               `json:"rewards"`
}

func (s *Server) handleAttackBoss(w http.ResponseWriter, r *http.Request) {
	var req attackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.svc.Attack(chi.URLParam(r, "userID"), req.Damage)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, attackResponse{Boss: result.Battle, Rewards: result.Rewards})
}

func (s *Server) handleBossHistory(w http.ResponseWriter, r *http.Request) {
	battles, err := s.svc.BossHistory(chi.URLParam(r, "userID"))
	if err != nil {
		fail(w, err)
		return
	}
	if battles == nil {
		battles = []domain.BossBattle{}
	}
	writeJSON(w, http.StatusOK, battles)
}
