package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
)

func (s *Server) handleDailyQuests(w http.ResponseWriter, r *http.Request) {
	quests, err := s.svc.DailyQuests(chi.URLParam(r, "userID"))
	if err != nil {
		fail(w, err)
		return
	}
	if quests == nil {
		quests = []domain.Quest{}
	}
	writeJSON(w, http.StatusOK, quests)
}

type addQuestRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	XPReward    int    `json:"xpReward"`
	Category    string `json:"category"`
}

func (s *Server) handleAddQuest(w http.ResponseWriter, r *http.Request) {
	var req addQuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	quest, err := s.svc.AddQuest(chi.URLParam(r, "userID"), req.Title, req.Description,
		req.XPReward, domain.QuestCategory(req.Category))
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quest)
}

// completeQuestResponse is the denormalized completion payload: the quest,
// the user after the whole reward chain, and any fresh unlocks.
type completeQuestResponse struct {
	Quest           domain.Quest         `json:"quest"`
	User            domain.User          `json:"user"`
	NewAchievements []domain.Achievement `json:"newAchievements"`
}

func (s *Server) handleCompleteQuest(w http.ResponseWriter, r *http.Request) {
	result, err := s.svc.CompleteQuest(chi.URLParam(r, "questID"))
	if err != nil {
		fail(w, err)
		return
	}

	resp := completeQuestResponse{
		Quest:           result.Quest,
		User:            result.User,
		NewAchievements: result.NewAchievements,
	}
	if resp.NewAchievements == nil {
		resp.NewAchievements = []domain.Achievement{}
	}
	writeJSON(w, http.StatusOK, resp)
}

type pomodoroResponse struct {
	User     domain.User `json:"user"`
	XPGained int         `json:"xpGained"`
}

func (s *Server) handleCompletePomodoro(w http.ResponseWriter, r *http.Request) {
	result, err := s.svc.CompletePomodoro(chi.URLParam(r, "userID"))
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pomodoroResponse{User: result.User, XPGained: result.XPGained})
}
