package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
)

func (s *Server) handleListPets(w http.ResponseWriter, r *http.Request) {
	pets, err := s.svc.Pets()
	if err != nil {
		fail(w, err)
		return
	}
	if pets == nil {
		pets = []domain.Pet{}
	}
	writeJSON(w, http.StatusOK, pets)
}

func (s *Server) handleUserPets(w http.ResponseWriter, r *http.Request) {
	pets, err := s.svc.UserPets(chi.URLParam(r, "userID"))
	if err != nil {
		fail(w, err)
		return
	}
	if pets == nil {
		pets = []domain.UserPet{}
	}
	writeJSON(w, http.StatusOK, pets)
}

type openEggRequest struct {
	Rarity string `json:"rarity"`
}

type openEggResponse struct {
	UserPet   domain.UserPet `json:"userPet"`
	Pet       domain.Pet     `json:"pet"`
	Duplicate bool           `json:"duplicate"`
}

func (s *Server) handleOpenEgg(w http.ResponseWriter, r *http.Request) {
	var req openEggRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.svc.OpenEgg(chi.URLParam(r, "userID"), req.Rarity)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, openEggResponse{
		UserPet:   result.UserPet,
		Pet:       result.Pet,
		Duplicate: result.Duplicate,
	})
}

func (s *Server) handleHatchProgress(w http.ResponseWriter, r *http.Request) {
	pet, err := s.svc.AddHatchProgress(chi.URLParam(r, "userPetID"))
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pet)
}

func (s *Server) handleHatch(w http.ResponseWriter, r *http.Request) {
	pet, err := s.svc.Hatch(chi.URLParam(r, "userPetID"))
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pet)
}

type interactRequest struct {
	Action string `json:"action"`
}

func (s *Server) handleInteract(w http.ResponseWriter, r *http.Request) {
	var req interactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pet, err := s.svc.Interact(chi.URLParam(r, "userPetID"), domain.PetAction(req.Action))
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pet)
}
