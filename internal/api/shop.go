package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foxjwjw99-rgb/winnie-study-quest/internal/domain"
)

func (s *Server) handleListShopItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.svc.ShopItems()
	if err != nil {
		fail(w, err)
		return
	}
	if items == nil {
		items = []domain.ShopItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleUserItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.svc.Inventory(chi.URLParam(r, "userID"))
	if err != nil {
		fail(w, err)
		return
	}
	if items == nil {
		items = []domain.UserItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

type purchaseRequest struct {
	ItemID string `json:"itemId"`
}

type purchaseResponse struct {
	User domain.User     `json:"user"`
	Item domain.UserItem `json:"item"`
}

func (s *Server) handlePurchase(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.svc.Purchase(chi.URLParam(r, "userID"), req.ItemID)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, purchaseResponse{User: result.User, Item: result.Item})
}
