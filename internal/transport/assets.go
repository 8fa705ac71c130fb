package transport

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vpstudios/backlot/internal/domain/asset"
)

func (s *Server) handleListAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := s.assets.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyIfNil(assets))
}

func (s *Server) handleFeaturedAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := s.assets.ListFeatured(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyIfNil(assets))
}

func (s *Server) handleAssetsByCategory(w http.ResponseWriter, r *http.Request) {
	assets, err := s.assets.ListByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyIfNil(assets))
}

func (s *Server) handleGetAsset(w http.ResponseWriter, r *http.Request) {
	a, err := s.assets.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleCreateAsset(w http.ResponseWriter, r *http.Request) {
	var req asset.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	a, err := s.assets.Create(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (s *Server) handleGetCredits(w http.ResponseWriter, r *http.Request) {
	b, err := s.credits.Get(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleAddCredits(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount int `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	b, err := s.credits.Add(r.Context(), chi.URLParam(r, "email"), req.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func emptyIfNil(assets []asset.Asset) []asset.Asset {
	if assets == nil {
		return []asset.Asset{}
	}
	return assets
}
