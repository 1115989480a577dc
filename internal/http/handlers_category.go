package http

import (
	"encoding/json"
	"net/http"

	"fintrack/internal/core"
)

type categoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())

	categories, err := s.categoryService.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	category, err := s.categoryService.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, core.ValidationError("invalid request payload"))
		return
	}

	category, err := s.categoryService.Create(r.Context(), userID, core.NewCategory{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, core.ValidationError("invalid request payload"))
		return
	}

	category, err := s.categoryService.Update(r.Context(), userID, id, core.CategoryPatch{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := s.categoryService.Delete(r.Context(), userID, id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}
