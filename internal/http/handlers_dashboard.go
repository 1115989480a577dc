package http

import "net/http"

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())

	view, err := s.dashboardService.Summarize(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
