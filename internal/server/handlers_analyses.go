package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/ats-screener/internal/db"
	"github.com/jonathan/ats-screener/internal/report"
	"github.com/jonathan/ats-screener/internal/server/middleware"
	"github.com/jonathan/ats-screener/internal/types"
)

// SaveAnalysisRequest persists one analysis result for the authenticated user.
type SaveAnalysisRequest struct {
	ProfileID string               `json:"profile"`
	Result    types.AnalysisResult `json:"result"`
}

// SaveRankingRequest persists one ranking run for the authenticated user.
type SaveRankingRequest struct {
	ProfileID string                 `json:"profile"`
	Ranked    []types.AnalysisResult `json:"rankedAnalyses"`
	Insights  types.RankingInsights  `json:"insights"`
}

func (s *Server) handleSaveAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var req SaveAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Result.CandidateID == "" {
		s.errorResponse(w, http.StatusBadRequest, "result is required")
		return
	}

	id, err := s.db.SaveAnalysis(r.Context(), userID, req.ProfileID, req.Result)
	if err != nil {
		log.Printf("Failed to save analysis for user %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save analysis")
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	filters := db.AnalysisFilters{
		ProfileID: r.URL.Query().Get("profile"),
	}
	if v := r.URL.Query().Get("min_score"); v != "" {
		minScore, err := strconv.Atoi(v)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "min_score must be an integer")
			return
		}
		filters.MinScore = minScore
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		filters.Limit = limit
	}

	summaries, err := s.db.ListAnalyses(r.Context(), userID, filters)
	if err != nil {
		log.Printf("Failed to list analyses for user %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list analyses")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"analyses": summaries})
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, analysisID, ok := s.requireUserAndID(w, r)
	if !ok {
		return
	}

	analysis, err := s.db.GetAnalysis(r.Context(), userID, analysisID)
	if err != nil {
		log.Printf("Failed to get analysis %s: %v", analysisID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get analysis")
		return
	}
	if analysis == nil {
		s.errorResponse(w, http.StatusNotFound, "Analysis not found")
		return
	}

	// Result is stored as the serialized engine output; return it verbatim.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(analysis.Result)
}

func (s *Server) handleExportAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, analysisID, ok := s.requireUserAndID(w, r)
	if !ok {
		return
	}

	analysis, err := s.db.GetAnalysis(r.Context(), userID, analysisID)
	if err != nil {
		log.Printf("Failed to get analysis %s: %v", analysisID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get analysis")
		return
	}
	if analysis == nil {
		s.errorResponse(w, http.StatusNotFound, "Analysis not found")
		return
	}

	var result types.AnalysisResult
	if err := json.Unmarshal(analysis.Result, &result); err != nil {
		log.Printf("Stored analysis %s is unreadable: %v", analysisID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Stored analysis is unreadable")
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=analysis.csv")
		if err := report.WriteCSV(w, []types.AnalysisResult{result}); err != nil {
			log.Printf("CSV export failed for %s: %v", analysisID, err)
		}
	case "", "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		report.WriteAnalysisText(w, result)
	default:
		s.errorResponse(w, http.StatusBadRequest, "format must be text or csv")
	}
}

func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, analysisID, ok := s.requireUserAndID(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteAnalysis(r.Context(), userID, analysisID); err != nil {
		log.Printf("Failed to delete analysis %s: %v", analysisID, err)
		s.errorResponse(w, http.StatusNotFound, "Analysis not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Analysis deleted"})
}

func (s *Server) handleSaveRanking(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var req SaveRankingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Ranked) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "rankedAnalyses is empty")
		return
	}

	id, err := s.db.SaveRankingSnapshot(r.Context(), userID, req.ProfileID, req.Ranked, req.Insights)
	if err != nil {
		log.Printf("Failed to save ranking for user %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save ranking")
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (s *Server) handleListRankings(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	snapshots, err := s.db.ListRankingSnapshots(r.Context(), userID, limit)
	if err != nil {
		log.Printf("Failed to list rankings for user %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list rankings")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"rankings": snapshots})
}

func (s *Server) handleGetRanking(w http.ResponseWriter, r *http.Request) {
	userID, snapshotID, ok := s.requireUserAndID(w, r)
	if !ok {
		return
	}

	snapshot, err := s.db.GetRankingSnapshot(r.Context(), userID, snapshotID)
	if err != nil {
		log.Printf("Failed to get ranking %s: %v", snapshotID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get ranking")
		return
	}
	if snapshot == nil {
		s.errorResponse(w, http.StatusNotFound, "Ranking not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, snapshot)
}

func (s *Server) handleDeleteRanking(w http.ResponseWriter, r *http.Request) {
	userID, snapshotID, ok := s.requireUserAndID(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteRankingSnapshot(r.Context(), userID, snapshotID); err != nil {
		log.Printf("Failed to delete ranking %s: %v", snapshotID, err)
		s.errorResponse(w, http.StatusNotFound, "Ranking not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Ranking deleted"})
}

func (s *Server) requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

func (s *Server) requireUserAndID(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := s.requireUser(w, r)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid id")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, id, true
}
