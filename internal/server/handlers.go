package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/ats-screener/internal/analysis"
	"github.com/jonathan/ats-screener/internal/pipeline"
	"github.com/jonathan/ats-screener/internal/profile"
	"github.com/jonathan/ats-screener/internal/types"
)

// AnalyzeRequest is the payload for single-resume analysis.
type AnalyzeRequest struct {
	ResumeText           string `json:"resumeText" validate:"required,min=1"`
	CandidateName        string `json:"candidateName"`
	CandidateRole        string `json:"candidateRole"`
	ProfileID            string `json:"profile"`
	CustomJobDescription string `json:"jobDescription"`
	JobURL               string `json:"jobUrl"`

	// IncludeAI requests model-generated recommendations when the server has
	// a recommender configured.
	IncludeAI bool `json:"includeAi"`
}

// RankRequest is the payload for batch ranking.
type RankRequest struct {
	Resumes              []pipeline.Resume `json:"resumes" validate:"required,min=1,dive"`
	ProfileID            string            `json:"profile"`
	CustomJobDescription string            `json:"jobDescription"`
	JobURL               string            `json:"jobUrl"`
	Concurrency          int               `json:"concurrency" validate:"gte=0"`
	IncludeAI            bool              `json:"includeAi"`
}

// ExtractKeywordsRequest asks for the ranked keywords of a job description.
type ExtractKeywordsRequest struct {
	JobDescription string `json:"jobDescription"`
	JobURL         string `json:"jobUrl"`
}

// handleAnalyze scores one resume against a job profile.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ResumeText == "" {
		s.errorResponse(w, http.StatusBadRequest, "resumeText is required")
		return
	}

	jobDescription, ok := s.resolveJobDescription(w, r, req.CustomJobDescription, req.JobURL)
	if !ok {
		return
	}

	analyzeReq := analysis.Request{
		ResumeText:           req.ResumeText,
		CandidateName:        req.CandidateName,
		CandidateRole:        req.CandidateRole,
		ProfileID:            req.ProfileID,
		CustomJobDescription: jobDescription,
	}
	if req.IncludeAI && s.recommender != nil {
		jobProfile := profile.Resolve(req.ProfileID, jobDescription)
		recs, err := s.recommender.Recommend(r.Context(), pipeline.Resume{
			Text:          req.ResumeText,
			CandidateName: req.CandidateName,
			CandidateRole: req.CandidateRole,
		}, jobProfile)
		if err != nil {
			log.Printf("AI recommendations unavailable: %v", err)
		} else {
			analyzeReq.External = recs
		}
	}

	result := s.analyzer.Analyze(analyzeReq)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleRank screens a batch of resumes and returns the ranked results with
// pool insights.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRankRequest(w, r)
	if !ok {
		return
	}

	result, err := pipeline.Screen(r.Context(), s.analyzer, req.Resumes, s.rankOptions(req, nil))
	if err != nil {
		log.Printf("Batch screening failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Batch screening failed")
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleRankStream screens a batch and streams per-candidate progress as
// server-sent events, finishing with the complete result.
func (s *Server) handleRankStream(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRankRequest(w, r)
	if !ok {
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	events := make(chan pipeline.ProgressEvent, len(req.Resumes))
	done := make(chan struct{})
	go func() {
		defer close(done)
		for event := range events {
			if err := sse.WriteEvent("progress", event); err != nil {
				log.Printf("SSE write failed: %v", err)
				return
			}
		}
	}()

	onProgress := func(event pipeline.ProgressEvent) {
		events <- event
	}
	result, err := pipeline.Screen(r.Context(), s.analyzer, req.Resumes, s.rankOptions(req, onProgress))
	close(events)
	<-done

	if err != nil {
		log.Printf("Batch screening failed: %v", err)
		sse.WriteError("Batch screening failed")
		return
	}
	if err := sse.WriteComplete(result); err != nil {
		log.Printf("SSE complete write failed: %v", err)
	}
}

// handleExtractKeywords returns the ranked keywords for a job description.
func (s *Server) handleExtractKeywords(w http.ResponseWriter, r *http.Request) {
	var req ExtractKeywordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	jobDescription, ok := s.resolveJobDescription(w, r, req.JobDescription, req.JobURL)
	if !ok {
		return
	}
	if jobDescription == "" {
		s.errorResponse(w, http.StatusBadRequest, "jobDescription or jobUrl is required")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"keywords": profile.ExtractKeywords(jobDescription),
	})
}

// handleListProfiles returns the built-in job profiles.
func (s *Server) handleListProfiles(w http.ResponseWriter, _ *http.Request) {
	profiles := make([]types.JobProfile, 0)
	for _, id := range profile.IDs() {
		if p, ok := profile.Lookup(id); ok {
			profiles = append(profiles, p)
		}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"profiles": profiles})
}

func (s *Server) decodeRankRequest(w http.ResponseWriter, r *http.Request) (*RankRequest, bool) {
	var req RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if len(req.Resumes) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "resumes list is empty")
		return nil, false
	}

	jobDescription, ok := s.resolveJobDescription(w, r, req.CustomJobDescription, req.JobURL)
	if !ok {
		return nil, false
	}
	req.CustomJobDescription = jobDescription
	return &req, true
}

func (s *Server) rankOptions(req *RankRequest, onProgress pipeline.ProgressCallback) pipeline.Options {
	opts := pipeline.Options{
		ProfileID:            req.ProfileID,
		CustomJobDescription: req.CustomJobDescription,
		Concurrency:          req.Concurrency,
		OnProgress:           onProgress,
	}
	if req.IncludeAI {
		opts.Recommender = s.recommender
	}
	return opts
}

// resolveJobDescription favors an explicit description; otherwise it fetches
// the posting text from the given URL. The bool reports whether the request
// can proceed; on false a response has already been written.
func (s *Server) resolveJobDescription(w http.ResponseWriter, r *http.Request, jobDescription, jobURL string) (string, bool) {
	if jobDescription != "" || jobURL == "" {
		return jobDescription, true
	}

	fetched, err := s.fetcher.JobDescription(r.Context(), jobURL)
	if err != nil {
		log.Printf("Job description fetch failed for %s: %v", jobURL, err)
		s.errorResponse(w, http.StatusBadGateway, "Failed to fetch job posting")
		return "", false
	}
	return fetched.Text, true
}
