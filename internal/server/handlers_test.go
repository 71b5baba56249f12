package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-screener/internal/analysis"
	"github.com/jonathan/ats-screener/internal/fetch"
	"github.com/jonathan/ats-screener/internal/pipeline"
	"github.com/jonathan/ats-screener/internal/types"
)

const handlerResume = `Summary
Backend engineer with five years of experience.

Skills
Go, SQL, Docker, Kubernetes

Experience
Senior Engineer at Example Corp
- Built APIs in Go serving millions of requests

Education
BSc Computer Science`

func testServer() *Server {
	return &Server{
		analyzer: analysis.New(),
		fetcher:  fetch.NewCachedFetcher(nil, 0),
	}
}

func serveJSON(t *testing.T, handler http.HandlerFunc, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleAnalyze_ReturnsResult(t *testing.T) {
	s := testServer()

	rec := serveJSON(t, s.handleAnalyze, http.MethodPost, "/analyze", AnalyzeRequest{
		ResumeText:    handlerResume,
		CandidateName: "Ada",
		ProfileID:     "software-engineer",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result types.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Ada", result.CandidateName)
	assert.Greater(t, result.ATSScore.Overall, 0)
	assert.NotEmpty(t, result.CandidateID)
}

func TestHandleAnalyze_RequiresResumeText(t *testing.T) {
	s := testServer()
	rec := serveJSON(t, s.handleAnalyze, http.MethodPost, "/analyze", AnalyzeRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_MalformedBody(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader([]byte("nope")))
	rec := httptest.NewRecorder()
	s.handleAnalyze(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRank_RanksBatch(t *testing.T) {
	s := testServer()

	rec := serveJSON(t, s.handleRank, http.MethodPost, "/rank", RankRequest{
		Resumes: []pipeline.Resume{
			{Text: handlerResume, CandidateName: "Ada"},
			{Text: "Short resume with nothing in it.", CandidateName: "Bob"},
		},
		ProfileID: "software-engineer",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result pipeline.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.Ranked, 2)
	assert.Equal(t, 2, result.TotalResumes)
	assert.Equal(t, "Ada", result.Ranked[0].CandidateName)
	assert.Equal(t, 1, result.Ranked[0].Rank)
}

func TestHandleRank_RejectsEmptyBatch(t *testing.T) {
	s := testServer()
	rec := serveJSON(t, s.handleRank, http.MethodPost, "/rank", RankRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRankStream_EmitsProgressAndComplete(t *testing.T) {
	s := testServer()

	rec := serveJSON(t, s.handleRankStream, http.MethodPost, "/rank/stream", RankRequest{
		Resumes: []pipeline.Resume{
			{Text: handlerResume, CandidateName: "Ada"},
		},
		ProfileID: "software-engineer",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "event: progress")
	assert.Contains(t, body, `"candidateName":"Ada"`)
	assert.Contains(t, body, "event: complete")
	assert.Contains(t, body, `"rankedAnalyses"`)
}

func TestHandleExtractKeywords_FromDescription(t *testing.T) {
	s := testServer()

	rec := serveJSON(t, s.handleExtractKeywords, http.MethodPost, "/extract-keywords", ExtractKeywordsRequest{
		JobDescription: "We need strong Kubernetes and Terraform experience. Kubernetes is used daily.",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Keywords []string `json:"keywords"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Keywords, "kubernetes")
}

func TestHandleExtractKeywords_RequiresInput(t *testing.T) {
	s := testServer()
	rec := serveJSON(t, s.handleExtractKeywords, http.MethodPost, "/extract-keywords", ExtractKeywordsRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListProfiles_ReturnsBuiltins(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodGet, "/profiles", nil)
	rec := httptest.NewRecorder()
	s.handleListProfiles(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Profiles []types.JobProfile `json:"profiles"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Profiles)

	ids := make([]string, 0, len(resp.Profiles))
	for _, p := range resp.Profiles {
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, "software-engineer")
}

func TestHandleHealth_OK(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.handleHealth(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

// failingRecommender always errors so handlers must degrade to rule-based
// recommendations only.
type failingRecommender struct{}

func (failingRecommender) Recommend(context.Context, pipeline.Resume, types.JobProfile) ([]types.Recommendation, error) {
	return nil, assert.AnError
}

func TestHandleAnalyze_ToleratesRecommenderFailure(t *testing.T) {
	s := testServer()
	s.recommender = failingRecommender{}

	rec := serveJSON(t, s.handleAnalyze, http.MethodPost, "/analyze", AnalyzeRequest{
		ResumeText: handlerResume,
		ProfileID:  "software-engineer",
		IncludeAI:  true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result types.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	for _, r := range result.Recommendations {
		assert.False(t, r.AIGenerated)
	}
}
