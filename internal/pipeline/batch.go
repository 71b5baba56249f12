// Package pipeline provides the high-level orchestration for screening a
// batch of resumes: a parallel per-resume analysis fan-out followed by a
// sequential whole-batch rank and aggregate reduce.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-screener/internal/analysis"
	"github.com/jonathan/ats-screener/internal/profile"
	"github.com/jonathan/ats-screener/internal/ranking"
	"github.com/jonathan/ats-screener/internal/types"
)

// DefaultConcurrency bounds the analysis fan-out when no limit is configured.
const DefaultConcurrency = 4

// Resume is one unit of screening input, as supplied by the upload/extraction
// collaborator. The engine makes no assumptions about text quality.
type Resume struct {
	Text          string `json:"resumeText"`
	CandidateName string `json:"candidateName"`
	CandidateRole string `json:"candidateRole"`
}

// RecommendationSource supplies externally generated recommendations for one
// resume, e.g. from the AI collaborator. Implementations may fail; the
// pipeline tolerates errors by proceeding without external recommendations.
type RecommendationSource interface {
	Recommend(ctx context.Context, resume Resume, jobProfile types.JobProfile) ([]types.Recommendation, error)
}

// ProgressEvent reports per-candidate progress during a batch run.
type ProgressEvent struct {
	CandidateName string `json:"candidateName"`
	Stage         string `json:"stage"`
	Message       string `json:"message,omitempty"`
}

// ProgressCallback is invoked as candidates move through the pipeline.
type ProgressCallback func(event ProgressEvent)

// Options configures a batch screening run.
type Options struct {
	ProfileID            string
	CustomJobDescription string
	Concurrency          int
	Recommender          RecommendationSource
	OnProgress           ProgressCallback
}

// Result is the output of a full batch run: the ranked results and the
// pool-level insights derived from them.
type Result struct {
	Ranked       []types.AnalysisResult `json:"rankedAnalyses"`
	Insights     types.RankingInsights  `json:"insights"`
	TotalResumes int                    `json:"totalResumes"`
}

// Screen analyzes every resume in parallel, then ranks the batch and derives
// insights. Analysis order never affects output order: results re-enter the
// rank step in input order, so rank ties resolve by input position. Ranking
// and aggregation need the whole batch and run after the fan-out joins.
//
// The only error paths are context cancellation and an empty batch; analysis
// itself never fails.
func Screen(ctx context.Context, analyzer *analysis.Analyzer, resumes []Resume, opts Options) (*Result, error) {
	if len(resumes) == 0 {
		return nil, fmt.Errorf("no resumes to screen")
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]types.AnalysisResult, len(resumes))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, resume := range resumes {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			opts.progress(resume, "analyze")

			external := opts.externalRecommendations(gCtx, resume)
			results[i] = analyzer.Analyze(analysis.Request{
				ResumeText:           resume.Text,
				CandidateName:        resume.CandidateName,
				CandidateRole:        resume.CandidateRole,
				ProfileID:            opts.ProfileID,
				CustomJobDescription: opts.CustomJobDescription,
				External:             external,
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch analysis canceled: %w", err)
	}

	// Reduce step: whole-batch, sequential.
	ranked := ranking.Rank(results, opts.ProfileID)
	insights := ranking.Aggregate(ranked)

	return &Result{
		Ranked:       ranked,
		Insights:     insights,
		TotalResumes: len(resumes),
	}, nil
}

// externalRecommendations asks the configured recommender for extra
// recommendations, treating any failure as "none available".
func (o Options) externalRecommendations(ctx context.Context, resume Resume) []types.Recommendation {
	if o.Recommender == nil {
		return nil
	}
	jobProfile := profile.Resolve(o.ProfileID, o.CustomJobDescription)
	recs, err := o.Recommender.Recommend(ctx, resume, jobProfile)
	if err != nil {
		log.Printf("ai recommendations unavailable for %s: %v", resume.CandidateName, err)
		return nil
	}
	return recs
}

func (o Options) progress(resume Resume, stage string) {
	if o.OnProgress != nil {
		o.OnProgress(ProgressEvent{CandidateName: resume.CandidateName, Stage: stage})
	}
}
