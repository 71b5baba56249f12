package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/ats-screener/internal/profile"
	"github.com/jonathan/ats-screener/internal/types"
)

// Request carries everything needed to analyze one resume. Either ProfileID or
// CustomJobDescription selects the scoring baseline; a non-empty description
// wins, and an unknown id falls back to the default profile.
type Request struct {
	ResumeText           string
	CandidateName        string
	CandidateRole        string
	ProfileID            string
	CustomJobDescription string

	// External holds recommendations supplied by an outside collaborator
	// (e.g. the AI service). Valid entries are appended after the rule-based
	// list; invalid entries are dropped.
	External []types.Recommendation
}

// Analyzer orchestrates the scoring pipeline for single resumes. It is
// stateless apart from its injected strategy, ID source, and clock, so one
// instance is safe to share across goroutines.
type Analyzer struct {
	strategy ScoringStrategy
	newID    func() string
	now      func() time.Time
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithStrategy overrides the default weighted scoring strategy.
func WithStrategy(s ScoringStrategy) Option {
	return func(a *Analyzer) { a.strategy = s }
}

// WithIDGenerator overrides candidate ID generation. Tests use this to pin
// IDs; production keeps the UUID default.
func WithIDGenerator(gen func() string) Option {
	return func(a *Analyzer) { a.newID = gen }
}

// WithClock overrides the analysis timestamp source.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// New builds an Analyzer with the weighted strategy and UUID candidate IDs.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		strategy: WeightedStrategy{},
		newID:    uuid.NewString,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Strategy returns the analyzer's scoring strategy.
func (a *Analyzer) Strategy() ScoringStrategy {
	return a.strategy
}

// Analyze runs the full scoring pipeline for one resume: resolve the profile,
// match keywords, detect sections, score formatting and readability, compose
// the ATS score, and generate recommendations. External recommendations are
// validated and appended after the engine's own, in their given order.
//
// Analyze is pure computation over the request: no I/O, no stored state, and
// no failure modes. Degenerate inputs resolve to documented zero results.
func (a *Analyzer) Analyze(req Request) types.AnalysisResult {
	jobProfile := profile.Resolve(req.ProfileID, req.CustomJobDescription)

	keywordAnalysis := MatchKeywords(req.ResumeText, jobProfile.Keywords)
	sectionAnalysis := DetectSections(req.ResumeText, jobProfile.RequiredSections, a.strategy)
	formattingScore := ScoreFormatting(req.ResumeText)
	readabilityScore := ScoreReadability(req.ResumeText)

	atsScore := a.strategy.Compose(
		keywordAnalysis.RelevanceScore,
		sectionAnalysis.CompletenessScore,
		formattingScore,
		readabilityScore,
	)

	recommendations := GenerateRecommendations(keywordAnalysis, sectionAnalysis, formattingScore, readabilityScore)
	for _, ext := range req.External {
		if ext.Validate() != nil {
			continue
		}
		recommendations = append(recommendations, ext)
	}

	return types.AnalysisResult{
		CandidateID:     a.newID(),
		CandidateName:   req.CandidateName,
		CandidateRole:   req.CandidateRole,
		ATSScore:        atsScore,
		KeywordAnalysis: keywordAnalysis,
		SectionAnalysis: sectionAnalysis,
		Recommendations: recommendations,
		AnalysisDate:    a.now(),
		Version:         types.AnalysisVersion,
	}
}
