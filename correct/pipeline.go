package correct

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/panjf2000/ants/v2"

	"github.com/HeshalD/Cuisinise/core"
	"github.com/HeshalD/Cuisinise/feedback"
	"github.com/HeshalD/Cuisinise/lexicon"
	"github.com/HeshalD/Cuisinise/nlp"
)

// Pipeline orchestrates the three correction layers for a single request:
// deterministic candidate generation, context plausibility scoring, and
// domain-aware reranking. It owns the shared read-only resources; requests
// are otherwise independent and may run fully in parallel.
type Pipeline struct {
	lexicon   *lexicon.Store
	generator *generator
	scorer    *scorer
	reranker  *reranker
	feedback  *feedback.Store
	provider  nlp.ModelProvider
	workers   *ants.Pool
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent mask scoring.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.workers != nil {
			p.workers.Release()
		}

		workers, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.workers = workers
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a correction pipeline. The lexicon store is read-only
// shared state; the feedback store handles its own locking.
func NewPipeline(
	lex *lexicon.Store,
	provider nlp.ModelProvider,
	feedbackStore *feedback.Store,
	opts ...Option,
) (*Pipeline, error) {
	if lex == nil {
		return nil, ErrLexiconRequired
	}
	if provider == nil {
		return nil, ErrModelProviderRequired
	}
	if feedbackStore == nil {
		return nil, ErrFeedbackStoreRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	workers, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		lexicon:  lex,
		feedback: feedbackStore,
		provider: provider,
		workers:  workers,
		logger:   slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	speller, err := lexicon.NewSpeller(lex, lexicon.WithLogger(p.logger))
	if err != nil {
		p.Release()
		return nil, err
	}

	p.generator = newGenerator(lex, speller, p.logger)
	p.scorer = newScorer(provider, p.workers, p.logger)
	p.reranker = newReranker(lex, provider, feedbackStore, p.logger)

	return p, nil
}

// Correct runs the three layers over the request and returns the ranked
// correction candidates. Model absence never fails a well-formed request;
// only validation failures and genuinely unexpected faults propagate.
func (p *Pipeline) Correct(ctx context.Context, req *core.CorrectionRequest) (*core.CorrectionResponse, error) {
	return p.CorrectWithMonitor(ctx, req, nil)
}

// CorrectWithMonitor runs a correction with per-stage observation hooks.
func (p *Pipeline) CorrectWithMonitor(ctx context.Context, req *core.CorrectionRequest, monitor CorrectionMonitor) (*core.CorrectionResponse, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if req != nil && req.TopK == 0 {
		req.TopK = core.DefaultTopK
	}
	if err := core.ValidateCorrectionRequest(req); err != nil {
		return nil, err
	}

	monitor.Start(req.Text)

	// Layer 1: deterministic candidate generation. The raw original is not
	// pooled here; the reranker injects it unscored so an already-correct
	// query survives ranking without its stability bonus outranking a
	// genuine correction.
	pool := newCandidatePool()
	corrected := p.generator.Generate(req.Text, pool)
	monitor.AfterCandidateGeneration(corrected, pool.Items())

	// Layer 2: context plausibility
	scored := p.scorer.Score(ctx, corrected, pool)
	monitor.AfterContextScoring(len(scored))

	// Layer 3: domain-aware reranking
	ranked := p.reranker.Rerank(ctx, req.Text, scored, req.TopK, req.UserID)
	monitor.Finish(ranked)

	best := req.Text
	if len(ranked) > 0 {
		best = ranked[0].Text
	}

	resp := &core.CorrectionResponse{
		Original:   req.Text,
		Corrected:  best,
		Changed:    core.NormalizeText(best) != core.NormalizeText(req.Text),
		Candidates: ranked,
	}

	p.logger.Debug("correction complete",
		"original", req.Text,
		"corrected", resp.Corrected,
		"changed", resp.Changed,
		"candidates", len(ranked))
	return resp, nil
}

// Feedback records a user's reaction to a suggested correction. Accepted
// suggestions boost future rankings for that user.
func (p *Pipeline) Feedback(record *core.FeedbackRecord) error {
	return p.feedback.Record(record)
}

// Capabilities reports which optional sub-models are loaded and the size of
// the loaded lexicon. Diagnostic only; not used by the ranking logic.
type Capabilities struct {
	Embedder      bool
	Suggester     bool
	MaskPredictor bool
	Lexicon       lexicon.Stats
}

// Capabilities returns the pipeline's capability report.
func (p *Pipeline) Capabilities() Capabilities {
	caps := p.provider.Capabilities()
	return Capabilities{
		Embedder:      caps.Embedder,
		Suggester:     caps.Suggester,
		MaskPredictor: caps.MaskPredictor,
		Lexicon:       p.lexicon.Stats(),
	}
}

// Release frees the worker pool. The pipeline must not be used afterwards.
func (p *Pipeline) Release() {
	if p.workers != nil {
		p.workers.Release()
	}
}
