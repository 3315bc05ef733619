package autologic

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/joshuavictorchen/autologic-sub000/internal/hash"
	"github.com/joshuavictorchen/autologic-sub000/internal/hooks"
	"github.com/joshuavictorchen/autologic-sub000/internal/logging"
	"github.com/joshuavictorchen/autologic-sub000/internal/metrics"
	"github.com/joshuavictorchen/autologic-sub000/stations"
	"github.com/joshuavictorchen/autologic-sub000/strategy"
	"github.com/joshuavictorchen/autologic-sub000/types"
	"github.com/joshuavictorchen/autologic-sub000/validate"
)

// Scheduler partitions categories across heats and drives the overall
// accept/retry loop.
//
// Each attempt shuffles the category list with the scheduler's
// explicit random generator, deals categories round-robin into heats,
// resets every assignment, and asks the role strategy to staff each
// heat. The first attempt that satisfies both balance tolerances and
// role minima is accepted; station assignment then runs once per heat.
//
// A Scheduler owns exclusive mutation rights over its roster for the
// duration of a run. Run is synchronous and CPU-bound; call it from a
// worker goroutine when embedding in interactive contexts.
type Scheduler struct {
	cfg      Config
	roster   *types.Roster
	rules    types.Rules
	strategy types.RoleStrategy
	rng      *rand.Rand
	logger   types.Logger
	hooks    types.Hooks
	metrics  types.MetricsCollector
	runID    string

	// rejections is read concurrently via RejectionSummary while Run
	// executes on another goroutine.
	rejections *xsync.Map[string, int]

	// lastShortfalls holds role shortfalls from the most recent attempt
	// that produced any, for terminal diagnostics.
	lastShortfalls []types.RoleShortfall
}

// Result is the terminal state of a scheduling run.
type Result struct {
	// Outcome is the terminal outcome.
	Outcome types.Outcome

	// RunID identifies the run, matching Progress.RunID.
	RunID string

	// Iterations is the number of attempts performed.
	Iterations int

	// AcceptedIteration is the zero-based index of the accepted
	// attempt, or -1 when no attempt was accepted.
	AcceptedIteration int

	// Report is the post-acceptance validation report. Only populated
	// for accepted runs.
	Report validate.Report

	// Shortfalls lists per-heat, per-role unmet minima from the last
	// attempt that produced any, so a coordinator can decide which
	// constraint to relax.
	Shortfalls []types.RoleShortfall

	// Rejections tallies rejected attempts by reason.
	Rejections map[string]int

	// Elapsed is the wall time of the run.
	Elapsed time.Duration
}

// New creates a Scheduler for the given configuration and roster.
//
// Parameters:
//   - cfg: Run configuration (defaults applied in place)
//   - roster: Roster built with the same heat count as cfg.Heats
//   - opts: Optional dependencies (strategy, hooks, metrics, logger,
//     random source)
//
// Returns:
//   - *Scheduler: Initialized scheduler
//   - error: Configuration or roster validation error
func New(cfg *Config, roster *types.Roster, opts ...Option) (*Scheduler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	SetDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if roster == nil || len(roster.Participants) == 0 {
		return nil, ErrRosterRequired
	}
	if len(roster.Heats) != cfg.Heats {
		return nil, fmt.Errorf("%w: roster has %d heats, config wants %d",
			ErrInvalidConfig, len(roster.Heats), cfg.Heats)
	}

	options := &schedulerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.strategy == nil {
		options.strategy = strategy.NewGreedy()
	}
	if options.logger == nil {
		options.logger = logging.NewSlogDefault()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}

	h := hooks.NewNop()
	if options.hooks != nil {
		if options.hooks.OnIteration != nil {
			h.OnIteration = options.hooks.OnIteration
		}
		if options.hooks.OnHeatRejected != nil {
			h.OnHeatRejected = options.hooks.OnHeatRejected
		}
		if options.hooks.OnFinished != nil {
			h.OnFinished = options.hooks.OnFinished
		}
	}

	rng := options.rng
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			ids := make([]string, len(roster.Participants))
			for i, p := range roster.Participants {
				ids[i] = p.ID
			}
			seed = hash.RosterSeed(ids)
		}
		rng = rand.New(rand.NewSource(seed)) //nolint:gosec // G404: reproducible shuffle, not crypto
	}

	return &Scheduler{
		cfg:        *cfg,
		roster:     roster,
		rules:      types.NewRules(roster, cfg.Stations, cfg.HeatSizeParity, cfg.NoviceSizeParity, cfg.NoviceDenominator),
		strategy:   options.strategy,
		rng:        rng,
		logger:     options.logger,
		hooks:      h,
		metrics:    options.metrics,
		runID:      uuid.NewString(),
		rejections: xsync.NewMap[string, int](),
	}, nil
}

// Rules returns the acceptance rules derived from the roster and
// configuration.
func (s *Scheduler) Rules() types.Rules {
	return s.rules
}

// RejectionSummary returns the per-reason rejection tallies so far.
// Safe to call from another goroutine while Run executes.
func (s *Scheduler) RejectionSummary() map[string]int {
	summary := make(map[string]int)
	s.rejections.Range(func(reason string, count int) bool {
		summary[reason] = count

		return true
	})

	return summary
}

// Run executes the scheduling pipeline to a terminal outcome.
//
// Cancellation is cooperative: the context and the OnIteration hook
// are checked once per attempt, and a cancelled run returns a result
// with OutcomeCancelled and ErrCancelled rather than unwinding.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - *Result: Terminal state, non-nil for every outcome
//   - error: nil when accepted; otherwise wraps
//     ErrConfigurationInfeasible, ErrSchedulingExhausted, ErrCancelled,
//     or ErrInvariantViolation
func (s *Scheduler) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	if err := s.precheck(); err != nil {
		var infeasible *types.InfeasibleError
		result := &Result{
			Outcome:           types.OutcomeInfeasible,
			RunID:             s.runID,
			AcceptedIteration: -1,
			Rejections:        s.RejectionSummary(),
			Elapsed:           time.Since(start),
		}
		if errors.As(err, &infeasible) {
			result.Shortfalls = infeasible.Shortfalls
		}
		s.finish(ctx, result)

		return result, err
	}

	for iteration := 0; iteration < s.cfg.MaxIterations; iteration++ {
		progress := types.Progress{RunID: s.runID, Iteration: iteration, MaxIterations: s.cfg.MaxIterations}

		if err := ctx.Err(); err != nil {
			return s.cancelled(ctx, start, iteration, err)
		}
		if err := s.hooks.OnIteration(ctx, progress); err != nil {
			s.logger.Debug("iteration hook requested cancellation", "runID", s.runID, "iteration", iteration, "error", err)

			return s.cancelled(ctx, start, iteration, err)
		}

		s.metrics.RecordIteration()
		s.roster.Reset()
		s.partition()

		if s.evaluate(ctx, iteration) {
			return s.accept(ctx, start, iteration)
		}
	}

	result := &Result{
		Outcome:           types.OutcomeExhausted,
		RunID:             s.runID,
		Iterations:        s.cfg.MaxIterations,
		AcceptedIteration: -1,
		Shortfalls:        s.lastShortfalls,
		Rejections:        s.RejectionSummary(),
		Elapsed:           time.Since(start),
	}
	s.metrics.RecordRunOutcome(types.OutcomeExhausted, result.Elapsed.Seconds())
	s.logger.Warn("scheduling exhausted",
		"runID", s.runID, "iterations", s.cfg.MaxIterations, "rejections", result.Rejections)
	s.finish(ctx, result)

	return result, fmt.Errorf("%w after %d iterations", ErrSchedulingExhausted, s.cfg.MaxIterations)
}

// precheck verifies the roster can satisfy aggregate role minima
// before any search: each role needs qualified >= minimum × heats.
// The instructor minimum uses the mean novice count per heat, since no
// partition exists yet.
func (s *Scheduler) precheck() error {
	meanNovices := float64(s.roster.Novices()) / float64(s.cfg.Heats)
	minima := s.rules.Minima(meanNovices)

	var shortfalls []types.RoleShortfall
	for _, role := range types.Roles {
		required := minima[role] * s.cfg.Heats
		qualified := s.roster.Qualified(role)
		if qualified < required {
			shortfalls = append(shortfalls, types.RoleShortfall{
				Role:     role,
				Required: required,
				Assigned: qualified,
			})
		}
	}

	if len(shortfalls) > 0 {
		for _, sf := range shortfalls {
			s.logger.Error("not enough qualified participants",
				"runID", s.runID, "role", sf.Role, "qualified", sf.Assigned, "required", sf.Required)
		}

		return &types.InfeasibleError{Shortfalls: shortfalls}
	}

	return nil
}

// partition shuffles the categories and deals them round-robin into
// heats: shuffled category i goes to heat (i mod N) + 1.
func (s *Scheduler) partition() {
	shuffled := make([]*types.Category, len(s.roster.Categories))
	copy(shuffled, s.roster.Categories)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	for i, c := range shuffled {
		c.SetHeat(s.roster.Heats[i%len(s.roster.Heats)])
	}
}

// evaluate checks every heat's balance and role feasibility for the
// current partition. Returns true when the attempt is accepted.
func (s *Scheduler) evaluate(ctx context.Context, iteration int) bool {
	var attemptShortfalls []types.RoleShortfall

	for _, h := range s.roster.Heats {
		if !s.rules.ValidSize(h) {
			s.reject(ctx, iteration, h.Number, "heat size out of bounds")

			return false
		}
		if !s.rules.ValidNoviceCount(h) {
			s.reject(ctx, iteration, h.Number, "novice count out of bounds")

			return false
		}

		minima := s.rules.HeatMinima(h)

		// Qualified counts bound the strategy from above; checking them
		// first gives a cheaper rejection and a clearer reason than a
		// failed assignment.
		feasible := true
		for _, role := range types.Roles {
			qualified := h.Qualified(role)
			if qualified < minima[role] {
				attemptShortfalls = append(attemptShortfalls, types.RoleShortfall{
					Heat:     h.Number,
					Role:     role,
					Required: minima[role],
					Assigned: qualified,
				})
				s.reject(ctx, iteration, h.Number, fmt.Sprintf("insufficient qualified %s", role))
				feasible = false

				break
			}
		}
		if !feasible {
			s.lastShortfalls = attemptShortfalls

			return false
		}

		if err := s.strategy.Assign(h, minima); err != nil {
			var unfilled *types.UnfilledRoleError
			if errors.As(err, &unfilled) {
				attemptShortfalls = append(attemptShortfalls, unfilled.Shortfall)
				s.lastShortfalls = attemptShortfalls
				s.reject(ctx, iteration, h.Number, fmt.Sprintf("unable to assign %s", unfilled.Shortfall.Role))
			} else {
				s.reject(ctx, iteration, h.Number, err.Error())
			}

			return false
		}
	}

	return true
}

// reject records a rejected attempt: tally, metric, hook.
func (s *Scheduler) reject(ctx context.Context, iteration, heat int, reason string) {
	count, _ := s.rejections.Load(reason)
	s.rejections.Store(reason, count+1)
	s.metrics.RecordRejection(reason)

	if err := s.hooks.OnHeatRejected(ctx, iteration, heat, reason); err != nil {
		s.logger.Debug("heat rejection hook failed", "runID", s.runID, "error", err)
	}
}

// accept finalizes an accepted attempt: station assignment per heat,
// post-acceptance validation, metrics, and the terminal hook.
func (s *Scheduler) accept(ctx context.Context, start time.Time, iteration int) (*Result, error) {
	for _, h := range s.roster.Heats {
		stats := stations.Assign(h, s.cfg.Stations)
		s.metrics.RecordCategorySplits(h.Number, stats.CategorySplits)
		s.metrics.RecordCaptainSwaps(h.Number, stats.CaptainSwaps)
		s.metrics.RecordHeatBalance(h.Number, h.Size(), h.Novices())
	}

	report := validate.Event(s.roster, s.rules)

	result := &Result{
		Outcome:           types.OutcomeAccepted,
		RunID:             s.runID,
		Iterations:        iteration + 1,
		AcceptedIteration: iteration,
		Report:            report,
		Rejections:        s.RejectionSummary(),
		Elapsed:           time.Since(start),
	}

	if !report.Valid() {
		// Unreachable when the pipeline is correct: the accept check
		// and the validator apply the same rules.
		result.Shortfalls = report.Shortfalls()

		return result, fmt.Errorf("%w: accepted schedule failed validation", ErrInvariantViolation)
	}

	s.metrics.RecordRunOutcome(types.OutcomeAccepted, result.Elapsed.Seconds())
	s.metrics.RecordAcceptedIteration(iteration)
	s.logger.Info("schedule accepted",
		"runID", s.runID, "iteration", iteration, "elapsed", result.Elapsed)
	s.finish(ctx, result)

	return result, nil
}

// cancelled produces the terminal result for a cancellation request.
func (s *Scheduler) cancelled(ctx context.Context, start time.Time, iteration int, cause error) (*Result, error) {
	result := &Result{
		Outcome:           types.OutcomeCancelled,
		RunID:             s.runID,
		Iterations:        iteration,
		AcceptedIteration: -1,
		Shortfalls:        s.lastShortfalls,
		Rejections:        s.RejectionSummary(),
		Elapsed:           time.Since(start),
	}
	s.metrics.RecordRunOutcome(types.OutcomeCancelled, result.Elapsed.Seconds())
	s.logger.Info("scheduling cancelled", "runID", s.runID, "iteration", iteration)
	s.finish(ctx, result)

	return result, fmt.Errorf("%w: %v", ErrCancelled, cause)
}

// finish invokes the terminal hook exactly once per run.
func (s *Scheduler) finish(ctx context.Context, result *Result) {
	progress := types.Progress{
		RunID:         s.runID,
		Iteration:     result.Iterations,
		MaxIterations: s.cfg.MaxIterations,
	}
	if err := s.hooks.OnFinished(ctx, result.Outcome, progress); err != nil {
		s.logger.Debug("finish hook failed", "runID", s.runID, "error", err)
	}
}
