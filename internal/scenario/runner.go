package scenario

import (
	"context"
	"time"

	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Outcome is the result of one scenario together with its diagnostics.
type Outcome struct {
	Scenario Scenario
	Result   Result
	Err      error
	Bucket   *schema.AttachmentsBucket
	Duration time.Duration
}

func (o Outcome) Passed() bool {
	return o.Err == nil
}

type reporter interface {
	Write(Outcome) error
}

type Runner struct {
	workflow *Workflow
	workers  int
	reporter reporter
	logger   *zerolog.Logger
}

func NewRunner(workflow *Workflow, workers int, reporter reporter, logger *zerolog.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}

	return &Runner{
		workflow: workflow,
		workers:  workers,
		reporter: reporter,
		logger:   logger,
	}
}

// RunAll runs the scenarios concurrently, at most workers at a time. A failing
// scenario does not stop the others; outcomes keep the order of scenarios.
func (r *Runner) RunAll(ctx context.Context, scenarios []Scenario) []Outcome {
	outcomes := make([]Outcome, len(scenarios))

	var group errgroup.Group
	group.SetLimit(r.workers)

	for i, s := range scenarios {
		i, s := i, s

		group.Go(func() error {
			outcomes[i] = r.run(ctx, s)
			return nil
		})
	}

	_ = group.Wait()

	return outcomes
}

func (r *Runner) run(ctx context.Context, s Scenario) Outcome {
	logger := r.logger.
		With().
		Str("scenario", s.Name).
		Str("platform", s.Platform).
		Str("runId", uuid.New().String()).
		Logger()

	bucket := schema.NewAttachmentsBucket()
	startTime := time.Now()

	result, err := r.workflow.Run(ctx, s, bucket, &logger)

	outcome := Outcome{
		Scenario: s,
		Result:   result,
		Err:      err,
		Bucket:   bucket,
		Duration: time.Since(startTime),
	}

	if err != nil {
		logger.Error().Err(err).Msg("Scenario failed")
	} else {
		logger.Info().Float64("duration", outcome.Duration.Seconds()).Msg("Scenario passed")
	}

	if r.reporter != nil {
		if reportErr := r.reporter.Write(outcome); reportErr != nil {
			logger.Warn().Err(reportErr).Msg("Unable to write scenario report")
		}
	}

	return outcome
}
