// Package engine provides the one-shot batch pipeline.
// The CLI is a thin wrapper around this engine.
package engine

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"slcsp/core/geo"
	"slcsp/core/input"
	"slcsp/core/rating"
	"slcsp/core/report"
	"slcsp/core/types"
	"slcsp/internal/logging"
)

// Config configures a pipeline run
type Config struct {
	// RequestFile is the request-list file name inside the data dir.
	// The results replace this file.
	RequestFile string

	// PlansFile is the plan catalog file name
	PlansFile string

	// ZipsFile is the zip mapping file name
	ZipsFile string

	// MetalLevel is the plan tier to rank (case-sensitive)
	MetalLevel string

	// DryRun computes everything but skips the final file replacement
	DryRun bool
}

// DefaultConfig returns the stock file layout
func DefaultConfig() Config {
	return Config{
		RequestFile: "slcsp.csv",
		PlansFile:   "plans.csv",
		ZipsFile:    "zips.csv",
		MetalLevel:  "Silver",
	}
}

// Result is the run summary returned to callers
type Result struct {
	// RunID uniquely identifies this run
	RunID uuid.UUID

	// RequestedZips is the number of request rows (duplicates included)
	RequestedZips int

	// PricedAreas is the number of rate areas with a determined value
	PricedAreas int

	// ResolvedZips is the number of zips that resolved to one area
	ResolvedZips int

	// BlankRows is the number of output rows with no rate
	BlankRows int

	// ZipRates is the final zip-to-premium index
	ZipRates types.ZipRateIndex

	// Rows is the ordered output, one per request entry
	Rows []report.Row

	// Duration is the total wall-clock time of the run
	Duration time.Duration
}

// Engine runs the load -> aggregate -> resolve -> compose -> write
// sequence. Stages are strictly ordered and each fully materializes
// before the next begins.
type Engine struct {
	config Config
}

// New creates an engine
func New(config Config) *Engine {
	return &Engine{config: config}
}

// Run executes the pipeline over the data directory. Any file access
// or parse failure aborts the whole run: the output overwrites the
// only copy of the request list, so partial output is never written.
func (e *Engine) Run(ctx context.Context, dir string) (*Result, error) {
	start := time.Now()
	result := &Result{RunID: uuid.New()}
	log := logging.With(zap.String("run_id", result.RunID.String()))

	requestPath := filepath.Join(dir, e.config.RequestFile)

	stage := time.Now()
	request, err := input.LoadRequestList(requestPath)
	if err != nil {
		return nil, err
	}
	result.RequestedZips = len(request)
	log.Info("read request list",
		zap.Int("zipcodes", len(request)),
		zap.Duration("took", time.Since(stage)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stage = time.Now()
	plans, err := input.LoadPlans(filepath.Join(dir, e.config.PlansFile))
	if err != nil {
		return nil, err
	}
	rates := rating.SecondLowest(plans, e.config.MetalLevel)
	result.PricedAreas = len(rates)
	log.Info("aggregated rate areas",
		zap.Int("plans", len(plans)),
		zap.Int("rate_areas", len(rates)),
		zap.Duration("took", time.Since(stage)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stage = time.Now()
	zipAreas, err := input.LoadZipAreas(filepath.Join(dir, e.config.ZipsFile))
	if err != nil {
		return nil, err
	}
	resolved := geo.Resolve(zipAreas, request.Set(), rates)
	result.ResolvedZips = len(resolved)
	log.Info("resolved zip codes",
		zap.Int("zip_rows", len(zipAreas)),
		zap.Int("resolved", len(resolved)),
		zap.Duration("took", time.Since(stage)))

	rows := report.Compose(request, resolved, rates)
	result.Rows = rows
	result.BlankRows = report.Blanks(rows)

	zipRates := make(types.ZipRateIndex, len(resolved))
	for zip, area := range resolved {
		if premium, ok := rates[area]; ok {
			zipRates[zip] = premium
		}
	}
	result.ZipRates = zipRates

	if !e.config.DryRun {
		stage = time.Now()
		if err := report.ReplaceFile(requestPath, rows); err != nil {
			return nil, err
		}
		log.Info("wrote results",
			zap.String("file", requestPath),
			zap.Int("rows", len(rows)),
			zap.Int("blank", result.BlankRows),
			zap.Duration("took", time.Since(stage)))
	}

	result.Duration = time.Since(start)
	return result, nil
}

// OrderInvariant reports whether rows mirror the request list: same
// count, same zips, same order.
func OrderInvariant(request types.RequestList, rows []report.Row) bool {
	if len(request) != len(rows) {
		return false
	}
	for i, zip := range request {
		if rows[i].Zip != zip {
			return false
		}
	}
	return true
}
