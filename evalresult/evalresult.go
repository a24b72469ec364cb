//
// Copyright (C) 2026 fmbench authors.  All rights reserved.
//
// fmbench is licensed under the Apache License Version 2.0.
//
//

// Package evalresult provides the result data model for foundation model
// evaluations: per-metric scores, per-category aggregates, and the full
// output of running an evaluation algorithm over a dataset.
//
// All types in this package are value carriers constructed once by an
// evaluation algorithm and never mutated afterwards. Cross-structure
// consistency between dataset-level and category-level scores is checked a
// single time, at EvalOutput construction.
package evalresult

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hashicorp/go-multierror"
)

// ErrInvalidEvalOutput is wrapped by every construction error returned by
// New. It signals an aggregation bug in the producing algorithm, not a
// recoverable runtime condition.
var ErrInvalidEvalOutput = errors.New("invalid eval output")

// EvalScore is the aggregated value computed for a single metric.
type EvalScore struct {
	// Name identifies the metric, e.g. "accuracy" or "toxicity".
	Name string `json:"name"`
	// Value is the aggregated score. Depending on the metric it may be
	// negative or exceed 1.
	Value float64 `json:"value"`
}

// Equal reports whether both scores carry the same metric name and values
// that are equal within floating-point tolerance (see floatsClose). It
// tolerates the accumulation differences that show up when the same dataset
// is re-evaluated with a different iteration order.
func (s EvalScore) Equal(other EvalScore) bool {
	return s.Name == other.Name && floatsClose(s.Value, other.Value)
}

// CategoryScore groups the aggregated scores computed across a single
// category of the dataset, e.g. one knowledge domain or bias type.
type CategoryScore struct {
	// Name is the category label.
	Name string `json:"name"`
	// Scores holds one entry per metric. Names must be unique; this is
	// enforced when the owning EvalOutput is constructed.
	Scores []EvalScore `json:"scores"`
}

// Equal reports whether both categories carry the same label and the same
// scores. Scores are compared as sets keyed by metric name, so the order
// they were accumulated in does not matter.
func (c CategoryScore) Equal(other CategoryScore) bool {
	return c.Name == other.Name &&
		equalNamedSets(c.Scores, other.Scores, scoreName, EvalScore.Equal)
}

// EvalOutput is the complete result of running one evaluation algorithm over
// one dataset. It is the unit of exchange between the evaluation layer and
// report-writing or comparison consumers, and must not be mutated after New
// returns it.
type EvalOutput struct {
	// EvalName names the evaluation algorithm that produced this output.
	EvalName string `json:"eval_name"`
	// DatasetName names the evaluated dataset.
	DatasetName string `json:"dataset_name"`
	// DatasetScores holds the dataset-wide aggregate, one entry per metric.
	DatasetScores []EvalScore `json:"dataset_scores"`
	// PromptTemplate is the template used to compose prompts. Empty when the
	// dataset already carried model output.
	PromptTemplate string `json:"prompt_template,omitempty"`
	// CategoryScores holds per-category aggregates. Empty when the dataset
	// has no category column.
	CategoryScores []CategoryScore `json:"category_scores,omitempty"`
	// OutputPath locates the per-record detail file written by the report
	// layer. Opaque to this package.
	OutputPath string `json:"output_path,omitempty"`
}

// Option configures the optional fields of an EvalOutput under construction.
type Option func(*EvalOutput)

// WithPromptTemplate sets the prompt template used during the evaluation.
func WithPromptTemplate(template string) Option {
	return func(o *EvalOutput) {
		o.PromptTemplate = template
	}
}

// WithCategoryScores sets the per-category aggregates.
func WithCategoryScores(scores []CategoryScore) Option {
	return func(o *EvalOutput) {
		o.CategoryScores = cloneCategories(scores)
	}
}

// WithOutputPath sets the location of the per-record detail file.
func WithOutputPath(path string) Option {
	return func(o *EvalOutput) {
		o.OutputPath = path
	}
}

// New constructs an EvalOutput and validates that any category aggregates
// are consistent with the dataset-wide aggregate: every category must report
// exactly the metrics in datasetScores, no more, no fewer, and metric names
// must be unique on both sides. A nil and an empty CategoryScores slice are
// the same state, and dataset-only outputs skip validation entirely.
//
// Score slices are copied, so callers may reuse their inputs afterwards.
// The returned error wraps ErrInvalidEvalOutput and lists every violation
// found, not just the first.
func New(evalName, datasetName string, datasetScores []EvalScore, opt ...Option) (*EvalOutput, error) {
	out := &EvalOutput{
		EvalName:      evalName,
		DatasetName:   datasetName,
		DatasetScores: slices.Clone(datasetScores),
	}
	for _, o := range opt {
		o(out)
	}
	if err := out.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEvalOutput, err)
	}
	return out, nil
}

// Equal reports whether both outputs describe the same evaluation result.
// Provenance fields compare exactly; score collections compare as sets keyed
// by name, using the tolerant score comparison, with nil and empty
// collections treated as the same state. Equal never panics and a malformed
// comparison simply yields false.
func (o *EvalOutput) Equal(other *EvalOutput) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.EvalName == other.EvalName &&
		o.DatasetName == other.DatasetName &&
		o.PromptTemplate == other.PromptTemplate &&
		equalNamedSets(o.DatasetScores, other.DatasetScores, scoreName, EvalScore.Equal) &&
		equalNamedSets(o.CategoryScores, other.CategoryScores, categoryName, CategoryScore.Equal)
}

// validate checks the category/dataset consistency invariants. It runs only
// when category scores are present: dataset-only outputs are structurally
// well-formed by definition.
func (o *EvalOutput) validate() error {
	if len(o.CategoryScores) == 0 {
		return nil
	}
	var errs error
	datasetNames := make(map[string]struct{}, len(o.DatasetScores))
	for _, score := range o.DatasetScores {
		if _, dup := datasetNames[score.Name]; dup {
			errs = multierror.Append(errs, fmt.Errorf(
				"duplicate metric %q in dataset scores", score.Name))
			continue
		}
		datasetNames[score.Name] = struct{}{}
	}
	for _, cat := range o.CategoryScores {
		if len(cat.Scores) != len(o.DatasetScores) {
			errs = multierror.Append(errs, fmt.Errorf(
				"category %q reports %d metrics, dataset reports %d",
				cat.Name, len(cat.Scores), len(o.DatasetScores)))
		}
		seen := make(map[string]struct{}, len(cat.Scores))
		for _, score := range cat.Scores {
			if _, dup := seen[score.Name]; dup {
				errs = multierror.Append(errs, fmt.Errorf(
					"duplicate metric %q in category %q", score.Name, cat.Name))
				continue
			}
			seen[score.Name] = struct{}{}
			if _, ok := datasetNames[score.Name]; !ok {
				errs = multierror.Append(errs, fmt.Errorf(
					"category %q reports metric %q missing from dataset scores",
					cat.Name, score.Name))
			}
		}
	}
	return errs
}

func cloneCategories(categories []CategoryScore) []CategoryScore {
	cloned := slices.Clone(categories)
	for i := range cloned {
		cloned[i].Scores = slices.Clone(cloned[i].Scores)
	}
	return cloned
}

func scoreName(s EvalScore) string { return s.Name }

func categoryName(c CategoryScore) string { return c.Name }
