//
// Copyright (C) 2026 fmbench authors.  All rights reserved.
//
// fmbench is licensed under the Apache License Version 2.0.
//
//

// Package evaluator defines the boundary between the result data model and
// the algorithm implementations that produce it. Implementations live
// outside this module; this package only fixes the contract they fulfil and
// provides a registry for looking them up by algorithm.
package evaluator

import (
	"context"

	"github.com/fmbench/fmbench"
	"github.com/fmbench/fmbench/dataconfig"
	"github.com/fmbench/fmbench/evalresult"
)

// Request carries the inputs an evaluation run needs beyond the algorithm
// itself. A nil DatasetConfig means the algorithm runs over its compatible
// built-in datasets; an empty PromptTemplate means the algorithm uses the
// registry default for each dataset.
type Request struct {
	// DatasetConfig selects a custom dataset instead of the built-ins.
	DatasetConfig *dataconfig.DataConfig
	// PromptTemplate overrides the default prompt template.
	PromptTemplate string
}

// Evaluator is implemented by evaluation algorithms. An implementation
// aggregates per-record metric values to dataset and category granularity
// and packages them into one EvalOutput per evaluated dataset; the
// evalresult constructors check the consistency of that aggregation.
type Evaluator interface {
	// Name returns the algorithm this evaluator implements.
	Name() fmbench.EvalAlgorithm
	// Evaluate runs the algorithm and returns one output per evaluated
	// dataset. Cancellation and timeouts are honored via ctx.
	Evaluate(ctx context.Context, req *Request) ([]*evalresult.EvalOutput, error)
}
