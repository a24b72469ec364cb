//
// Copyright (C) 2026 fmbench authors.  All rights reserved.
//
// fmbench is licensed under the Apache License Version 2.0.
//
//

// Package fmbench defines the identity types shared across the foundation
// model evaluation library: the built-in evaluation algorithms and the model
// tasks they apply to.
//
// The result data model lives in the evalresult package, the static tables
// binding algorithms to built-in datasets live in the registry package, and
// the boundary contract for algorithm implementations lives in the evaluator
// package.
package fmbench
