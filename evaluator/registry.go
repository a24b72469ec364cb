//
// Copyright (C) 2026 fmbench authors.  All rights reserved.
//
// fmbench is licensed under the Apache License Version 2.0.
//
//

package evaluator

import (
	"fmt"
	"slices"
	"sync"

	"github.com/fmbench/fmbench"
	"github.com/fmbench/fmbench/log"
)

// Registry manages the registration and retrieval of evaluators by
// algorithm. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	evaluators map[fmbench.EvalAlgorithm]Evaluator
}

// NewRegistry creates an empty evaluator registry.
func NewRegistry() *Registry {
	return &Registry{
		evaluators: make(map[fmbench.EvalAlgorithm]Evaluator),
	}
}

// Register adds an evaluator to the registry. Registering the same algorithm
// twice is an error.
func (r *Registry) Register(evaluator Evaluator) error {
	if evaluator == nil {
		return fmt.Errorf("evaluator is nil")
	}
	name := evaluator.Name()
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.evaluators[name]; exists {
		return fmt.Errorf("evaluator already registered for algorithm %q", string(name))
	}
	r.evaluators[name] = evaluator
	log.Debugf("registered evaluator for algorithm %q", string(name))
	return nil
}

// Get retrieves the evaluator registered for the given algorithm.
func (r *Registry) Get(algorithm fmbench.EvalAlgorithm) (Evaluator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	evaluator, exists := r.evaluators[algorithm]
	if !exists {
		return nil, fmt.Errorf("no evaluator registered for algorithm %q", string(algorithm))
	}
	return evaluator, nil
}

// List returns the algorithms with a registered evaluator, sorted by name.
func (r *Registry) List() []fmbench.EvalAlgorithm {
	r.mu.RLock()
	defer r.mu.RUnlock()
	algorithms := make([]fmbench.EvalAlgorithm, 0, len(r.evaluators))
	for algorithm := range r.evaluators {
		algorithms = append(algorithms, algorithm)
	}
	slices.Sort(algorithms)
	return algorithms
}

// Unregister removes the evaluator registered for the given algorithm, if
// any.
func (r *Registry) Unregister(algorithm fmbench.EvalAlgorithm) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.evaluators, algorithm)
}
