//
// Copyright (C) 2026 fmbench authors.  All rights reserved.
//
// fmbench is licensed under the Apache License Version 2.0.
//
//

package fmbench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvalAlgorithmString(t *testing.T) {
	assert.Equal(t, "prompt stereotyping", AlgorithmPromptStereotyping.String())
	assert.Equal(t, "qa accuracy", AlgorithmQAAccuracy.String())
	assert.Equal(t, "toxicity", AlgorithmToxicity.String())
}

func TestAlgorithmsUnique(t *testing.T) {
	seen := make(map[EvalAlgorithm]struct{})
	for _, algorithm := range Algorithms() {
		_, dup := seen[algorithm]
		assert.False(t, dup, "duplicate algorithm %s", algorithm)
		seen[algorithm] = struct{}{}
	}
	assert.Len(t, seen, 8)
}

func TestTasks(t *testing.T) {
	assert.Contains(t, Tasks(), TaskNone)
	assert.Len(t, Tasks(), 4)
}
