//
// Copyright (C) 2026 fmbench authors.  All rights reserved.
//
// fmbench is licensed under the Apache License Version 2.0.
//
//

package evalresult

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatsClose(t *testing.T) {
	tests := []struct {
		name string
		a    float64
		b    float64
		want bool
	}{
		{name: "exact", a: 0.5, b: 0.5, want: true},
		{name: "within relative tolerance", a: 1.0, b: 1.0 + 1e-10, want: true},
		{name: "outside relative tolerance", a: 1.0, b: 1.0 + 1e-8, want: false},
		{name: "both zero", a: 0, b: 0, want: true},
		{name: "zero vs tiny", a: 0, b: 1e-300, want: false},
		{name: "large magnitudes", a: 1e15, b: 1e15 + 1, want: true},
		{name: "opposite signs", a: 0.5, b: -0.5, want: false},
		{name: "equal infinities", a: math.Inf(1), b: math.Inf(1), want: true},
		{name: "opposite infinities", a: math.Inf(1), b: math.Inf(-1), want: false},
		{name: "nan never equal", a: math.NaN(), b: math.NaN(), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, floatsClose(tt.a, tt.b))
			assert.Equal(t, tt.want, floatsClose(tt.b, tt.a))
		})
	}
}

func TestEqualNamedSets(t *testing.T) {
	name := func(s EvalScore) string { return s.Name }
	tests := []struct {
		name string
		a    []EvalScore
		b    []EvalScore
		want bool
	}{
		{name: "both nil", a: nil, b: nil, want: true},
		{name: "nil vs empty", a: nil, b: []EvalScore{}, want: true},
		{
			name: "empty vs populated",
			a:    []EvalScore{},
			b:    []EvalScore{{Name: "acc", Value: 0.8}},
			want: false,
		},
		{
			name: "same order",
			a:    []EvalScore{{Name: "acc", Value: 0.8}, {Name: "f1", Value: 0.5}},
			b:    []EvalScore{{Name: "acc", Value: 0.8}, {Name: "f1", Value: 0.5}},
			want: true,
		},
		{
			name: "reversed order",
			a:    []EvalScore{{Name: "acc", Value: 0.8}, {Name: "f1", Value: 0.5}},
			b:    []EvalScore{{Name: "f1", Value: 0.5}, {Name: "acc", Value: 0.8}},
			want: true,
		},
		{
			name: "cardinality mismatch",
			a:    []EvalScore{{Name: "acc", Value: 0.8}, {Name: "f1", Value: 0.5}},
			b:    []EvalScore{{Name: "acc", Value: 0.8}},
			want: false,
		},
		{
			name: "same names different values",
			a:    []EvalScore{{Name: "acc", Value: 0.8}},
			b:    []EvalScore{{Name: "acc", Value: 0.2}},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, equalNamedSets(tt.a, tt.b, name, EvalScore.Equal))
			assert.Equal(t, tt.want, equalNamedSets(tt.b, tt.a, name, EvalScore.Equal))
		})
	}
}

func TestEqualNamedSetsLeavesInputsUnsorted(t *testing.T) {
	name := func(s EvalScore) string { return s.Name }
	a := []EvalScore{{Name: "f1", Value: 0.5}, {Name: "acc", Value: 0.8}}
	b := []EvalScore{{Name: "acc", Value: 0.8}, {Name: "f1", Value: 0.5}}

	assert.True(t, equalNamedSets(a, b, name, EvalScore.Equal))
	assert.Equal(t, "f1", a[0].Name)
	assert.Equal(t, "acc", b[0].Name)
}
