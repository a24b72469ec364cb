//
// Copyright (C) 2026 fmbench authors.  All rights reserved.
//
// fmbench is licensed under the Apache License Version 2.0.
//
//

package fmbench

import "strings"

// EvalAlgorithm identifies a built-in evaluation algorithm.
type EvalAlgorithm string

const (
	// AlgorithmPromptStereotyping measures the probability bias between paired
	// more- and less-stereotypical inputs.
	AlgorithmPromptStereotyping EvalAlgorithm = "prompt_stereotyping"
	// AlgorithmFactualKnowledge measures recall of real-world facts.
	AlgorithmFactualKnowledge EvalAlgorithm = "factual_knowledge"
	// AlgorithmToxicity measures toxic content in model output.
	AlgorithmToxicity EvalAlgorithm = "toxicity"
	// AlgorithmSemanticRobustness measures output stability under semantic
	// preserving input perturbations.
	AlgorithmSemanticRobustness EvalAlgorithm = "semantic_robustness"
	// AlgorithmAccuracy measures general task accuracy.
	AlgorithmAccuracy EvalAlgorithm = "accuracy"
	// AlgorithmQAAccuracy measures question answering accuracy.
	AlgorithmQAAccuracy EvalAlgorithm = "qa_accuracy"
	// AlgorithmSummarizationAccuracy measures summarization quality.
	AlgorithmSummarizationAccuracy EvalAlgorithm = "summarization_accuracy"
	// AlgorithmClassificationAccuracy measures classification accuracy.
	AlgorithmClassificationAccuracy EvalAlgorithm = "classification_accuracy"
)

// Algorithms returns all built-in evaluation algorithms.
func Algorithms() []EvalAlgorithm {
	return []EvalAlgorithm{
		AlgorithmPromptStereotyping,
		AlgorithmFactualKnowledge,
		AlgorithmToxicity,
		AlgorithmSemanticRobustness,
		AlgorithmAccuracy,
		AlgorithmQAAccuracy,
		AlgorithmSummarizationAccuracy,
		AlgorithmClassificationAccuracy,
	}
}

// String returns a prettified name with underscores replaced by spaces.
func (a EvalAlgorithm) String() string {
	return strings.ReplaceAll(string(a), "_", " ")
}

// ModelTask identifies the task a model under evaluation performs.
type ModelTask string

const (
	// TaskNone marks task-agnostic evaluations.
	TaskNone ModelTask = "no_task"
	// TaskClassification marks classification models.
	TaskClassification ModelTask = "classification"
	// TaskQuestionAnswering marks question answering models.
	TaskQuestionAnswering ModelTask = "question_answering"
	// TaskSummarization marks summarization models.
	TaskSummarization ModelTask = "summarization"
)

// Tasks returns all supported model tasks.
func Tasks() []ModelTask {
	return []ModelTask{
		TaskNone,
		TaskClassification,
		TaskQuestionAnswering,
		TaskSummarization,
	}
}
