//
// Copyright (C) 2026 fmbench authors.  All rights reserved.
//
// fmbench is licensed under the Apache License Version 2.0.
//
//

// Package registry holds the static tables binding built-in evaluation
// algorithms to compatible datasets, default prompt templates, and dataset
// loading configurations. The tables are pure configuration data consumed by
// the evaluation layer; lookups return copies so callers cannot mutate them.
package registry

import (
	"fmt"
	"slices"

	"github.com/fmbench/fmbench"
	"github.com/fmbench/fmbench/dataconfig"
)

// Built-in dataset names.
const (
	DatasetTREX                  = "trex"
	DatasetBoolQ                 = "boolq"
	DatasetTriviaQA              = "trivia_qa"
	DatasetNaturalQuestions      = "natural_questions"
	DatasetCrowSPairs            = "crow-pairs"
	DatasetCNNDailyMail          = "cnn_daily_mail"
	DatasetXSUM                  = "xsum"
	DatasetIMDBMovieReviews      = "imdb_movie_reviews"
	DatasetWomensClothingReviews = "womens_clothing_ecommerce_reviews"
)

// taskAlgorithms maps each model task to the algorithms that apply to it.
// Representational only; TaskNone carries the task-agnostic algorithms.
var taskAlgorithms = map[fmbench.ModelTask][]fmbench.EvalAlgorithm{
	fmbench.TaskNone: {
		fmbench.AlgorithmPromptStereotyping,
		fmbench.AlgorithmFactualKnowledge,
		fmbench.AlgorithmToxicity,
		fmbench.AlgorithmSemanticRobustness,
	},
	fmbench.TaskClassification: {
		fmbench.AlgorithmSemanticRobustness,
	},
	fmbench.TaskQuestionAnswering: {
		fmbench.AlgorithmToxicity,
		fmbench.AlgorithmSemanticRobustness,
	},
	fmbench.TaskSummarization: {
		fmbench.AlgorithmToxicity,
		fmbench.AlgorithmSemanticRobustness,
	},
}

// builtinDatasets maps each evaluation algorithm to its compatible built-in
// datasets.
var builtinDatasets = map[fmbench.EvalAlgorithm][]string{
	fmbench.AlgorithmFactualKnowledge:   {DatasetTREX},
	fmbench.AlgorithmQAAccuracy:         {DatasetBoolQ, DatasetTriviaQA, DatasetNaturalQuestions},
	fmbench.AlgorithmPromptStereotyping: {DatasetCrowSPairs},
	fmbench.AlgorithmSummarizationAccuracy: {
		DatasetCNNDailyMail,
		DatasetXSUM,
	},
	fmbench.AlgorithmClassificationAccuracy: {DatasetIMDBMovieReviews},
}

// promptTemplates maps (algorithm, built-in dataset) pairs to the default
// template used to synthesize prompts. Pairs without an entry consume the
// model output already present in the dataset.
var promptTemplates = map[fmbench.EvalAlgorithm]map[string]string{
	fmbench.AlgorithmFactualKnowledge: {
		DatasetTREX: "Answer: $feature",
	},
	fmbench.AlgorithmQAAccuracy: {
		DatasetBoolQ:            "$feature",
		DatasetTriviaQA:         "$feature",
		DatasetNaturalQuestions: "$feature",
	},
	fmbench.AlgorithmPromptStereotyping: {
		DatasetCrowSPairs: "$feature",
	},
	fmbench.AlgorithmSummarizationAccuracy: {
		DatasetCNNDailyMail: "Summarise: $feature",
		DatasetXSUM:         "Summarise: $feature",
	},
	fmbench.AlgorithmClassificationAccuracy: {
		DatasetIMDBMovieReviews:      "$feature",
		DatasetWomensClothingReviews: "$feature",
	},
}

// datasetConfigs maps each built-in dataset to its loading configuration.
var datasetConfigs = map[string]dataconfig.DataConfig{
	DatasetTREX: {
		DatasetName:          DatasetTREX,
		DatasetURI:           "s3://fmbench/datasets/trex/trex.jsonl",
		DatasetMIMEType:      dataconfig.MIMETypeJSONLines,
		ModelInputLocation:   "question",
		TargetOutputLocation: "answers",
		CategoryLocation:     "knowledge_category",
	},
	DatasetBoolQ: {
		DatasetName:          DatasetBoolQ,
		DatasetURI:           "s3://fmbench/datasets/boolq/boolq.jsonl",
		DatasetMIMEType:      dataconfig.MIMETypeJSONLines,
		ModelInputLocation:   "question",
		TargetOutputLocation: "answer",
	},
	DatasetTriviaQA: {
		DatasetName:          DatasetTriviaQA,
		DatasetURI:           "s3://fmbench/datasets/triviaQA/triviaQA.jsonl",
		DatasetMIMEType:      dataconfig.MIMETypeJSONLines,
		ModelInputLocation:   "question",
		TargetOutputLocation: "answer",
	},
	DatasetNaturalQuestions: {
		DatasetName:          DatasetNaturalQuestions,
		DatasetURI:           "s3://fmbench/datasets/natural_questions/natural_questions.jsonl",
		DatasetMIMEType:      dataconfig.MIMETypeJSONLines,
		ModelInputLocation:   "question",
		TargetOutputLocation: "answer",
	},
	DatasetCrowSPairs: {
		DatasetName:           DatasetCrowSPairs,
		DatasetURI:            "s3://fmbench/datasets/crow-pairs/crow-pairs.jsonl",
		DatasetMIMEType:       dataconfig.MIMETypeJSONLines,
		SentMoreInputLocation: "sent_more",
		SentLessInputLocation: "sent_less",
		CategoryLocation:      "bias_type",
	},
	DatasetCNNDailyMail: {
		DatasetName:          DatasetCNNDailyMail,
		DatasetURI:           "s3://fmbench/datasets/cnn_dailymail/cnn_dailymail.jsonl",
		DatasetMIMEType:      dataconfig.MIMETypeJSONLines,
		ModelInputLocation:   "document",
		TargetOutputLocation: "summary",
	},
	DatasetXSUM: {
		DatasetName:          DatasetXSUM,
		DatasetURI:           "s3://fmbench/datasets/xsum/xsum.jsonl",
		DatasetMIMEType:      dataconfig.MIMETypeJSONLines,
		ModelInputLocation:   "document",
		TargetOutputLocation: "summary",
	},
	DatasetIMDBMovieReviews: {
		DatasetName:          DatasetIMDBMovieReviews,
		DatasetURI:           "s3://fmbench/datasets/imdb_reviews/imdb_movie_reviews.jsonl",
		DatasetMIMEType:      dataconfig.MIMETypeJSONLines,
		ModelInputLocation:   "text",
		TargetOutputLocation: "sentiment",
	},
	DatasetWomensClothingReviews: {
		DatasetName:          DatasetWomensClothingReviews,
		DatasetURI:           "s3://fmbench/datasets/womens_clothing/womens_clothing_ecommerce_reviews.jsonl",
		DatasetMIMEType:      dataconfig.MIMETypeJSONLines,
		ModelInputLocation:   "Review Text",
		TargetOutputLocation: "Recommended IND",
		CategoryLocation:     "Class Name",
	},
}

// AlgorithmsForTask returns the algorithms that apply to the given model
// task.
func AlgorithmsForTask(task fmbench.ModelTask) ([]fmbench.EvalAlgorithm, error) {
	algorithms, ok := taskAlgorithms[task]
	if !ok {
		return nil, fmt.Errorf("unknown model task %q", string(task))
	}
	return slices.Clone(algorithms), nil
}

// BuiltinDatasets returns the built-in datasets compatible with the given
// algorithm.
func BuiltinDatasets(algorithm fmbench.EvalAlgorithm) ([]string, error) {
	datasets, ok := builtinDatasets[algorithm]
	if !ok {
		return nil, fmt.Errorf("no built-in datasets for algorithm %q", string(algorithm))
	}
	return slices.Clone(datasets), nil
}

// DefaultPromptTemplate returns the default prompt template for the given
// (algorithm, built-in dataset) pair. ok is false when no prompt needs
// synthesizing because the dataset already carries model output.
func DefaultPromptTemplate(algorithm fmbench.EvalAlgorithm, dataset string) (template string, ok bool) {
	template, ok = promptTemplates[algorithm][dataset]
	return template, ok
}

// DatasetConfig returns the loading configuration for a built-in dataset.
func DatasetConfig(dataset string) (dataconfig.DataConfig, error) {
	cfg, ok := datasetConfigs[dataset]
	if !ok {
		return dataconfig.DataConfig{}, fmt.Errorf("no config for dataset %q", dataset)
	}
	return cfg, nil
}
