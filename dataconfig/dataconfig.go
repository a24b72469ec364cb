//
// Copyright (C) 2026 fmbench authors.  All rights reserved.
//
// fmbench is licensed under the Apache License Version 2.0.
//
//

// Package dataconfig describes how an evaluation dataset is loaded: where it
// lives, its wire format, and which record fields supply model input, target
// output, model output, category label, or paired-comparison inputs. The
// package carries configuration only; the loading itself belongs to the
// dataset layer.
package dataconfig

import "fmt"

// MIMETypeJSONLines is the JSON-lines dataset wire format, currently the
// only format recognized.
const MIMETypeJSONLines = "application/jsonlines"

// DataConfig is the loading configuration for a single dataset. Location
// fields name the record field that supplies the corresponding value and are
// empty when the dataset does not carry it.
type DataConfig struct {
	// DatasetName identifies the dataset.
	DatasetName string `json:"dataset_name"`
	// DatasetURI locates the dataset, e.g. an s3:// or file path.
	DatasetURI string `json:"dataset_uri"`
	// DatasetMIMEType is the wire format of the dataset records.
	DatasetMIMEType string `json:"dataset_mime_type"`
	// ModelInputLocation supplies the model input.
	ModelInputLocation string `json:"model_input_location,omitempty"`
	// ModelOutputLocation supplies a pre-existing model output, when the
	// dataset already carries model responses.
	ModelOutputLocation string `json:"model_output_location,omitempty"`
	// TargetOutputLocation supplies the reference output.
	TargetOutputLocation string `json:"target_output_location,omitempty"`
	// CategoryLocation supplies the category label used for per-category
	// score aggregation.
	CategoryLocation string `json:"category_location,omitempty"`
	// SentMoreInputLocation supplies the more-stereotypical input of a
	// paired-comparison dataset.
	SentMoreInputLocation string `json:"sent_more_input_location,omitempty"`
	// SentLessInputLocation supplies the less-stereotypical input of a
	// paired-comparison dataset.
	SentLessInputLocation string `json:"sent_less_input_location,omitempty"`
}

// Validate checks that the config names a dataset, locates it, and uses a
// supported wire format. It does not inspect the dataset itself.
func (c DataConfig) Validate() error {
	if c.DatasetName == "" {
		return fmt.Errorf("dataset name is required")
	}
	if c.DatasetURI == "" {
		return fmt.Errorf("dataset %q: dataset uri is required", c.DatasetName)
	}
	if c.DatasetMIMEType != MIMETypeJSONLines {
		return fmt.Errorf("dataset %q: unsupported mime type %q, only %s is supported",
			c.DatasetName, c.DatasetMIMEType, MIMETypeJSONLines)
	}
	return nil
}
