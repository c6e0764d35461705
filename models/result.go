package models

import (
	"time"

	"github.com/dtnitsch/page-signals/pkg/detector"
	"github.com/dtnitsch/page-signals/pkg/vector"
)

// PageResult is the outcome of extracting one target.
type PageResult struct {
	Target      string               `json:"target" yaml:"target"`
	URL         string               `json:"url,omitempty" yaml:"url,omitempty"`
	Source      string               `json:"source,omitempty" yaml:"source,omitempty"`
	CapturedAt  time.Time            `json:"captured_at,omitempty" yaml:"captured_at,omitempty"`
	Geometry    bool                 `json:"geometry,omitempty" yaml:"geometry,omitempty"`
	ContentHash string               `json:"content_hash,omitempty" yaml:"content_hash,omitempty"`
	Bits        string               `json:"bits,omitempty" yaml:"bits,omitempty"`
	Vector      vector.FeatureVector `json:"vector,omitempty" yaml:"vector,flow,omitempty"`
	Signals     *vector.PageSignals  `json:"signals,omitempty" yaml:"signals,omitempty"`
	Meta        *detector.PageMeta   `json:"meta,omitempty" yaml:"meta,omitempty"`
	// DuplicateOf names an earlier target in the same run with identical HTML.
	DuplicateOf string `json:"duplicate_of,omitempty" yaml:"duplicate_of,omitempty"`
	VectorID    int64  `json:"vector_id,omitempty" yaml:"vector_id,omitempty"`
	Status      string `json:"status" yaml:"status"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
}

// RunOutput is the structured output for an entire extract run.
type RunOutput struct {
	Status  string       `json:"status" yaml:"status"`
	RunID   int64        `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Results []PageResult `json:"results" yaml:"results"`
	Stats   RunStats     `json:"stats" yaml:"stats"`
}

// RunStats provides summary statistics for the run.
type RunStats struct {
	Total            int     `json:"total" yaml:"total"`
	Successful       int     `json:"successful" yaml:"successful"`
	Failed           int     `json:"failed" yaml:"failed"`
	Duplicates       int     `json:"duplicates,omitempty" yaml:"duplicates,omitempty"`
	TotalTimeSeconds float64 `json:"total_time_seconds" yaml:"total_time_seconds"`
}
