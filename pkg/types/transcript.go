// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Section groups tour steps by the feature they demonstrate.
type Section string

const (
	SectionAnnotations Section = "annotations"
	SectionInterfaces  Section = "interfaces"
	SectionGenerics    Section = "generics"
)

// Line is one printed line of a tour run.
type Line struct {
	// Seq is the 1-based position of the line in the run.
	Seq     int     `json:"seq" yaml:"seq"`
	Name    string  `json:"name" yaml:"name"`
	Section Section `json:"section" yaml:"section"`
	Text    string  `json:"text" yaml:"text"`
}

// Run is a recorded execution of the tour.
type Run struct {
	ID        string       `json:"id" yaml:"id"`
	StartedAt time.Time    `json:"started_at" yaml:"started_at"`
	Format    OutputFormat `json:"format" yaml:"format"`
	LineCount int          `json:"line_count" yaml:"line_count"`
	Lines     []Line       `json:"lines,omitempty" yaml:"lines,omitempty"`
}
