// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package formatters renders analysis reports for output.
package formatters

import (
	"sort"

	"mingjing-scan/internal/report"
)

// FormatterOptions defines configuration options for formatters.
type FormatterOptions struct {
	Verbose    bool // Whether to display detailed information
	NoColor    bool // Whether to disable colored output
	ShowMasked bool // Whether to display masked values instead of raw text
}

// Formatter renders an analysis report in one output format.
type Formatter interface {
	Format(r *report.AnalysisReport, options FormatterOptions) (string, error)

	// Name returns the name of the formatter (e.g., "json", "text")
	Name() string

	// Description returns a brief description of what this formatter outputs
	Description() string

	// FileExtension returns the recommended file extension for this format
	FileExtension() string
}

// Registry holds all registered formatters.
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a new formatter registry.
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register adds a formatter to the registry.
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name.
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns all registered formatter names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
