// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognizers

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// rulesFile is the on-disk shape of the rule set.
type rulesFile struct {
	Rules []Rule `yaml:"rules"`
}

// Registry holds the compiled recognizer set. Builtin rules may be edited
// but never deleted; custom rules are fully managed. All methods are safe
// for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	path     string
	rules    map[string]*Recognizer
	loadErrs map[string]error
}

// NewRegistry builds a registry seeded with the builtin rules and overlaid
// with the rules file at path, if it exists. A rule whose pattern fails to
// compile is skipped and recorded in LoadErrors; the rest of the set loads.
func NewRegistry(path string) (*Registry, error) {
	r := &Registry{
		path:     path,
		rules:    make(map[string]*Recognizer),
		loadErrs: make(map[string]error),
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) load() error {
	for _, rule := range BuiltinRules() {
		rec, err := Compile(rule)
		if err != nil {
			r.loadErrs[rule.Name] = err
			continue
		}
		r.rules[rule.Name] = rec
	}

	if r.path == "" {
		return nil
	}
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading rules file: %w", err)
	}

	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing rules file %s: %w", r.path, err)
	}

	for _, rule := range file.Rules {
		// A file entry with a builtin name overrides the builtin definition
		// but keeps its source.
		if existing, ok := r.rules[rule.Name]; ok && existing.IsBuiltin() {
			rule.Source = "builtin"
		} else if rule.Source == "" {
			rule.Source = "custom"
		}
		rec, err := Compile(rule)
		if err != nil {
			r.loadErrs[rule.Name] = err
			continue
		}
		r.rules[rule.Name] = rec
		delete(r.loadErrs, rule.Name)
	}
	return nil
}

// Reload discards the in-memory set and loads builtins plus the file again.
func (r *Registry) Reload() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = make(map[string]*Recognizer)
	r.loadErrs = make(map[string]error)
	return r.load()
}

// Save writes the full rule set (builtin and custom) to path, or to the
// registry's own file when path is empty.
func (r *Registry) Save(path string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if path == "" {
		path = r.path
	}
	if path == "" {
		return fmt.Errorf("no rules file path configured")
	}

	file := rulesFile{Rules: r.sortedRulesLocked()}
	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating rules dir: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadErrors returns per-rule load failures (bad regex in the rules file).
func (r *Registry) LoadErrors() map[string]error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]error, len(r.loadErrs))
	for k, v := range r.loadErrs {
		out[k] = v
	}
	return out
}

// Get returns the recognizer by rule name.
func (r *Registry) Get(name string) (*Recognizer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.rules[name]
	return rec, ok
}

// All returns every recognizer, sorted by name for stable output.
func (r *Registry) All() []*Recognizer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedLocked(func(*Recognizer) bool { return true })
}

// Enabled returns the enabled recognizers.
func (r *Registry) Enabled() []*Recognizer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedLocked(func(rec *Recognizer) bool { return rec.Rule.Enabled })
}

// Builtin returns the builtin recognizers.
func (r *Registry) Builtin() []*Recognizer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedLocked(func(rec *Recognizer) bool { return rec.IsBuiltin() })
}

// Custom returns the custom recognizers.
func (r *Registry) Custom() []*Recognizer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedLocked(func(rec *Recognizer) bool { return !rec.IsBuiltin() })
}

// Add registers a new custom rule. Adding over an existing name fails.
func (r *Registry) Add(rule Rule) error {
	rule.Source = "custom"
	rec, err := Compile(rule)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.rules[rule.Name]; exists {
		return fmt.Errorf("rule %q already exists", rule.Name)
	}
	r.rules[rule.Name] = rec
	return nil
}

// Update replaces the rule named name. Builtin rules keep their source and
// cannot be renamed.
func (r *Registry) Update(name string, rule Rule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, exists := r.rules[name]
	if !exists {
		return fmt.Errorf("rule %q does not exist", name)
	}
	if old.IsBuiltin() && rule.Name != name {
		return fmt.Errorf("builtin rule %q cannot be renamed", name)
	}
	rule.Source = old.Rule.Source

	rec, err := Compile(rule)
	if err != nil {
		return err
	}
	if rule.Name != name {
		delete(r.rules, name)
	}
	r.rules[rule.Name] = rec
	return nil
}

// Delete removes a custom rule. Builtin rules cannot be deleted.
func (r *Registry) Delete(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, exists := r.rules[name]
	if !exists {
		return fmt.Errorf("rule %q does not exist", name)
	}
	if rec.IsBuiltin() {
		return fmt.Errorf("builtin rule %q cannot be deleted", name)
	}
	delete(r.rules, name)
	return nil
}

// SetEnabled flips a rule on or off.
func (r *Registry) SetEnabled(name string, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, exists := r.rules[name]
	if !exists {
		return fmt.Errorf("rule %q does not exist", name)
	}
	rec.Rule.Enabled = enabled
	return nil
}

func (r *Registry) sortedLocked(keep func(*Recognizer) bool) []*Recognizer {
	var out []*Recognizer
	for _, rec := range r.rules {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rule.Name < out[j].Rule.Name })
	return out
}

func (r *Registry) sortedRulesLocked() []Rule {
	recs := r.sortedLocked(func(*Recognizer) bool { return true })
	rules := make([]Rule, 0, len(recs))
	for _, rec := range recs {
		rules = append(rules, rec.Rule)
	}
	return rules
}
