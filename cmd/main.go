// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"mingjing-scan/internal/config"
	"mingjing-scan/internal/core"
	"mingjing-scan/internal/detector"
	"mingjing-scan/internal/formatters"
	jsonfmt "mingjing-scan/internal/formatters/json"
	textfmt "mingjing-scan/internal/formatters/text"
	yamlfmt "mingjing-scan/internal/formatters/yaml"
	"mingjing-scan/internal/masking"
	"mingjing-scan/internal/metrics"
	"mingjing-scan/internal/observability"
	"mingjing-scan/internal/parallel"
	"mingjing-scan/internal/recognizers"
	"mingjing-scan/internal/report"
	"mingjing-scan/internal/verify"
)

const (
	exitClean    = 0
	exitFindings = 1
	exitError    = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	// A .env next to the binary may carry MINGJING_API_KEY.
	_ = godotenv.Load()

	inputText := flag.String("text", "", "Text to analyze directly")
	inputFile := flag.String("file", "", "Path to input file(s), comma-separated")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	rulesFile := flag.String("rules", "", "Path to custom recognizer rules file (YAML)")
	outputFormat := flag.String("format", "", "Output format: text, json, yaml (default: text)")
	checksToRun := flag.String("checks", "", "Entity types to report, comma-separated (default: all)")
	threshold := flag.Float64("threshold", -1, "Minimum score for a finding to be reported (default: 0.5)")
	workers := flag.Int("workers", 0, "Number of parallel workers for multi-file input")
	verifyMode := flag.String("verify", "", "Verification backend for low-confidence findings: api, local, mock")
	mask := flag.Bool("mask", false, "Mask detected values; containers are rewritten next to the input")
	outputFile := flag.String("output", "", "Path to output file (default: stdout)")
	verbose := flag.Bool("verbose", false, "Display detailed information for each finding")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	flag.Parse()

	if *noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	cfg, err := loadConfiguration(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}
	applyFlagOverrides(cfg, *outputFormat, *checksToRun, *threshold, *workers, *verifyMode, *rulesFile)

	registry, err := recognizers.NewRegistry(cfg.RulesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading recognizer rules: %v\n", err)
		return exitError
	}
	for name, loadErr := range registry.LoadErrors() {
		fmt.Fprintf(os.Stderr, "Warning: rule %q skipped: %v\n", name, loadErr)
	}

	instruments := metrics.New("mingjing")

	var verifier *verify.Verifier
	if cfg.Verifier.Enabled {
		backend, err := verify.NewBackend(verify.BackendConfig{
			Mode:            cfg.Verifier.Mode,
			APIKey:          cfg.Verifier.APIKey,
			BaseURL:         cfg.Verifier.BaseURL,
			Model:           cfg.Verifier.Model,
			MockIsSensitive: cfg.Verifier.MockIsSensitive,
			MockConfidence:  cfg.Verifier.MockConfidence,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return exitError
		}
		verifier = verify.NewVerifier(backend)
		verifier.ScoreThreshold = cfg.Verifier.Cutoff
		verifier.Metrics = instruments
	}

	analyzer := core.NewAnalyzer(core.Options{
		Registry:  registry,
		Threshold: cfg.Defaults.Threshold,
		Verifier:  verifier,
		Observer:  observability.FromEnv(),
		Metrics:   instruments,
		Checks:    strings.Split(cfg.Defaults.Checks, ","),
	})

	rep, err := analyze(analyzer, cfg, *inputText, *inputFile, *mask)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}

	out, err := render(rep, cfg, *verbose, *mask)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting report: %v\n", err)
		return exitError
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(out), 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			return exitError
		}
	} else {
		fmt.Print(out)
	}

	if len(rep.Findings) > 0 {
		return exitFindings
	}
	return exitClean
}

func loadConfiguration(configFile string) (*config.Config, error) {
	path := configFile
	if path == "" {
		path = config.FindConfigFile()
	}
	return config.LoadConfig(path)
}

func applyFlagOverrides(cfg *config.Config, format, checks string, threshold float64, workers int, verifyMode, rulesPath string) {
	if format != "" {
		cfg.Defaults.Format = format
	}
	if checks != "" {
		cfg.Defaults.Checks = checks
	}
	if threshold >= 0 {
		cfg.Defaults.Threshold = threshold
	}
	if workers > 0 {
		cfg.Defaults.Workers = workers
	}
	if verifyMode != "" {
		cfg.Verifier.Enabled = true
		cfg.Verifier.Mode = verifyMode
	}
	if rulesPath != "" {
		cfg.RulesPath = rulesPath
	}
}

func analyze(analyzer *core.Analyzer, cfg *config.Config, inputText, inputFile string, mask bool) (*report.AnalysisReport, error) {
	start := time.Now()
	ctx := context.Background()

	if inputText == "" && inputFile == "" {
		return nil, fmt.Errorf("no input: use -text or -file")
	}

	var findings []report.Finding
	stats := report.Statistics{FileTypeCounts: make(map[string]int)}

	if inputText != "" {
		results, err := analyzer.AnalyzeText(ctx, inputText, nil)
		if err != nil {
			return nil, err
		}
		findings = append(findings, toFindings(results, inputText, "", mask)...)
	}

	if inputFile != "" {
		files := splitList(inputFile)
		stats.TotalFiles = len(files)

		fileFindings, processed, failed, err := analyzeFiles(analyzer, cfg, files, mask)
		if err != nil {
			return nil, err
		}
		findings = append(findings, fileFindings...)
		stats.ProcessedFiles = processed
		stats.FailedFiles = failed
		for _, f := range files {
			ext := strings.ToLower(filepath.Ext(f))
			if ext == "" {
				ext = "none"
			}
			stats.FileTypeCounts[ext]++
		}
		if processed > 0 {
			stats.AvgEntitiesFile = float64(len(findings)) / float64(processed)
		}
	}

	stats.TotalSeconds = time.Since(start).Seconds()
	return report.New(findings, stats), nil
}

// analyzeFiles fans file jobs out over the worker pool. Container files are
// masked in place next to the original when masking is on.
func analyzeFiles(analyzer *core.Analyzer, cfg *config.Config, files []string, mask bool) ([]report.Finding, int, int, error) {
	type fileResult struct {
		findings []report.Finding
		err      error
	}
	var mu sync.Mutex
	results := make(map[string]*fileResult, len(files))

	pool := parallel.NewWorkerPool(cfg.Defaults.Workers, nil, func(ctx context.Context, job *parallel.Job) ([]detector.Match, error) {
		findings, err := analyzeOneFile(ctx, analyzer, job.Source, mask)
		mu.Lock()
		results[job.JobID] = &fileResult{findings: findings, err: err}
		mu.Unlock()
		return nil, err
	})

	jobIDs := make([]string, len(files))
	pool.Start()
	go func() {
		for i, path := range files {
			job := &parallel.Job{JobID: fmt.Sprintf("file-%d", i), Source: path}
			jobIDs[i] = job.JobID
			pool.Submit(job)
		}
		pool.Close()
		pool.Stop()
	}()
	for range pool.Results() {
	}

	var findings []report.Finding
	processed, failed := 0, 0
	for i := range files {
		r := results[jobIDs[i]]
		if r == nil || r.err != nil {
			failed++
			if r != nil {
				fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", files[i], r.err)
			}
			continue
		}
		processed++
		findings = append(findings, r.findings...)
	}
	return findings, processed, failed, nil
}

func analyzeOneFile(ctx context.Context, analyzer *core.Analyzer, path string, mask bool) ([]report.Finding, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".docx" || ext == ".xlsx" || ext == ".zip" {
		return analyzeContainer(ctx, analyzer, path, ext, mask)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := string(raw)
	if !utf8.ValidString(text) {
		// Binary content passes through unanalyzed.
		return nil, nil
	}

	results, err := analyzer.AnalyzeText(ctx, text, nil)
	if err != nil {
		return nil, err
	}
	for i := range results {
		results[i].Source = path
	}

	if mask {
		masked := masking.ApplyMasks(text, toMatches(results))
		if err := os.WriteFile(maskedPath(path, ext), []byte(masked), 0o600); err != nil {
			return nil, err
		}
	}
	return toFindings(results, text, path, mask), nil
}

func analyzeContainer(ctx context.Context, analyzer *core.Analyzer, path, ext string, mask bool) ([]report.Finding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	var findings []report.Finding
	transform := func(text string) string {
		results, err := analyzer.AnalyzeText(ctx, text, nil)
		if err != nil {
			return text
		}
		for i := range results {
			results[i].Source = path
		}
		findings = append(findings, toFindings(results, text, path, mask)...)
		if !mask {
			return text
		}
		return masking.ApplyMasks(text, toMatches(results))
	}

	cm := masking.NewContainerMasker(transform)
	if !mask {
		// Analysis-only pass still walks the container's text nodes.
		err := cm.Rewrite(path, f, info.Size(), nopWriter{})
		return findings, err
	}

	out, err := os.OpenFile(maskedPath(path, ext), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}
	defer out.Close()
	if err := cm.Rewrite(path, f, info.Size(), out); err != nil {
		return nil, err
	}
	return findings, nil
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func maskedPath(path, ext string) string {
	return strings.TrimSuffix(path, ext) + ".masked" + ext
}

func toMatches(results []detector.ResolvedResult) []detector.Match {
	matches := make([]detector.Match, len(results))
	for i, r := range results {
		matches[i] = r.Match
	}
	return matches
}

func toFindings(results []detector.ResolvedResult, text, source string, mask bool) []report.Finding {
	findings := make([]report.Finding, 0, len(results))
	for _, r := range results {
		f := report.FindingFromMatch(r.Match)
		f.Source = source
		f.Reason = r.Reason
		if mask {
			f.MaskedText = masking.MaskValue(r.EntityType, r.Text)
		}
		findings = append(findings, f)
	}
	return findings
}

func render(rep *report.AnalysisReport, cfg *config.Config, verbose, mask bool) (string, error) {
	registry := formatters.NewRegistry()
	registry.Register(textfmt.NewFormatter())
	registry.Register(jsonfmt.NewFormatter())
	registry.Register(yamlfmt.NewFormatter())

	formatter, ok := registry.Get(cfg.Defaults.Format)
	if !ok {
		return "", fmt.Errorf("unknown output format %q (available: %s)",
			cfg.Defaults.Format, strings.Join(registry.List(), ", "))
	}
	return formatter.Format(rep, formatters.FormatterOptions{
		Verbose:    verbose,
		NoColor:    color.NoColor,
		ShowMasked: mask,
	})
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
