package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ResolveInputs expands an input path into the list of files to process. A
// regular file resolves to itself. A directory resolves to its .sgy/.segy
// entries (case-insensitive), optionally restricted to names containing
// filter, in sorted order.
func ResolveInputs(path, filter string) (files []string, isDir bool, err error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, false, err
	}
	if !st.IsDir() {
		return []string{path}, false, nil
	}

	ents, err := os.ReadDir(path)
	if err != nil {
		return nil, true, err
	}
	for _, e := range ents {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !isSEGYName(name) {
			continue
		}
		if filter != "" && !strings.Contains(name, filter) {
			continue
		}
		files = append(files, filepath.Join(path, name))
	}
	sort.Strings(files)
	if len(files) == 0 {
		return nil, true, fmt.Errorf("%w in %s", ErrNoInputs, path)
	}
	return files, true, nil
}

func isSEGYName(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".sgy", ".segy":
		return true
	}
	return false
}

// OutputPath derives an output filename by inserting suffix between the input
// base name and its extension. The file goes next to the input unless outDir
// is set.
func OutputPath(input, suffix, outDir string) string {
	dir := filepath.Dir(input)
	if outDir != "" {
		dir = outDir
	}
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	return filepath.Join(dir, strings.TrimSuffix(base, ext)+suffix+ext)
}

// Result records the outcome of one job for reporting.
type Result struct {
	JobID         string `json:"job_id"`
	Input         string `json:"input"`
	Output        string `json:"output"`
	Traces        int    `json:"traces"`
	SkippedTraces int    `json:"skipped_traces,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Summary aggregates a whole batch run.
type Summary struct {
	Processed int      `json:"processed"`
	Failed    int      `json:"failed"`
	Results   []Result `json:"results"`
}

// Run processes jobs in order. A failing job is recorded and the batch moves
// on to the next one; nothing shares state across jobs.
func (e *Engine) Run(jobs []Job) Summary {
	s := Summary{Results: make([]Result, 0, len(jobs))}
	for _, job := range jobs {
		res := Result{
			JobID:  job.ID.String(),
			Input:  job.Input,
			Output: job.Output,
		}

		e.log.Info("processing file", "job", job.ID, "input", job.Input, "output", job.Output)
		stats, err := e.ProcessFile(job)
		if err != nil {
			res.Error = err.Error()
			s.Failed++
			e.log.Error("file failed", "job", job.ID, "input", job.Input, "error", err)
		} else {
			res.Traces = stats.Traces
			res.SkippedTraces = stats.SkippedTraces
			s.Processed++
			e.log.Info("file done", "job", job.ID, "input", job.Input,
				"traces", stats.Traces, "skipped_traces", stats.SkippedTraces)
		}
		s.Results = append(s.Results, res)
	}
	return s
}
