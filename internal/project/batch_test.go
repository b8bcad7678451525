package project

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/geophysicslabs/segy2segy/pkg/segy"
)

func TestResolveInputsSingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFixture(t, dir, "one.sgy", nil)

	files, isDir, err := ResolveInputs(in, "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if isDir {
		t.Fatal("single file reported as directory")
	}
	if len(files) != 1 || files[0] != in {
		t.Fatalf("files: %v", files)
	}
}

func TestResolveInputsDirectoryFilter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"line1_nav.sgy", "line2_nav.segy", "line3_nav.SGY", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	// Three matching SEG-Y files plus one non-matching file; the substring
	// filter must keep exactly the three.
	files, isDir, err := ResolveInputs(dir, "nav")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !isDir {
		t.Fatal("directory not reported as directory")
	}
	if len(files) != 3 {
		t.Fatalf("files: %v", files)
	}
	for i := 1; i < len(files); i++ {
		if files[i-1] >= files[i] {
			t.Fatalf("files not sorted: %v", files)
		}
	}

	if _, _, err := ResolveInputs(dir, "nosuch"); !errors.Is(err, ErrNoInputs) {
		t.Fatalf("empty filter result: got %v want ErrNoInputs", err)
	}
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input, suffix, outDir, want string
	}{
		{"/data/line1.sgy", "_proj", "", "/data/line1_proj.sgy"},
		{"/data/line1.segy", "_utm30", "", "/data/line1_utm30.segy"},
		{"/data/line1.sgy", "_proj", "/out", "/out/line1_proj.sgy"},
		{"line1.sgy", "_p", "", "line1_p.sgy"},
	}
	for _, c := range cases {
		if got := OutputPath(c.input, c.suffix, c.outDir); got != c.want {
			t.Fatalf("OutputPath(%q, %q, %q) = %q, want %q", c.input, c.suffix, c.outDir, got, c.want)
		}
	}
}

func TestRunContinuesPastFailures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeFixture(t, dir, "good.sgy", []fixtureTrace{
		{scalar: 1, sourceX: 1, sourceY: 2, nsamples: 1},
	})
	bad := filepath.Join(dir, "bad.sgy")
	if err := os.WriteFile(bad, []byte("not a segy file"), 0o644); err != nil {
		t.Fatalf("write bad input: %v", err)
	}
	good2 := writeFixture(t, dir, "tail.sgy", []fixtureTrace{
		{scalar: 1, sourceX: 3, sourceY: 4, nsamples: 1},
	})

	e := NewEngine(shift{}, testLogger())
	jobs := make([]Job, 0, 3)
	for _, in := range []string{good, bad, good2} {
		jobs = append(jobs, Job{
			ID:          uuid.New(),
			Input:       in,
			Output:      OutputPath(in, "_proj", ""),
			SourceField: segy.FieldSource,
			TargetField: segy.FieldCDP,
		})
	}

	summary := e.Run(jobs)
	if summary.Processed != 2 || summary.Failed != 1 {
		t.Fatalf("summary: processed=%d failed=%d", summary.Processed, summary.Failed)
	}
	if len(summary.Results) != 3 {
		t.Fatalf("results: %d", len(summary.Results))
	}
	if summary.Results[1].Error == "" {
		t.Fatal("failed job has no recorded error")
	}
	// The file after the failure was still attempted and succeeded.
	if summary.Results[2].Error != "" || summary.Results[2].Traces != 1 {
		t.Fatalf("job after failure: %+v", summary.Results[2])
	}
	if _, err := os.Stat(OutputPath(good2, "_proj", "")); err != nil {
		t.Fatalf("output of job after failure missing: %v", err)
	}
}

func TestWriteJSONReport(t *testing.T) {
	t.Parallel()

	s := Summary{
		Processed: 1,
		Failed:    1,
		Results: []Result{
			{JobID: uuid.New().String(), Input: "a.sgy", Output: "a_p.sgy", Traces: 10},
			{JobID: uuid.New().String(), Input: "b.sgy", Output: "b_p.sgy", Error: "output file already exists"},
		},
	}

	var buf bytes.Buffer
	if err := WriteJSONReport(&buf, s); err != nil {
		t.Fatalf("write report: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"a.sgy"`, `"b.sgy"`, `"output file already exists"`, `"processed": 1`, `"failed": 1`} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %s:\n%s", want, out)
		}
	}
}
