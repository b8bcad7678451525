package main

import (
	"testing"

	"github.com/geophysicslabs/segy2segy/pkg/segy"
)

func TestValidateOutputMode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		isDir  bool
		output string
		suffix string
		ok     bool
	}{
		{"file with output", false, "out.sgy", "", true},
		{"file with suffix", false, "", "_proj", true},
		{"file with both", false, "out.sgy", "_proj", false},
		{"file with neither", false, "", "", false},
		{"dir with suffix", true, "", "_proj", true},
		{"dir with output", true, "out.sgy", "_proj", false},
		{"dir without suffix", true, "", "", false},
	}
	for _, c := range cases {
		err := validateOutputMode(c.isDir, c.output, c.suffix)
		if c.ok && err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
	}
}

func TestValidateScalar(t *testing.T) {
	t.Parallel()

	if err := validateScalar(false, 1<<20); err != nil {
		t.Fatalf("scalar is ignored without force-scaling: %v", err)
	}
	if err := validateScalar(true, -100); err != nil {
		t.Fatalf("legal forced scalar rejected: %v", err)
	}
	if err := validateScalar(true, 40000); err == nil {
		t.Fatal("scalar beyond int16 range accepted")
	}
}

func TestParseFields(t *testing.T) {
	t.Parallel()

	s, tf, err := parseFields("Source", "cdp")
	if err != nil {
		t.Fatalf("parse fields: %v", err)
	}
	if s != segy.FieldSource || tf != segy.FieldCDP {
		t.Fatalf("fields: got %v, %v", s, tf)
	}
	if _, _, err := parseFields("Source", "Offset"); err == nil {
		t.Fatal("invalid target field accepted")
	}
}
