package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/geophysicslabs/segy2segy/internal/geodesy"
	"github.com/geophysicslabs/segy2segy/internal/project"
	"github.com/geophysicslabs/segy2segy/pkg/segy"
)

func runProject(ctx context.Context, c *cli.Command) error {
	_ = ctx

	cfg := LoadConfig()
	applyProjectConfig(c, cfg)
	log := newLogger()

	if c.Args().Len() != 1 {
		return cli.Exit("error: exactly one input file or directory is required", 2)
	}
	input := c.Args().First()

	// All argument validation happens before any file is opened.
	sField, tField, err := parseFields(sourceCoord, targetCoord)
	if err != nil {
		return cli.Exit(fmt.Sprintf("error: %v", err), 2)
	}
	if sourceSRS <= 0 || targetSRS <= 0 {
		return cli.Exit("error: --s_srs and --t_srs EPSG codes are required (flag or config file)", 2)
	}
	if err := validateScalar(forceScaling, scalar); err != nil {
		return cli.Exit(fmt.Sprintf("error: %v", err), 2)
	}
	if reportFormat != "none" && reportFormat != "json" {
		return cli.Exit(fmt.Sprintf("error: unknown report format %q", reportFormat), 2)
	}

	files, isDir, err := project.ResolveInputs(input, filter)
	if err != nil {
		return cli.Exit(fmt.Sprintf("error: %v", err), 2)
	}
	if err := validateOutputMode(isDir, outputPath, suffix); err != nil {
		return cli.Exit(fmt.Sprintf("error: %v", err), 2)
	}

	// An unresolvable reference system aborts the whole run before any
	// output file is created.
	transform, err := geodesy.NewEPSGTransform(int(sourceSRS), int(targetSRS))
	if err != nil {
		return cli.Exit(fmt.Sprintf("error: %v", err), 2)
	}
	defer transform.Close()

	jobs := buildJobs(files, isDir, sField, tField)
	log.Info("starting batch",
		"files", len(jobs),
		"s_srs", sourceSRS, "t_srs", targetSRS,
		"s_coord", sField.String(), "t_coord", tField.String())

	engine := project.NewEngine(transform, log)
	summary := engine.Run(jobs)

	if reportFormat == "json" {
		if err := project.WriteJSONReport(os.Stdout, summary); err != nil {
			return cli.Exit(fmt.Sprintf("error: write report: %v", err), 1)
		}
	}

	log.Info("batch complete", "processed", summary.Processed, "failed", summary.Failed)
	if summary.Failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d files failed", summary.Failed, len(jobs)), 1)
	}
	return nil
}

func parseFields(source, target string) (segy.CoordField, segy.CoordField, error) {
	sField, err := segy.ParseCoordField(source)
	if err != nil {
		return 0, 0, err
	}
	tField, err := segy.ParseCoordField(target)
	if err != nil {
		return 0, 0, err
	}
	return sField, tField, nil
}

func validateScalar(force bool, scalar int64) error {
	if !force {
		return nil
	}
	if scalar < math.MinInt16 || scalar > math.MaxInt16 {
		return fmt.Errorf("scaler %d out of range for a SEG-Y coordinate scalar", scalar)
	}
	return nil
}

// validateOutputMode enforces the output naming rules: a single file takes
// exactly one of --output or --suffix; a directory takes only --suffix, since
// a fixed output name would make every job collide.
func validateOutputMode(isDir bool, output, suffix string) error {
	if isDir {
		if output != "" {
			return errors.New("--output cannot be used with a directory input; use --suffix")
		}
		if suffix == "" {
			return errors.New("--suffix is required with a directory input")
		}
		return nil
	}
	if output != "" && suffix != "" {
		return errors.New("--output and --suffix are mutually exclusive for a single file")
	}
	if output == "" && suffix == "" {
		return errors.New("one of --output or --suffix is required")
	}
	return nil
}

func buildJobs(files []string, isDir bool, sField, tField segy.CoordField) []project.Job {
	jobs := make([]project.Job, 0, len(files))
	for _, in := range files {
		out := outputPath
		if isDir || out == "" {
			out = project.OutputPath(in, suffix, outDir)
		}
		jobs = append(jobs, project.Job{
			ID:           uuid.New(),
			Input:        in,
			Output:       out,
			SourceField:  sField,
			TargetField:  tField,
			ForceScaling: forceScaling,
			Scalar:       int16(scalar),
		})
	}
	return jobs
}
