package main

import (
	"os"

	"github.com/urfave/cli/v3"

	"github.com/geophysicslabs/segy2segy/internal/logger"
)

var (
	outputPath   string
	suffix       string
	sourceSRS    int64
	targetSRS    int64
	sourceCoord  string
	targetCoord  string
	forceScaling bool
	scalar       int64
	outDir       string
	filter       string
	reportFormat string
	logLevel     string
	logFormat    string
	debug        bool
)

func projectFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "output SEG-Y file (single-file mode only)",
			Destination: &outputPath,
		},
		&cli.StringFlag{
			Name:        "suffix",
			Aliases:     []string{"s"},
			Usage:       "suffix appended to each input filename before its extension",
			Destination: &suffix,
		},
		&cli.Int64Flag{
			Name:        "s_srs",
			Usage:       "EPSG code of the spatial reference of the input coordinates",
			Destination: &sourceSRS,
		},
		&cli.Int64Flag{
			Name:        "t_srs",
			Usage:       "EPSG code of the spatial reference of the output coordinates",
			Destination: &targetSRS,
		},
		&cli.StringFlag{
			Name:        "s_coord",
			Usage:       "trace header field to read coordinates from (Source, Group, CDP)",
			Value:       "Source",
			Destination: &sourceCoord,
		},
		&cli.StringFlag{
			Name:        "t_coord",
			Usage:       "trace header field to write coordinates to (Source, Group, CDP)",
			Value:       "CDP",
			Destination: &targetCoord,
		},
		&cli.BoolFlag{
			Name:        "force-scaling",
			Aliases:     []string{"fs"},
			Usage:       "use the --scaler value instead of the scalar stored in each trace",
			Destination: &forceScaling,
		},
		&cli.Int64Flag{
			Name:        "scaler",
			Aliases:     []string{"sc"},
			Usage:       "coordinate scalar used with --force-scaling (e.g. -100 divides by 100)",
			Value:       1,
			Destination: &scalar,
		},
		&cli.StringFlag{
			Name:        "outdir",
			Usage:       "directory for output files (defaults to each input's directory)",
			Destination: &outDir,
		},
		&cli.StringFlag{
			Name:        "filter",
			Usage:       "only process directory entries whose name contains this substring",
			Destination: &filter,
		},
		&cli.StringFlag{
			Name:        "report",
			Usage:       "batch report format (none, json)",
			Value:       "none",
			Destination: &reportFormat,
		},
	}
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Destination: &logFormat,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &debug,
		},
	}
}

func newLogger() logger.Logger {
	level := logger.ParseLevel(logLevel)
	if debug {
		level = logger.ParseLevel("debug")
	}
	switch logFormat {
	case "json":
		return logger.JSON(os.Stderr, level)
	case "text":
		return logger.Text(os.Stderr, level)
	default:
		return logger.Pretty(os.Stderr, level)
	}
}
