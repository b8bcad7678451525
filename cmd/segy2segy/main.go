package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:      "segy2segy",
		Usage:     "Reproject coordinates stored in SEG-Y trace headers",
		ArgsUsage: "<segy-file-or-directory>",
		Flags:     append(projectFlags(), loggingFlags()...),
		Action:    runProject,
		Commands: []*cli.Command{
			inspectCmd(),
			versionCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
