// Package main is the forces command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

const (
	// Flags.
	flagConfig    = "config"
	flagParallel  = "parallel"
	flagUnit      = "unit"
	flagAs        = "as"
	flagVerbose   = "verbose"
	flagLegacy    = "legacy"
	flagMagnitude = "magnitude"
	flagAngle     = "angle"
)

func main() {
	if err := newCLI().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCLI() *cli.App {
	return &cli.App{
		Name:  "forces",
		Usage: "resolve the forces acting on a rigid body",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "path to a YAML configuration file",
				EnvVars: []string{"FORCES_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "resolve",
				Usage:     "resolve one or more scenario files",
				ArgsUsage: "<scenario.yaml|scenario.json>...",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    flagParallel,
						Aliases: []string{"p"},
						Usage:   "number of scenarios resolved at once (0 uses the configured value)",
					},
					&cli.StringFlag{
						Name:    flagUnit,
						Aliases: []string{"u"},
						Usage:   "display unit for angles: deg or rad (defaults to the configured unit)",
					},
					&cli.BoolFlag{
						Name:    flagVerbose,
						Aliases: []string{"v"},
						Usage:   "also list the forces applied to every body",
					},
				},
				Action: ResolveAction,
			},
			{
				Name:      "normalize",
				Usage:     "fold angles into one turn",
				ArgsUsage: "<angle>...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  flagUnit,
						Value: "deg",
						Usage: "unit of the given angles: deg or rad",
					},
					&cli.BoolFlag{
						Name:  flagLegacy,
						Usage: "fold radians modulo 360 as if they were degrees",
					},
				},
				Action: NormalizeAction,
			},
			{
				Name:  "render",
				Usage: "print a single force",
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:     flagMagnitude,
						Aliases:  []string{"m"},
						Usage:    "magnitude in newtons",
						Required: true,
					},
					&cli.Float64Flag{
						Name:    flagAngle,
						Aliases: []string{"a"},
						Usage:   "direction, 0 points east",
					},
					&cli.StringFlag{
						Name:  flagUnit,
						Value: "deg",
						Usage: "unit of --angle: deg or rad",
					},
					&cli.StringFlag{
						Name:  flagAs,
						Usage: "render the angle in this unit instead",
					},
				},
				Action: RenderAction,
			},
			{
				Name:   "config",
				Usage:  "print the effective configuration",
				Action: ConfigAction,
			},
		},
	}
}
