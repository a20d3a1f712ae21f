package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/zeusync/forces/internal/core/observability/log"
	"github.com/zeusync/forces/internal/core/physics/force"
	"github.com/zeusync/forces/internal/injector"
	"github.com/zeusync/forces/internal/scenario"
	"github.com/zeusync/forces/pkg/concurrent"
	"github.com/zeusync/forces/pkg/sequence"
)

var errNoArgs = errors.New("missing arguments")

// ResolveAction loads every scenario given as argument, resolves them and
// prints a summary table.
func ResolveAction(c *cli.Context) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return fmt.Errorf("%w: at least one scenario file is required", errNoArgs)
	}

	app, err := newApp(c)
	if err != nil {
		return err
	}
	defer func() { _ = app.Logger.Sync() }()

	workers := c.Int(flagParallel)
	if workers <= 0 {
		workers = app.Config.Parallelism
	}

	opts := app.BodyOptions()
	outcomes, err := concurrent.MapErr(c.Context, sequence.From(paths), workers,
		func(_ context.Context, path string) (scenario.Outcome, error) {
			s, err := scenario.LoadFile(path)
			if err != nil {
				return scenario.Outcome{}, err
			}
			return s.Run(opts...), nil
		})
	if err != nil {
		app.Logger.Error("resolve failed", log.Error(err))
		return err
	}
	app.Logger.Info("scenarios resolved", log.Int("count", len(outcomes)), log.Int("workers", workers))

	w := c.App.Writer
	fmt.Fprintln(w, app.Printer.Summary(outcomes))
	if c.Bool(flagVerbose) {
		for _, o := range outcomes {
			fmt.Fprintf(w, "\n%s\n%s\n", o.Name, app.Printer.Forces(o.Body))
		}
	}
	return nil
}

// NormalizeAction prints each argument folded into one turn.
func NormalizeAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("%w: at least one angle is required", errNoArgs)
	}
	unit, err := force.ParseUnit(c.String(flagUnit))
	if err != nil {
		return err
	}
	policy := force.NormalizeByUnit
	if c.Bool(flagLegacy) {
		policy = force.NormalizeDegrees
	}

	for _, arg := range c.Args().Slice() {
		value, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("angle %q: %w", arg, err)
		}
		fmt.Fprintf(c.App.Writer, "%s -> %s\n", arg, strconv.FormatFloat(policy.Apply(value, unit), 'f', -1, 64))
	}
	return nil
}

// RenderAction prints a single force in its own or a requested unit.
func RenderAction(c *cli.Context) error {
	unit, err := force.ParseUnit(c.String(flagUnit))
	if err != nil {
		return err
	}
	v := force.New(c.Float64(flagMagnitude), c.Float64(flagAngle), force.WithUnit(unit))

	if !c.IsSet(flagAs) {
		fmt.Fprintln(c.App.Writer, v.String())
		return nil
	}
	as, err := force.ParseUnit(c.String(flagAs))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, v.Format(as))
	return nil
}

// ConfigAction prints the effective configuration as YAML.
func ConfigAction(c *cli.Context) error {
	app, err := newApp(c)
	if err != nil {
		return err
	}
	data, err := app.Config.Marshal()
	if err != nil {
		return err
	}
	_, err = c.App.Writer.Write(data)
	return err
}

func newApp(c *cli.Context) (*injector.App, error) {
	app, err := injector.InitializeApp(c.String(flagConfig))
	if err != nil {
		return nil, err
	}
	if c.IsSet(flagUnit) {
		unit, err := force.ParseUnit(c.String(flagUnit))
		if err != nil {
			return nil, err
		}
		app.Printer.Unit = unit
	}
	return app, nil
}
