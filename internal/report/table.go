package report

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/zeusync/forces/internal/core/physics/force"
	"github.com/zeusync/forces/internal/core/physics/resolver"
	"github.com/zeusync/forces/internal/scenario"
)

// DefaultPrecision is the number of decimal places shown.
const DefaultPrecision = 3

// Printer renders resolved bodies as text tables.
type Printer struct {
	Unit      force.Unit
	Precision int
}

func NewPrinter(unit force.Unit, precision int) *Printer {
	if precision < 0 {
		precision = DefaultPrecision
	}
	return &Printer{Unit: unit, Precision: precision}
}

// Summary prints one row per outcome with the resolved components and the
// resultant in the printer's unit.
func (p *Printer) Summary(outcomes []scenario.Outcome) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Scenario", "Mass (kg)", "Forces", "Friction", "Horizontal (N)", "Vertical (N)", "Resultant"})
	for _, o := range outcomes {
		friction := "-"
		if mu, ok := o.Body.Friction(); ok {
			friction = p.number(mu)
		}
		t.AppendRow(table.Row{
			o.Name,
			p.number(o.Body.Mass()),
			o.Body.NumForces(),
			friction,
			p.number(o.Result.Horizontal.Magnitude()),
			p.number(o.Result.Vertical.Magnitude()),
			p.Vector(o.Result.Overall),
		})
	}
	return t.Render()
}

// Forces prints every force applied to b in list order.
func (p *Printer) Forces(b *resolver.Body) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Force", "i (N)", "j (N)"})
	for idx, v := range b.Forces() {
		i, j := v.Components()
		t.AppendRow(table.Row{idx, p.Vector(v), p.number(i), p.number(j)})
	}
	return t.Render()
}

// Vector renders v in the printer's unit with rounded numbers.
func (p *Printer) Vector(v force.Vector) string {
	angle := v.Degrees()
	if p.Unit == force.Radians {
		angle = v.Radians()
	}
	return p.number(v.Magnitude()) + "N " + p.number(angle) + p.Unit.Symbol()
}

func (p *Printer) number(v float64) string {
	// adding zero turns a rounded -0 into 0
	return strconv.FormatFloat(scalar.Round(v, p.Precision)+0, 'f', -1, 64)
}
