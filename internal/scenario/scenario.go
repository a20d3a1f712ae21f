package scenario

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/forces/internal/core/physics/force"
	"github.com/zeusync/forces/internal/core/physics/resolver"
)

var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario describes one body and the forces applied to it. It can be
// written in JSON or YAML.
type Scenario struct {
	Name     string      `json:"name" yaml:"name"`
	Mass     float64     `json:"mass" yaml:"mass"`
	Friction *float64    `json:"friction,omitempty" yaml:"friction,omitempty"`
	Forces   []ForceSpec `json:"forces,omitempty" yaml:"forces,omitempty"`
}

// ForceSpec is a single force entry. Unit defaults to degrees.
type ForceSpec struct {
	Magnitude float64    `json:"magnitude" yaml:"magnitude"`
	Angle     float64    `json:"angle" yaml:"angle"`
	Unit      force.Unit `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Outcome is a built and resolved scenario.
type Outcome struct {
	Name   string
	Body   *resolver.Body
	Result resolver.Result
}

// LoadJSON loads a scenario from JSON reader.
func LoadJSON(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, decodeError(err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadYAML loads a scenario from YAML reader.
func LoadYAML(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, decodeError(err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile picks the decoder by extension: .json is JSON, anything else YAML.
// A scenario without a name is named after the file.
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}

	var s *Scenario
	if strings.EqualFold(filepath.Ext(path), ".json") {
		s, err = LoadJSON(bytes.NewReader(data))
	} else {
		s, err = LoadYAML(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}

	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Validate rejects non-finite numbers and negative friction coefficients.
func (s *Scenario) Validate() error {
	if !finite(s.Mass) {
		return fmt.Errorf("%w: mass %v", ErrInvalidScenario, s.Mass)
	}
	if s.Friction != nil && (!finite(*s.Friction) || *s.Friction < 0) {
		return fmt.Errorf("%w: friction %v", ErrInvalidScenario, *s.Friction)
	}
	for i, f := range s.Forces {
		if !finite(f.Magnitude) || !finite(f.Angle) {
			return fmt.Errorf("%w: force %d: %v at %v", ErrInvalidScenario, i, f.Magnitude, f.Angle)
		}
	}
	return nil
}

// Build creates the body described by the scenario. Forces are normalized
// under the body's policy.
func (s *Scenario) Build(opts ...resolver.BodyOption) *resolver.Body {
	b := resolver.New(s.Mass, nil, opts...)
	norm := force.WithNormalization(b.Config().Normalization)

	vectors := make([]force.Vector, 0, len(s.Forces))
	for _, f := range s.Forces {
		vectors = append(vectors, force.New(f.Magnitude, f.Angle, force.WithUnit(f.Unit), norm))
	}
	if len(vectors) > 0 {
		b.AddForces(vectors...)
	}
	if s.Friction != nil {
		b.SetFriction(*s.Friction)
	}
	return b
}

// Run builds the body and resolves it.
func (s *Scenario) Run(opts ...resolver.BodyOption) Outcome {
	b := s.Build(opts...)
	return Outcome{
		Name:   s.Name,
		Body:   b,
		Result: b.Resolve(),
	}
}

func decodeError(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: empty scenario", ErrInvalidScenario)
	}
	return fmt.Errorf("decode scenario: %w", err)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
