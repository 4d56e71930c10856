// Package config loads HCL pipeline files for the itkfilter tool and
// turns their filter blocks into operators and boundary conditions.
package config

import (
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/lucasalg/ITK/internal/filter"
	"github.com/lucasalg/ITK/internal/grid"
)

// Pipeline is the top-level configuration: an ordered chain of filter
// stages applied to the input image.
type Pipeline struct {
	Workers int      `hcl:"workers,optional"`
	Filters []*Stage `hcl:"filter,block"`
}

// Stage describes one filter application.
//
//	filter "gaussian" {
//	  radius   = [2, 2]
//	  sigma    = 1.5
//	  boundary = "clamp"
//	}
type Stage struct {
	Kind string `hcl:"kind,label"`

	Radius       []int     `hcl:"radius,optional"`
	Sigma        *float64  `hcl:"sigma,optional"`
	Axis         *int      `hcl:"axis,optional"`
	Coefficients []float64 `hcl:"coefficients,optional"`
	Mirror       bool      `hcl:"mirror,optional"`

	Boundary  string   `hcl:"boundary,optional"`
	FillValue *float64 `hcl:"fill_value,optional"`
}

// Load parses and decodes a pipeline file from disk.
func Load(path string) (*Pipeline, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse pipeline file %s: %s", path, diags.Error())
	}
	return decode(file)
}

// Parse decodes a pipeline from an in-memory HCL document.
func Parse(src []byte, filename string) (*Pipeline, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse pipeline %s: %s", filename, diags.Error())
	}
	return decode(file)
}

func decode(file *hcl.File) (*Pipeline, error) {
	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"pi": cty.NumberFloatVal(math.Pi),
			"e":  cty.NumberFloatVal(math.E),
		},
	}

	var p Pipeline
	if diags := gohcl.DecodeBody(file.Body, ctx, &p); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode pipeline: %s", diags.Error())
	}
	if len(p.Filters) == 0 {
		return nil, fmt.Errorf("pipeline declares no filter blocks")
	}
	for _, s := range p.Filters {
		if err := s.validate(); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func (s *Stage) validate() error {
	switch s.Kind {
	case "mean", "gaussian":
		if len(s.Radius) == 0 {
			return fmt.Errorf("filter %q: radius is required", s.Kind)
		}
	case "laplacian", "sobel", "derivative":
	case "custom":
		if len(s.Radius) == 0 || len(s.Coefficients) == 0 {
			return fmt.Errorf("filter %q: radius and coefficients are required", s.Kind)
		}
	default:
		return fmt.Errorf("unknown filter kind %q", s.Kind)
	}

	switch s.Boundary {
	case "", "clamp", "periodic", "constant":
	default:
		return fmt.Errorf("filter %q: unknown boundary %q", s.Kind, s.Boundary)
	}
	return nil
}

// BuildOperator realizes the stage's operator for a dim-dimensional
// image.
func (s *Stage) BuildOperator(dim int) (filter.Operator[float64], error) {
	switch s.Kind {
	case "mean":
		return filter.MeanOperator[float64](s.Radius)
	case "gaussian":
		sigma := 1.0
		if s.Sigma != nil {
			sigma = *s.Sigma
		}
		return filter.GaussianOperator[float64](s.Radius, sigma)
	case "laplacian":
		return filter.LaplacianOperator[float64](dim)
	case "sobel":
		axis := 0
		if s.Axis != nil {
			axis = *s.Axis
		}
		return filter.SobelOperator[float64](axis)
	case "derivative":
		axis := 0
		if s.Axis != nil {
			axis = *s.Axis
		}
		return filter.DerivativeOperator[float64](dim, axis)
	case "custom":
		op, err := filter.NewOperator(s.Coefficients, s.Radius)
		if err != nil {
			return filter.Operator[float64]{}, err
		}
		if s.Mirror {
			op = op.Mirror()
		}
		return op, nil
	default:
		return filter.Operator[float64]{}, fmt.Errorf("unknown filter kind %q", s.Kind)
	}
}

// BuildBoundary realizes the stage's boundary condition; the default is
// zero-flux Neumann clamping.
func (s *Stage) BuildBoundary() grid.BoundaryCondition[float64] {
	switch s.Boundary {
	case "periodic":
		return grid.Periodic[float64]{}
	case "constant":
		fill := 0.0
		if s.FillValue != nil {
			fill = *s.FillValue
		}
		return grid.Constant[float64]{Value: fill}
	default:
		return grid.ZeroFluxNeumann[float64]{}
	}
}
