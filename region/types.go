// Package region metric names, sentinel errors, functional options, and
// the Reconstruction collaborator contract.

package region

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/neurokit/arbor/annot"
	"github.com/neurokit/arbor/morph"
	"github.com/neurokit/arbor/morphometry"
)

// Metric selects the aggregation algorithm.
type Metric string

// Supported aggregation metrics.
const (
	// MetricTips counts annotated terminal points per target region.
	MetricTips Metric = "tips"

	// MetricBranchPoints counts annotated junction points per target region.
	MetricBranchPoints Metric = "branch points"

	// MetricLength accumulates annotated cable length per region.
	MetricLength Metric = "length"

	// MetricEdges counts node-level edge occurrences between region pairs.
	// Weight and occurrence count both advance by one per occurrence and
	// are numerically identical in the constructed graph; the threshold
	// prunes on occurrence count.
	MetricEdges Metric = "edges"
)

// Sentinel errors for region aggregation and algebra.
var (
	// ErrUnsupportedMetric is returned for a metric name outside the
	// supported set.
	ErrUnsupportedMetric = errors.New("region: unsupported metric")

	// ErrEmptyInput is returned when aggregation receives no reconstructions.
	ErrEmptyInput = errors.New("region: empty reconstruction collection")

	// ErrNilReconstruction is returned when the collection contains a nil entry.
	ErrNilReconstruction = errors.New("region: nil reconstruction")

	// ErrNoGraphs is returned when an algebra operation receives no graphs.
	ErrNoGraphs = errors.New("region: no graphs given")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("region: invalid option supplied")
)

// ParseMetric maps a metric name to its Metric, or ErrUnsupportedMetric.
func ParseMetric(name string) (Metric, error) {
	switch m := Metric(name); m {
	case MetricTips, MetricBranchPoints, MetricLength, MetricEdges:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMetric, name)
	}
}

// Option configures aggregation behavior via functional arguments.
type Option func(*Options)

// Options holds aggregation parameters beyond the required arguments.
type Options struct {
	// Ctx allows cancelling a long aggregation between reconstructions.
	Ctx context.Context

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with context.Background and no error.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation. A nil context is an
// option violation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// Reconstruction is one aggregation input: a morphology graph plus the
// externally assigned root annotation and the measurement sets derived by
// a morphometric analyzer.
type Reconstruction interface {
	// Label identifies the reconstruction for traceability.
	Label() string

	// RootAnnotation returns the region assigned to the reconstruction's
	// root. May be nil; such reconstructions contribute nothing to the
	// tips, branch-points, and length metrics.
	RootAnnotation() annot.Annotation

	// Analyzer supplies tips, branch points, and annotated length.
	Analyzer() morphometry.Analyzer

	// Graph exposes the node-level morphology graph for MetricEdges.
	Graph() *morph.Graph
}

// TreeReconstruction is the default Reconstruction over a morph.Graph
// with the default TreeAnalyzer.
type TreeReconstruction struct {
	label    string
	root     annot.Annotation
	graph    *morph.Graph
	analyzer morphometry.Analyzer
}

// NewReconstruction bundles a morphology graph with its root annotation.
// An empty label is replaced with a fresh UUID so every reconstruction
// stays individually traceable through aggregation and algebra.
func NewReconstruction(g *morph.Graph, root annot.Annotation, label string) *TreeReconstruction {
	if label == "" {
		label = uuid.NewString()
	}

	return &TreeReconstruction{
		label:    label,
		root:     root,
		graph:    g,
		analyzer: morphometry.NewTreeAnalyzer(g),
	}
}

// Label returns the reconstruction's identifying label.
func (r *TreeReconstruction) Label() string { return r.label }

// RootAnnotation returns the externally assigned root region.
func (r *TreeReconstruction) RootAnnotation() annot.Annotation { return r.root }

// Analyzer returns the default tree analyzer over the graph.
func (r *TreeReconstruction) Analyzer() morphometry.Analyzer { return r.analyzer }

// Graph returns the node-level morphology graph.
func (r *TreeReconstruction) Graph() *morph.Graph { return r.graph }
