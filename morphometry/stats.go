// Descriptive statistics over a reconstruction's branch structure.

package morphometry

import (
	"gonum.org/v1/gonum/stat"

	"github.com/neurokit/arbor/morph"
)

// Summary holds descriptive statistics for one reconstruction.
type Summary struct {
	// Cable is the total cable length (sum of all edge weights).
	Cable float64

	// Branches is the number of branch segments, i.e. edges of the
	// simplified graph (chains between relevant nodes).
	Branches int

	// MeanBranchLength and StdDevBranchLength describe the distribution
	// of branch-segment lengths. StdDevBranchLength is zero when fewer
	// than two segments exist.
	MeanBranchLength   float64
	StdDevBranchLength float64

	// Tips and BranchPoints count the terminal and junction nodes.
	Tips         int
	BranchPoints int
}

// Summarize computes a Summary from the graph's simplified form.
// Errors propagate from morph.Graph.Simplified (rootless or malformed
// graphs cannot be summarized).
// Complexity: O(n).
func Summarize(g *morph.Graph) (*Summary, error) {
	simplified, err := g.Simplified()
	if err != nil {
		return nil, err
	}

	lengths := make([]float64, 0, simplified.EdgeCount())
	for _, e := range simplified.Edges() {
		lengths = append(lengths, e.Weight)
	}

	s := &Summary{
		Cable:        g.SumEdgeWeights(),
		Branches:     len(lengths),
		Tips:         len(g.Tips()),
		BranchPoints: len(g.BranchNodes()),
	}
	if len(lengths) > 0 {
		s.MeanBranchLength = stat.Mean(lengths, nil)
	}
	if len(lengths) > 1 {
		s.StdDevBranchLength = stat.StdDev(lengths, nil)
	}

	return s, nil
}
