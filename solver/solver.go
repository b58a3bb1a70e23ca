package solver

import (
	"time"

	"github.com/mwpf-decode/mwpf/dualmodule"
	"github.com/mwpf-decode/mwpf/hypergraph"
	"github.com/mwpf-decode/mwpf/primalmodule"
	"github.com/mwpf-decode/mwpf/rational"
)

// Subgraph is the decoder's answer: the edge ids whose inclusion flips
// parity on exactly the defect vertices.
type Subgraph []hypergraph.EdgeIndex

// WeightRange brackets the true minimum weight: Lower <= Upper always, and
// Lower == Upper whenever the decode completed without timing out and found
// a satisfying subgraph. When no subgraph satisfies the syndrome, Upper is
// +infinity.
type WeightRange struct {
	Lower rational.Rational
	Upper rational.Rational
}

// Result is what Solve returns for one syndrome.
type Result struct {
	Subgraph    Subgraph
	WeightRange WeightRange
	TimedOut    bool
}

// Solver is the facade over one Initializer: construct once, then Solve any
// number of syndromes against it, optionally Clear-ing between them.
type Solver struct {
	g      *hypergraph.DecodingHyperGraph
	dual   *dualmodule.Module
	primal *primalmodule.Manager
	cfg    Config
}

// New builds a Solver over g, ready to Solve. Pass Option values (WithTimeout,
// WithGrowingStrategy, WithClusterNodeLimit, WithPlugins, WithLogger) to
// override the documented defaults.
func New(g *hypergraph.DecodingHyperGraph, opts ...Option) *Solver {
	cfg := gatherOptions(opts...)
	dual := dualmodule.New(g)
	primal := primalmodule.New(g, dual, cfg.pluginList, cfg.growingStrategy, cfg.clusterNodeLimit, cfg.logger)
	return &Solver{g: g, dual: dual, primal: primal, cfg: cfg}
}

// Solve decodes one syndrome: it applies pattern to the underlying
// hypergraph, runs the growth/conflict loop to completion or timeout, and
// returns the extracted subgraph and weight bounds.
func (s *Solver) Solve(pattern hypergraph.SyndromePattern) (Result, error) {
	if err := s.g.SetSyndrome(pattern); err != nil {
		return Result{}, err
	}
	if s.cfg.timeout > 0 {
		s.primal.SetDeadline(time.Now().Add(s.cfg.timeout))
	}
	r := s.primal.Decode(pattern.DefectVertices)
	return Result{
		Subgraph:    r.Subgraph,
		WeightRange: WeightRange{Lower: r.LowerBound, Upper: r.UpperBound},
		TimedOut:    r.TimedOut,
	}, nil
}

// Clear resets the dual module, the primal module, and the hypergraph's
// syndrome/erasure state, so the same Solver can be reused for a fresh
// syndrome over the same Initializer without any state bleeding through.
func (s *Solver) Clear() {
	s.primal.Reset()
	s.g.Clear()
}
