package visualize

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"
	"github.com/mwpf-decode/mwpf/dualmodule"
	"github.com/mwpf-decode/mwpf/hypergraph"
)

// Sink is a write-only JSON snapshot stream: each Emit call captures the
// current decoder state and writes one newline-delimited JSON document. The
// decoder never reads from a Sink; it exists purely for external viewers.
type Sink struct {
	enc *json.Encoder
}

// NewSink wraps w as a snapshot stream.
func NewSink(w io.Writer) *Sink {
	return &Sink{enc: json.NewEncoder(w)}
}

// Emit captures the current state of g and dual and writes it as one JSON
// document, tagged with a fresh snapshot id so a sequence of snapshots
// taken across one decode can be told apart.
func (s *Sink) Emit(g *hypergraph.DecodingHyperGraph, dual *dualmodule.Module) error {
	snap := Capture(uuid.NewString(), g, dual)
	return s.enc.Encode(snap)
}
