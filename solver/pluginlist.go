package solver

import (
	"fmt"

	"github.com/mwpf-decode/mwpf/plugins"
)

// PluginSpec names one entry of an ordered PluginList: a recognized
// identifier plus whatever configuration that identifier takes.
type PluginSpec struct {
	// Name is one of "union_find", "single_hair.once", or
	// "single_hair.multiple".
	Name string
	// MaxRepetition configures "single_hair.multiple": the round cap for
	// its per-cluster fixed-point loop. Zero means "until fixed point".
	MaxRepetition int
}

// ParsePluginList resolves an ordered list of plugin identifiers into the
// Plugin values primalmodule.Manager consults in that same order.
func ParsePluginList(specs []PluginSpec) ([]plugins.Plugin, error) {
	out := make([]plugins.Plugin, 0, len(specs))
	for _, spec := range specs {
		switch spec.Name {
		case "union_find":
			out = append(out, plugins.UnionFind{})
		case "single_hair.once":
			out = append(out, plugins.Once())
		case "single_hair.multiple":
			out = append(out, plugins.Multiple(spec.MaxRepetition))
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownPlugin, spec.Name)
		}
	}
	return out, nil
}
