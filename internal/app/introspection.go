package app

import (
	"context"
	"slices"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

const (
	introspectionGraphName   = "introspection-graph-mermaid"
	introspectionConfigsName = "introspection-configs"
)

// MermaidGraphIntrospector publishes the wiring of the task agent for the
// /introspect page: a Mermaid graph of the dependency report and the config
// keys that were read, sorted by key.
type MermaidGraphIntrospector struct{}

func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	depend.RegisterNamed(mermaid.GenerateIntrospectionGraph(r), introspectionGraphName)

	configs := slices.Clone(r.Configs)
	slices.SortStableFunc(configs, func(a, b introspection.ConfigAccess) int {
		return strings.Compare(a.Key, b.Key)
	})
	depend.RegisterNamed(configs, introspectionConfigsName)
	return nil
}
