package source

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SanaBenHammouda/PI-With-Monte-Carlo/types"
)

// Names of the built-in seeded sources.
const (
	NamePCG = "pcg"
	NameLCG = "lcg"
)

var factories = map[string]types.SourceFactory{
	NamePCG: PCGFactory,
	NameLCG: LCGFactory,
}

// ByName returns the factory registered under name.
//
// An empty name selects PCG. Only seeded sources are registered, since
// worker processes must be able to rebuild the same source from a task.
func ByName(name string) (types.SourceFactory, error) {
	if name == "" {
		name = NamePCG
	}
	f, ok := factories[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown point source %q (known: %s)",
			types.ErrInvalidArgument, name, strings.Join(Names(), ", "))
	}

	return f, nil
}

// Names lists the registered source names in sorted order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for n := range factories {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
