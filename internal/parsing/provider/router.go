package provider

import (
	"finbook/internal/model"
)

// Router selects the ordered provider chain for a region and indexes
// the registered providers by name.
type Router struct {
	chain  []Provider
	byName map[string]Provider
}

// NewRouter builds a router over the available providers, in fallback
// order. Nil entries are skipped so an unconfigured vendor drops out of
// the chain.
func NewRouter(providers ...Provider) *Router {
	chain := make([]Provider, 0, len(providers))
	byName := make(map[string]Provider, len(providers))
	for _, p := range providers {
		if p != nil {
			chain = append(chain, p)
			byName[p.Name()] = p
		}
	}
	return &Router{chain: chain, byName: byName}
}

// Chain returns the providers to try for the given region, in order.
// Region-differentiated routing is not implemented yet: every region
// gets the same chain.
func (r *Router) Chain(region model.Region) []Provider {
	return r.chain
}

// Provider looks up a registered provider by name. Returns nil when no
// provider with that name was registered.
func (r *Router) Provider(name string) Provider {
	return r.byName[name]
}
