package lint

import (
	"fmt"
	"sort"
)

// Registry maps rule codes to factories. It is built once at startup
// and validated for duplicates there; afterwards it is read-only, so
// concurrent lookups from parallel lint workers need no locking.
type Registry struct {
	factories map[string]Factory
	codes     []string // sorted
}

// NewRegistry builds a registry from factories, rejecting duplicate or
// malformed codes.
func NewRegistry(factories []Factory) (*Registry, error) {
	reg := &Registry{
		factories: make(map[string]Factory, len(factories)),
		codes:     make([]string, 0, len(factories)),
	}
	for _, factory := range factories {
		code := factory().Code()
		if err := ValidateCode(code); err != nil {
			return nil, err
		}
		if _, exists := reg.factories[code]; exists {
			return nil, fmt.Errorf("duplicate rule code %q", code)
		}
		reg.factories[code] = factory
		reg.codes = append(reg.codes, code)
	}
	sort.Strings(reg.codes)
	return reg, nil
}

// Codes returns all registered codes in sorted order.
func (r *Registry) Codes() []string {
	out := make([]string, len(r.codes))
	copy(out, r.codes)
	return out
}

// Get returns the factory for a code.
func (r *Registry) Get(code string) (Factory, bool) {
	f, ok := r.factories[code]
	return f, ok
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	return len(r.factories)
}

// Select resolves an include/exclude pair into concrete factories, in
// sorted code order. An empty include list means all rules. Unknown
// codes in either list are an error so configuration typos surface
// instead of silently linting with the wrong set.
func (r *Registry) Select(include, exclude []string) ([]Factory, error) {
	for _, code := range append(append([]string{}, include...), exclude...) {
		if _, ok := r.factories[code]; !ok {
			return nil, fmt.Errorf("unknown rule code %q", code)
		}
	}

	wanted := make(map[string]bool, len(r.codes))
	if len(include) == 0 {
		for _, code := range r.codes {
			wanted[code] = true
		}
	} else {
		for _, code := range include {
			wanted[code] = true
		}
	}
	for _, code := range exclude {
		delete(wanted, code)
	}

	out := make([]Factory, 0, len(wanted))
	for _, code := range r.codes {
		if wanted[code] {
			out = append(out, r.factories[code])
		}
	}
	return out, nil
}
