package beaninfo

import (
	"reflect"
	"sort"
)

// Chain tries factories in ascending precedence order until one produces a
// result. The factory set is fixed at construction: hosts compose the chain
// once at startup rather than relying on implicit global registration.
type Chain struct {
	factories []Factory
}

// NewChain builds a chain from the given factories, sorted ascending by
// Order. The sort is stable, so equal-order factories keep their given
// relative position.
func NewChain(factories ...Factory) *Chain {
	fs := make([]Factory, len(factories))
	copy(fs, factories)
	sort.SliceStable(fs, func(i, j int) bool { return fs[i].Order() < fs[j].Order() })
	return &Chain{factories: fs}
}

// Default returns the standard chain: the schema factory over the
// process-wide metadata registry, then the universal convention fallback.
func Default() *Chain {
	return NewChain(NewSchemaFactory(nil), NewConventionFactory())
}

// BeanInfo resolves t through the chain. It returns false only when every
// factory backed off, which cannot happen in a chain that includes the
// convention fallback.
func (c *Chain) BeanInfo(t reflect.Type) (*BeanInfo, bool) {
	for _, f := range c.factories {
		if info, ok := f.BeanInfo(t); ok {
			return info, true
		}
	}
	return nil, false
}
