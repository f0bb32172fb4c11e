// Package beaninfo resolves the named properties of a type together with
// their host-visible accessor and mutator methods, so that reflection-driven
// consumers (binding, mapping, validation) can treat schema-generated types
// exactly like hand-written ones.
package beaninfo

import (
	"math"
	"reflect"
)

// Precedence bounds for factories in a Chain. Lower order runs first.
const (
	HighestPrecedence = math.MinInt32
	LowestPrecedence  = math.MaxInt32
)

// PropertyDescriptor pairs a property name with its resolved host accessors.
// Getter is always present; a descriptor is never emitted without a readable
// accessor. Setter is nil for read-only properties.
type PropertyDescriptor struct {
	Name   string
	Getter reflect.Method
	Setter *reflect.Method
}

// Writable reports whether the property has a resolved mutator.
func (d PropertyDescriptor) Writable() bool { return d.Setter != nil }

// BeanInfo is the resolved property set of a single type. Type identifies the
// originating type for consumers that need it alongside the property list.
type BeanInfo struct {
	Type       reflect.Type
	Properties []PropertyDescriptor
}

// Property returns the descriptor with the given name.
func (b *BeanInfo) Property(name string) (PropertyDescriptor, bool) {
	for _, d := range b.Properties {
		if d.Name == name {
			return d, true
		}
	}
	return PropertyDescriptor{}, false
}

// Names returns the property names in enumeration order.
func (b *BeanInfo) Names() []string {
	names := make([]string, len(b.Properties))
	for i, d := range b.Properties {
		names[i] = d.Name
	}
	return names
}

// Factory produces BeanInfo for types it recognizes. A false return is an
// explicit back-off: the factory declines the type and leaves it to
// lower-precedence factories in the chain. Factories must be stateless and
// safe for concurrent use.
type Factory interface {
	// BeanInfo resolves the properties of t. t must not be nil.
	BeanInfo(t reflect.Type) (*BeanInfo, bool)

	// Order is the factory's precedence in a Chain; lower runs first.
	Order() int
}
