package beaninfo

import (
	"reflect"

	"github.com/Konsultn-Engineering/beankit/meta"
)

// SchemaFactory resolves properties of schema-generated types by reconciling
// the compiler-recorded structural metadata against the live host method
// table. It backs off for interfaces and for types the schema runtime does
// not recognize, so the convention fallback can handle them.
//
// Each call computes its result from scratch; callers that introspect hot
// types repeatedly should wrap the chain in a cache.
type SchemaFactory struct {
	bridge meta.Bridge
}

// NewSchemaFactory creates a factory over the given bridge. A nil bridge
// selects the registry-backed default.
func NewSchemaFactory(bridge meta.Bridge) *SchemaFactory {
	if bridge == nil {
		bridge = meta.DefaultBridge()
	}
	return &SchemaFactory{bridge: bridge}
}

// BeanInfo resolves t's properties, or backs off when t is not eligible.
// Pointer types are introspected as their element type. t must not be nil.
func (f *SchemaFactory) BeanInfo(t reflect.Type) (*BeanInfo, bool) {
	if t == nil {
		panic("beaninfo: nil type")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if !f.eligible(t) {
		return nil, false
	}
	info, ok := f.bridge.TypeInfo(t)
	if !ok {
		return nil, false
	}

	descriptors := make([]PropertyDescriptor, 0, len(info.Properties))
	for _, p := range f.enumerate(info) {
		d, ok := f.resolve(t, p)
		if !ok {
			continue
		}
		descriptors = append(descriptors, d)
	}
	return &BeanInfo{Type: t, Properties: descriptors}, true
}

// eligible gates the engine. Interfaces are left to the convention
// introspector, which already handles interface-declared accessors; running
// both would risk conflicting descriptors. Types without schema metadata have
// nothing to reconcile against.
func (f *SchemaFactory) eligible(t reflect.Type) bool {
	if t.Kind() == reflect.Interface {
		return false
	}
	if !f.bridge.Available() || !f.bridge.IsGenerated(t) {
		return false
	}
	return true
}

// enumerate yields property candidates in declaration order, excluding the
// synthetic all-instances member of enum types. The name check alone is not
// enough: an author-declared "entries" property on a non-enum type must
// survive, so both conditions are required.
func (f *SchemaFactory) enumerate(info *meta.TypeInfo) []meta.Property {
	candidates := make([]meta.Property, 0, len(info.Properties))
	for _, p := range info.Properties {
		if info.Kind == meta.KindEnum && p.Name == meta.EntriesProperty {
			continue
		}
		candidates = append(candidates, p)
	}
	return candidates
}

// resolve reconciles one candidate against the host method table. The bridge
// mapping is authoritative: wrapper-typed accessors carry a compiler-mangled
// suffix, and the mapped method's literal name is stored as-is — the suffix
// is never reconstructed here. A candidate whose reader cannot be mapped is
// dropped. Read-only properties, including default-valued ones, get no
// mutator: their state is fixed at construction time.
func (f *SchemaFactory) resolve(t reflect.Type, p meta.Property) (PropertyDescriptor, bool) {
	getter, ok := f.bridge.GetterMethod(t, p)
	if !ok {
		return PropertyDescriptor{}, false
	}
	d := PropertyDescriptor{Name: p.Name, Getter: getter}
	if p.Mutable {
		if setter, ok := f.bridge.SetterMethod(t, p); ok {
			d.Setter = &setter
		}
	}
	return d, true
}

// Order places the factory just above the universal convention fallback,
// leaving room for custom factories to intercede.
func (f *SchemaFactory) Order() int { return LowestPrecedence - 10 }

var _ Factory = (*SchemaFactory)(nil)
