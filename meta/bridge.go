package meta

import "reflect"

// Kind classifies the declaration form of a generated type.
type Kind int

const (
	KindClass Kind = iota
	KindEnum
)

// EntriesProperty is the reserved name of the synthetic property the schema
// compiler adds to enum types, exposing the full set of enum instances.
const EntriesProperty = "entries"

// Property is one structural member of a generated type, as recorded by the
// schema compiler. GetterName and SetterName are the literal host method
// names, including any mangling suffix the compiler appended for
// wrapper-typed signatures. They are authoritative: consumers must resolve
// methods by these exact names, never by reconstructing them.
type Property struct {
	Name       string // declared property name, e.g. "firstName"
	Mutable    bool   // declared assignable (var) rather than read-only (val)
	HasDefault bool   // declared with a construction-time default value
	Wrapped    bool   // value-wrapper typed; accessor names carry a mangled suffix
	GetterName string
	SetterName string // empty for read-only properties
	Field      string // backing struct field, for construction-time population
}

// TypeInfo is the structural metadata of a single generated type. Properties
// appear in declaration order.
type TypeInfo struct {
	Kind       Kind
	Properties []Property
}

// Bridge exposes the schema runtime's view of generated types. The production
// bridge is backed by the process-wide registry; tests can substitute a fake
// to exercise back-off paths.
type Bridge interface {
	// Available reports whether the schema runtime is linked into this binary.
	Available() bool

	// IsGenerated reports whether t was produced by the schema compiler.
	IsGenerated(t reflect.Type) bool

	// TypeInfo returns the recorded structural metadata for t.
	TypeInfo(t reflect.Type) (*TypeInfo, bool)

	// GetterMethod maps a property to its host-visible reader method.
	GetterMethod(t reflect.Type, p Property) (reflect.Method, bool)

	// SetterMethod maps a property to its host-visible writer method.
	SetterMethod(t reflect.Type, p Property) (reflect.Method, bool)
}
