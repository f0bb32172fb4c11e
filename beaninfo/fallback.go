package beaninfo

import (
	"reflect"
	"strings"
)

// ConventionFactory is the universal fallback: it derives properties from the
// accessor naming convention alone, with no structural metadata. It claims
// every type, so it must sit at the absolute lowest precedence in a chain.
//
// Unlike SchemaFactory it also handles interface types, whose declared
// accessor methods are visible directly on the interface.
type ConventionFactory struct{}

// NewConventionFactory creates the convention-based fallback factory.
func NewConventionFactory() *ConventionFactory { return &ConventionFactory{} }

// BeanInfo derives properties from t's method set. t must not be nil.
func (f *ConventionFactory) BeanInfo(t reflect.Type) (*BeanInfo, bool) {
	if t == nil {
		panic("beaninfo: nil type")
	}
	origin := t
	host := t
	switch t.Kind() {
	case reflect.Ptr:
		origin = t.Elem()
	case reflect.Interface:
		// interface methods carry no receiver; used as-is
	default:
		// pointer method set includes pointer-receiver mutators
		host = reflect.PointerTo(t)
	}

	var descriptors []PropertyDescriptor
	seen := make(map[string]bool)
	for i := 0; i < host.NumMethod(); i++ {
		m := host.Method(i)
		name := readerName(m.Name)
		if name == "" || seen[name] {
			continue
		}
		if in, out := arity(host, m); in != 0 || out != 1 {
			continue
		}
		if strings.HasPrefix(m.Name, "Is") && m.Type.Out(0).Kind() != reflect.Bool {
			continue
		}
		seen[name] = true
		d := PropertyDescriptor{Name: name, Getter: m}
		if setter, ok := writerFor(host, m); ok {
			d.Setter = &setter
		}
		descriptors = append(descriptors, d)
	}
	return &BeanInfo{Type: origin, Properties: descriptors}, true
}

// writerFor pairs a reader with its conventional writer: same stem, exactly
// one argument, argument type matching the reader's return type.
func writerFor(host reflect.Type, reader reflect.Method) (reflect.Method, bool) {
	m, ok := host.MethodByName(mutatorName(reader.Name))
	if !ok {
		return reflect.Method{}, false
	}
	if in, _ := arity(host, m); in != 1 {
		return reflect.Method{}, false
	}
	if argType(host, m, 0) != reader.Type.Out(0) {
		return reflect.Method{}, false
	}
	return m, true
}

// arity returns a method's argument and result counts, excluding the
// receiver. Interface methods carry no receiver in their reflected type.
func arity(host reflect.Type, m reflect.Method) (in, out int) {
	in = m.Type.NumIn()
	if host.Kind() != reflect.Interface {
		in--
	}
	return in, m.Type.NumOut()
}

func argType(host reflect.Type, m reflect.Method, i int) reflect.Type {
	if host.Kind() != reflect.Interface {
		i++
	}
	return m.Type.In(i)
}

// Order puts the fallback at the absolute lowest precedence: it always
// produces a result, so nothing after it would ever run.
func (f *ConventionFactory) Order() int { return LowestPrecedence }

var _ Factory = (*ConventionFactory)(nil)
