package repository

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/Konsultn-Engineering/beankit/beaninfo"
	"github.com/Konsultn-Engineering/beankit/meta"
)

// Property access helpers shared by the repository implementations. Entities
// are pointer values; readers go through the resolved accessor methods, and
// writes fall back to the schema-recorded backing field when a property has
// no mutator.

// readProperty invokes the property's reader against the entity pointer.
func readProperty(entity reflect.Value, d beaninfo.PropertyDescriptor) reflect.Value {
	return d.Getter.Func.Call([]reflect.Value{entity})[0]
}

// writeProperty assigns val to the property on entity, preferring the
// resolved mutator. Read-only properties are populated through their backing
// field by offset, mirroring construction-time initialization.
func writeProperty(entity reflect.Value, d beaninfo.PropertyDescriptor, field string, val reflect.Value) error {
	if d.Setter != nil {
		converted, err := convertValue(val, d.Setter.Type.In(1))
		if err != nil {
			return fmt.Errorf("property %s: %w", d.Name, err)
		}
		d.Setter.Func.Call([]reflect.Value{entity, converted})
		return nil
	}

	if field == "" {
		return fmt.Errorf("property %s is read-only and has no backing field", d.Name)
	}
	f, ok := entity.Type().Elem().FieldByName(field)
	if !ok {
		return fmt.Errorf("property %s: no backing field %q", d.Name, field)
	}
	converted, err := convertValue(val, f.Type)
	if err != nil {
		return fmt.Errorf("property %s: %w", d.Name, err)
	}
	target := reflect.NewAt(f.Type, unsafe.Add(unsafe.Pointer(entity.Pointer()), f.Offset)).Elem()
	target.Set(converted)
	return nil
}

// convertValue adapts val to the target type, constructing single-field
// value wrappers around convertible underlying values.
func convertValue(val reflect.Value, target reflect.Type) (reflect.Value, error) {
	if !val.IsValid() {
		return reflect.Zero(target), nil
	}
	if val.Type() == target {
		return val, nil
	}
	if val.Type().ConvertibleTo(target) {
		return val.Convert(target), nil
	}
	if isWrapper(target) {
		inner, err := convertValue(val, target.Field(0).Type)
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.New(target).Elem()
		reflect.NewAt(inner.Type(), unsafe.Pointer(out.Field(0).UnsafeAddr())).Elem().Set(inner)
		return out, nil
	}
	return reflect.Value{}, fmt.Errorf("cannot assign %s to %s", val.Type(), target)
}

// unwrap flattens a single-field value wrapper to its underlying value so
// database drivers see the primitive representation.
func unwrap(v reflect.Value) reflect.Value {
	if !isWrapper(v.Type()) {
		return v
	}
	tmp := reflect.New(v.Type()).Elem()
	tmp.Set(v)
	inner := tmp.Field(0)
	return reflect.NewAt(inner.Type(), unsafe.Pointer(inner.UnsafeAddr())).Elem()
}

// isWrapper matches the shape the schema compiler emits for value-wrapper
// types: a struct boxing exactly one unexported value.
func isWrapper(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.NumField() == 1 && t.Field(0).PkgPath != ""
}

// backingField returns the schema-recorded backing field for a property, or
// "" when the type or property is not registered.
func backingField(t reflect.Type, property string) string {
	info, ok := meta.Lookup(t)
	if !ok {
		return ""
	}
	for _, p := range info.Properties {
		if p.Name == property {
			return p.Field
		}
	}
	return ""
}
