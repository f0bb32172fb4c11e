package meta

import (
	"reflect"
	"sync"
)

var registry sync.Map // map[reflect.Type]*TypeInfo

// Register records structural metadata for a generated type. Generated code
// calls this from package init; target may be T or *T.
func Register(target any, info *TypeInfo) {
	t := reflect.TypeOf(target)
	if t == nil {
		panic("meta: nil registration target")
	}
	if info == nil {
		panic("meta: nil type info")
	}
	registry.Store(normalize(t), info)
}

// Lookup returns the recorded metadata for t, dereferencing pointer types.
func Lookup(t reflect.Type) (*TypeInfo, bool) {
	if t == nil {
		return nil, false
	}
	if info, ok := registry.Load(normalize(t)); ok {
		return info.(*TypeInfo), true
	}
	return nil, false
}

// Reset clears all registrations. Test helper.
func Reset() {
	registry.Range(func(k, _ any) bool {
		registry.Delete(k)
		return true
	})
}

func normalize(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

type registryBridge struct{}

// DefaultBridge returns the Bridge backed by the process-wide registry.
func DefaultBridge() Bridge { return registryBridge{} }

func (registryBridge) Available() bool { return true }

func (registryBridge) IsGenerated(t reflect.Type) bool {
	_, ok := Lookup(t)
	return ok
}

func (registryBridge) TypeInfo(t reflect.Type) (*TypeInfo, bool) {
	return Lookup(t)
}

func (registryBridge) GetterMethod(t reflect.Type, p Property) (reflect.Method, bool) {
	return hostMethod(t, p.GetterName)
}

func (registryBridge) SetterMethod(t reflect.Type, p Property) (reflect.Method, bool) {
	return hostMethod(t, p.SetterName)
}

// hostMethod resolves a method against the pointer type so pointer-receiver
// mutators are visible alongside value-receiver accessors.
func hostMethod(t reflect.Type, name string) (reflect.Method, bool) {
	if name == "" {
		return reflect.Method{}, false
	}
	if t.Kind() != reflect.Ptr && t.Kind() != reflect.Interface {
		t = reflect.PointerTo(t)
	}
	return t.MethodByName(name)
}

var _ Bridge = registryBridge{}
