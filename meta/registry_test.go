package meta

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	label string
}

func (w widget) GetLabel() string   { return w.label }
func (w *widget) SetLabel(v string) { w.label = v }

func widgetInfo() *TypeInfo {
	return &TypeInfo{
		Kind: KindClass,
		Properties: []Property{
			{Name: "label", Mutable: true, GetterName: "GetLabel", SetterName: "SetLabel", Field: "label"},
		},
	}
}

func TestRegisterAndLookup(t *testing.T) {
	Reset()
	defer Reset()

	Register(&widget{}, widgetInfo())

	tests := []struct {
		name      string
		inputType reflect.Type
		found     bool
	}{
		{"ValueType", reflect.TypeOf(widget{}), true},
		{"PointerType", reflect.TypeOf(&widget{}), true},
		{"UnknownType", reflect.TypeOf(struct{}{}), false},
		{"NilType", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := Lookup(tt.inputType)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				require.NotNil(t, info)
				assert.Len(t, info.Properties, 1)
			}
		})
	}
}

func TestRegisterPanicsOnMisuse(t *testing.T) {
	assert.Panics(t, func() { Register(nil, widgetInfo()) })
	assert.Panics(t, func() { Register(&widget{}, nil) })
}

func TestDefaultBridgeResolvesMethods(t *testing.T) {
	Reset()
	defer Reset()

	Register(&widget{}, widgetInfo())
	bridge := DefaultBridge()
	wt := reflect.TypeOf(widget{})

	assert.True(t, bridge.Available())
	assert.True(t, bridge.IsGenerated(wt))
	assert.False(t, bridge.IsGenerated(reflect.TypeOf(struct{}{})))

	info, ok := bridge.TypeInfo(wt)
	require.True(t, ok)
	p := info.Properties[0]

	// Value-receiver reader and pointer-receiver writer both resolve: the
	// bridge maps against the pointer method set.
	getter, ok := bridge.GetterMethod(wt, p)
	require.True(t, ok)
	assert.Equal(t, "GetLabel", getter.Name)

	setter, ok := bridge.SetterMethod(wt, p)
	require.True(t, ok)
	assert.Equal(t, "SetLabel", setter.Name)
}

func TestDefaultBridgeMissingMethods(t *testing.T) {
	bridge := DefaultBridge()
	wt := reflect.TypeOf(widget{})

	_, ok := bridge.GetterMethod(wt, Property{Name: "ghost", GetterName: "GetGhost"})
	assert.False(t, ok)

	// Read-only properties record no setter name at all.
	_, ok = bridge.SetterMethod(wt, Property{Name: "label", GetterName: "GetLabel"})
	assert.False(t, ok)
}

func TestReset(t *testing.T) {
	Register(&widget{}, widgetInfo())
	Reset()

	_, ok := Lookup(reflect.TypeOf(widget{}))
	assert.False(t, ok)
}
