package beaninfo

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFactory claims every type and tags its output so tests can tell which
// factory produced a result.
type stubFactory struct {
	order int
	tag   string
}

func (s stubFactory) BeanInfo(t reflect.Type) (*BeanInfo, bool) {
	return &BeanInfo{Type: t, Properties: []PropertyDescriptor{{Name: s.tag}}}, true
}

func (s stubFactory) Order() int { return s.order }

func TestChainOrdersByPrecedence(t *testing.T) {
	// Constructed out of order on purpose: the chain must sort ascending.
	chain := NewChain(
		stubFactory{order: 100, tag: "late"},
		stubFactory{order: -5, tag: "early"},
		stubFactory{order: 0, tag: "middle"},
	)

	info, ok := chain.BeanInfo(reflect.TypeOf(struct{}{}))
	require.True(t, ok)
	assert.Equal(t, "early", info.Properties[0].Name)
}

func TestChainFallsThroughBackOffs(t *testing.T) {
	chain := NewChain(NewSchemaFactory(nil), stubFactory{order: LowestPrecedence, tag: "fallback"})

	// Unregistered type: the schema factory backs off, the stub claims it.
	info, ok := chain.BeanInfo(reflect.TypeOf(struct{ X int }{}))
	require.True(t, ok)
	assert.Equal(t, "fallback", info.Properties[0].Name)

	// Registered type: the schema factory runs first and wins.
	info, ok = chain.BeanInfo(reflect.TypeOf(person{}))
	require.True(t, ok)
	assert.Equal(t, []string{"id", "name"}, info.Names())
}

func TestChainWithoutFallbackCanDecline(t *testing.T) {
	chain := NewChain(NewSchemaFactory(nil))

	info, ok := chain.BeanInfo(reflect.TypeOf(gadget{}))
	assert.False(t, ok)
	assert.Nil(t, info)
}

func TestDefaultChain(t *testing.T) {
	chain := Default()

	// Generated type: resolved through schema metadata, lower-camel names.
	info, ok := chain.BeanInfo(reflect.TypeOf(person{}))
	require.True(t, ok)
	assert.Equal(t, []string{"id", "name"}, info.Names())

	// Plain type: resolved by the convention fallback.
	info, ok = chain.BeanInfo(reflect.TypeOf(gadget{}))
	require.True(t, ok)
	_, found := info.Property("serial")
	assert.True(t, found)
}

func TestCustomFactoryIntercedes(t *testing.T) {
	custom := stubFactory{order: 0, tag: "custom"}
	chain := NewChain(NewConventionFactory(), NewSchemaFactory(nil), custom)

	// Custom factories run before the schema factory even for generated types.
	info, ok := chain.BeanInfo(reflect.TypeOf(person{}))
	require.True(t, ok)
	assert.Equal(t, "custom", info.Properties[0].Name)
}
