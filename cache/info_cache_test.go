package cache

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konsultn-Engineering/beankit/beaninfo"
)

// countingIntrospector records how often it is consulted.
type countingIntrospector struct {
	calls int
	info  *beaninfo.BeanInfo
	ok    bool
}

func (c *countingIntrospector) BeanInfo(t reflect.Type) (*beaninfo.BeanInfo, bool) {
	c.calls++
	return c.info, c.ok
}

func TestInfoCacheMemoizesResults(t *testing.T) {
	target := reflect.TypeOf(struct{ X int }{})
	next := &countingIntrospector{info: &beaninfo.BeanInfo{Type: target}, ok: true}
	cache := NewInfoCache(next, 8)

	first, ok := cache.BeanInfo(target)
	require.True(t, ok)
	second, ok := cache.BeanInfo(target)
	require.True(t, ok)

	assert.Same(t, first, second)
	assert.Equal(t, 1, next.calls)
	assert.Equal(t, 1, cache.Len())
}

func TestInfoCachePassesThroughBackOffs(t *testing.T) {
	next := &countingIntrospector{}
	cache := NewInfoCache(next, 8)
	target := reflect.TypeOf(struct{ Y int }{})

	_, ok := cache.BeanInfo(target)
	assert.False(t, ok)
	_, ok = cache.BeanInfo(target)
	assert.False(t, ok)

	// Declines are not cached: the chain may be able to resolve later.
	assert.Equal(t, 2, next.calls)
	assert.Equal(t, 0, cache.Len())
}

func TestInfoCachePurge(t *testing.T) {
	target := reflect.TypeOf(struct{ Z int }{})
	next := &countingIntrospector{info: &beaninfo.BeanInfo{Type: target}, ok: true}
	cache := NewInfoCache(next, 8)

	_, ok := cache.BeanInfo(target)
	require.True(t, ok)
	cache.Purge()
	assert.Equal(t, 0, cache.Len())

	_, ok = cache.BeanInfo(target)
	require.True(t, ok)
	assert.Equal(t, 2, next.calls)
}

func TestInfoCacheDefaultSize(t *testing.T) {
	next := &countingIntrospector{}
	assert.NotNil(t, NewInfoCache(next, 0))
	assert.NotNil(t, NewInfoCache(next, -3))
}
