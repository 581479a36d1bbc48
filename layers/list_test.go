package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-conf-layers/origin"
)

func namedLayer(name string, kv ...string) *MapLayer {
	b := NewMapBuilder(name)
	for i := 0; i+1 < len(kv); i += 2 {
		b.Put(kv[i], kv[i+1])
	}
	return b.Build()
}

// ── ordering operations ───────────────────────────────────────────────────────

func TestNewList_KeepsGivenOrder(t *testing.T) {
	list := NewList(namedLayer("a"), namedLayer("b"), namedLayer("c"))

	assert.Equal(t, []string{"a", "b", "c"}, list.Names())
	assert.Equal(t, 3, list.Len())
}

func TestAddFirst_HighestPriority(t *testing.T) {
	list := NewList(namedLayer("a"), namedLayer("b"))

	list.AddFirst(namedLayer("top"))

	assert.Equal(t, []string{"top", "a", "b"}, list.Names())
}

func TestAddLast_LowestPriority(t *testing.T) {
	list := NewList(namedLayer("a"), namedLayer("b"))

	list.AddLast(namedLayer("bottom"))

	assert.Equal(t, []string{"a", "b", "bottom"}, list.Names())
}

// TestAddFirst_ReplacesSameName verifies that re-adding a layer under an
// existing name relocates it instead of duplicating it.
func TestAddFirst_ReplacesSameName(t *testing.T) {
	list := NewList(namedLayer("a"), namedLayer("b", "k", "old"))

	list.AddFirst(namedLayer("b", "k", "new"))

	assert.Equal(t, []string{"b", "a"}, list.Names())
	v, ok := list.Resolve("k")
	require.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestInsertBefore_PlacesAheadOfAnchor(t *testing.T) {
	list := NewList(namedLayer("a"), namedLayer("b"), namedLayer("c"))

	err := list.InsertBefore("b", namedLayer("x"))

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "x", "b", "c"}, list.Names())
}

func TestInsertAfter_PlacesBehindAnchor(t *testing.T) {
	list := NewList(namedLayer("a"), namedLayer("b"), namedLayer("c"))

	err := list.InsertAfter("b", namedLayer("x"))

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "x", "c"}, list.Names())
}

func TestInsertBefore_MissingAnchor(t *testing.T) {
	list := NewList(namedLayer("a"))

	err := list.InsertBefore("nope", namedLayer("x"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLayerNotFound)
	assert.Equal(t, []string{"a"}, list.Names())
}

func TestInsertBefore_SelfAnchor(t *testing.T) {
	list := NewList(namedLayer("a"))

	err := list.InsertBefore("x", namedLayer("x"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSelfAnchor)
}

func TestReplace_SwapsInPlace(t *testing.T) {
	list := NewList(namedLayer("a"), namedLayer("b", "k", "old"), namedLayer("c"))

	err := list.Replace("b", namedLayer("b", "k", "new"))

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, list.Names())
	v, _ := list.Resolve("k")
	assert.Equal(t, "new", v)
}

func TestReplace_MissingName(t *testing.T) {
	list := NewList(namedLayer("a"))

	err := list.Replace("nope", namedLayer("nope"))

	assert.ErrorIs(t, err, ErrLayerNotFound)
}

func TestRemove_ReturnsRemovedLayer(t *testing.T) {
	list := NewList(namedLayer("a"), namedLayer("b"))

	removed := list.Remove("a")

	require.NotNil(t, removed)
	assert.Equal(t, "a", removed.Name())
	assert.Equal(t, []string{"b"}, list.Names())
	assert.Nil(t, list.Remove("a"))
}

func TestGet_ByName(t *testing.T) {
	list := NewList(namedLayer("a"), namedLayer("b"))

	layer, ok := list.Get("b")
	require.True(t, ok)
	assert.Equal(t, "b", layer.Name())

	_, ok = list.Get("missing")
	assert.False(t, ok)
}

// ── Resolve ───────────────────────────────────────────────────────────────────

// TestResolve_FirstLayerWins verifies that a key defined in several layers
// resolves to the highest-priority definition.
func TestResolve_FirstLayerWins(t *testing.T) {
	list := NewList(
		namedLayer("high", "k", "winner"),
		namedLayer("low", "k", "loser", "only-low", "fallback"),
	)

	v, ok := list.Resolve("k")
	require.True(t, ok)
	assert.Equal(t, "winner", v)

	v, ok = list.Resolve("only-low")
	require.True(t, ok)
	assert.Equal(t, "fallback", v)

	_, ok = list.Resolve("absent")
	assert.False(t, ok)
}

func TestResolve_UnwrapsOriginTrackedValues(t *testing.T) {
	tracked := NewMapBuilder("json").
		Put("a.b", origin.New("c", "systemEnvironment", "SPRING_APPLICATION_JSON")).
		Build()
	list := NewList(tracked)

	v, ok := list.Resolve("a.b")

	require.True(t, ok)
	assert.Equal(t, "c", v)
}
