package domain

import (
	"testing"

	m "github.com/nwave-fx/fxpipe/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionHandler_AddConnection_Symmetric(t *testing.T) {
	h := NewConnectionHandler()
	a, b := testSource("a"), testDestination("b")

	h.AddConnection(a, b)
	h.AddConnection(b, a)

	require.Len(t, h.EffectiveConnections(a), 1)
	assert.True(t, h.IsConnected(a, b))
	assert.True(t, h.IsConnected(b, a))
}

func TestConnectionHandler_AddOverride_UnsuppressesFirst(t *testing.T) {
	h := NewConnectionHandler()
	a, b := testSource("a"), testDestination("b")

	h.AddConnection(a, b)
	h.RemoveOverride(a, b)
	require.False(t, h.IsConnected(a, b))
	require.Len(t, h.SuppressedConnections(a), 1)

	h.AddOverride(b, a)

	assert.True(t, h.IsConnected(a, b))
	assert.Empty(t, h.SuppressedConnections(a))
	assert.Empty(t, h.ExtraConnections(a))
}

func TestConnectionHandler_RemoveOverride_DropsExtraFirst(t *testing.T) {
	h := NewConnectionHandler()
	a, b := testSource("a"), testDestination("b")

	h.AddOverride(a, b)
	require.True(t, h.IsConnected(a, b))
	require.Len(t, h.ExtraConnections(b), 1)

	h.RemoveOverride(a, b)

	assert.False(t, h.IsConnected(a, b))
	assert.Empty(t, h.ExtraConnections(a))
	assert.Empty(t, h.SuppressedConnections(a))
}

func TestConnectionHandler_Overrides_Idempotent(t *testing.T) {
	h := NewConnectionHandler()
	a, b := testSource("a"), testDestination("b")

	h.AddOverride(a, b)
	h.AddOverride(a, b)
	assert.Len(t, h.ExtraConnections(a), 1)

	h.RemoveOverride(a, b)
	h.RemoveOverride(a, b)
	assert.Empty(t, h.ExtraConnections(a))
	assert.Len(t, h.SuppressedConnections(a), 1)
}

func TestConnectionHandler_ExtraAndSuppressedStayDisjoint(t *testing.T) {
	h := NewConnectionHandler()
	a := testSource("a")
	b, c := testDestination("b"), testDestination("c")

	ops := []func(){
		func() { h.AddOverride(a, b) },
		func() { h.RemoveOverride(a, b) },
		func() { h.RemoveOverride(a, b) },
		func() { h.AddOverride(a, c) },
		func() { h.AddOverride(a, b) },
		func() { h.RemoveOverride(c, a) },
		func() { h.AddOverride(a, b) },
	}

	for _, op := range ops {
		op()

		extra := keys(h.ExtraConnections(a))
		for _, k := range keys(h.SuppressedConnections(a)) {
			assert.NotContains(t, extra, k)
		}
	}
}

func TestConnectionHandler_EffectiveSet(t *testing.T) {
	h := NewConnectionHandler()
	a := testSource("a")
	b, c, d := testDestination("b"), testDestination("c"), testDestination("d")

	h.AddConnection(a, b)
	h.AddConnection(a, c)
	h.RemoveOverride(a, c)
	h.AddOverride(a, d)

	got := keys(h.EffectiveConnections(a))
	assert.ElementsMatch(t, []m.ConnectionKey{
		m.NewConnection(a, b).Key(),
		m.NewConnection(a, d).Key(),
	}, got)
}

func TestConnectionHandler_ClearBase_KeepsOverrides(t *testing.T) {
	h := NewConnectionHandler()
	a := testSource("a")
	b, c := testDestination("b"), testDestination("c")

	h.AddConnection(a, b)
	h.AddOverride(a, c)
	h.RemoveOverride(a, b)
	h.ClearBase()

	assert.Len(t, h.ExtraConnections(a), 1)
	assert.Len(t, h.SuppressedConnections(a), 1)

	h.AddConnection(a, b)
	assert.False(t, h.IsConnected(a, b))
	assert.True(t, h.IsConnected(a, c))
}

func TestConnectionHandler_ClearItemOverrides(t *testing.T) {
	h := NewConnectionHandler()
	a, z := testSource("a"), testSource("z")
	b, c := testDestination("b"), testDestination("c")

	h.AddConnection(a, b)
	h.RemoveOverride(a, b)
	h.AddOverride(a, c)
	h.AddOverride(z, c)

	h.ClearItemOverrides(a)

	assert.True(t, h.IsConnected(a, b))
	assert.False(t, h.IsConnected(a, c))
	assert.True(t, h.IsConnected(z, c))
}

func TestConnectionHandler_PruneItem(t *testing.T) {
	h := NewConnectionHandler()
	a := testSource("a")
	b, c := testDestination("b"), testDestination("c")

	h.AddConnection(a, b)
	h.AddOverride(a, c)
	h.PruneItem(a)

	assert.Empty(t, h.EffectiveConnections(a))
	assert.Empty(t, h.EffectiveConnections(b))
	assert.Empty(t, h.ExtraConnections(c))

	h.AddConnection(a, b)
	h.ClearAll()
	assert.False(t, h.IsConnected(a, b))
}
