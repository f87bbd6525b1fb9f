package domain

import (
	"testing"

	m "github.com/nwave-fx/fxpipe/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemHandler_AddAndLookup(t *testing.T) {
	h := NewItemHandler()
	item := testSource("cube")

	require.NoError(t, h.AddItem(m.RoleSource, item))

	assert.True(t, h.HasItem(m.RoleSource, "cube"))
	assert.False(t, h.HasItem(m.RoleDestination, "cube"))

	got, err := h.Item(m.RoleSource, "cube")
	require.NoError(t, err)
	assert.Same(t, item, got)

	items, err := h.Items(m.RoleSource)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestItemHandler_AddItem_ReplacesSameKey(t *testing.T) {
	h := NewItemHandler()
	first := testSource("cube")
	second := testSource("cube")

	require.NoError(t, h.AddItem(m.RoleSource, first))
	require.NoError(t, h.AddItem(m.RoleSource, second))

	got, err := h.Item(m.RoleSource, "cube")
	require.NoError(t, err)
	assert.Same(t, second, got)
}

func TestItemHandler_Missing(t *testing.T) {
	h := NewItemHandler()

	_, err := h.Item(m.RoleDestination, "ghost")
	require.ErrorIs(t, err, m.ErrItemNotFound)
	assert.Contains(t, err.Error(), `destination "ghost"`)

	require.ErrorIs(t, h.RemoveItem(m.RoleSource, "ghost"), m.ErrItemNotFound)
}

func TestItemHandler_InvalidRole(t *testing.T) {
	h := NewItemHandler()
	bad := m.Role(7)

	require.ErrorIs(t, h.AddItem(bad, testSource("cube")), m.ErrInvalidRole)
	_, err := h.Items(bad)
	require.ErrorIs(t, err, m.ErrInvalidRole)
	require.ErrorIs(t, h.Clear(bad), m.ErrInvalidRole)
	assert.False(t, h.HasItem(bad, "cube"))
}

func TestItemHandler_RemoveAndClear(t *testing.T) {
	h := NewItemHandler()
	require.NoError(t, h.AddItem(m.RoleSource, testSource("a")))
	require.NoError(t, h.AddItem(m.RoleSource, testSource("b")))

	require.NoError(t, h.RemoveItem(m.RoleSource, "a"))
	assert.False(t, h.HasItem(m.RoleSource, "a"))

	require.NoError(t, h.Clear(m.RoleSource))
	items, err := h.Items(m.RoleSource)
	require.NoError(t, err)
	assert.Empty(t, items)
}
