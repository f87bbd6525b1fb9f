package domain

import (
	m "github.com/nwave-fx/fxpipe/internal/model"
)

type connectionSet map[m.ConnectionKey]m.Connection

func (s connectionSet) add(c m.Connection) {
	s[c.Key()] = c
}

func (s connectionSet) has(c m.Connection) bool {
	_, ok := s[c.Key()]

	return ok
}

func (s connectionSet) remove(c m.Connection) {
	delete(s, c.Key())
}

func (s connectionSet) touching(item *m.Item) []m.Connection {
	var result []m.Connection

	for _, c := range s {
		if c.Has(item) {
			result = append(result, c)
		}
	}

	return result
}

// ConnectionHandler keeps the detected (base) connections and the user
// overrides layered on top of them. The effective set is
// (base | extra) - suppressed, and extra and suppressed never share a pair.
type ConnectionHandler struct {
	base       connectionSet
	extra      connectionSet
	suppressed connectionSet
}

// NewConnectionHandler returns an empty ConnectionHandler.
func NewConnectionHandler() *ConnectionHandler {
	return &ConnectionHandler{
		base:       connectionSet{},
		extra:      connectionSet{},
		suppressed: connectionSet{},
	}
}

// AddConnection records a detected pair.
func (h *ConnectionHandler) AddConnection(source, destination *m.Item) {
	h.base.add(m.NewConnection(source, destination))
}

// AddOverride forces a pair on. A suppressed pair is un-suppressed instead of
// being recorded as extra.
func (h *ConnectionHandler) AddOverride(source, destination *m.Item) {
	c := m.NewConnection(source, destination)
	if h.suppressed.has(c) {
		h.suppressed.remove(c)

		return
	}

	h.extra.add(c)
}

// RemoveOverride forces a pair off. An extra pair is dropped instead of being
// recorded as suppressed.
func (h *ConnectionHandler) RemoveOverride(source, destination *m.Item) {
	c := m.NewConnection(source, destination)
	if h.extra.has(c) {
		h.extra.remove(c)

		return
	}

	h.suppressed.add(c)
}

// ClearItemOverrides drops the extra and suppressed pairs referencing item.
func (h *ConnectionHandler) ClearItemOverrides(item *m.Item) {
	for _, c := range h.extra.touching(item) {
		h.extra.remove(c)
	}

	for _, c := range h.suppressed.touching(item) {
		h.suppressed.remove(c)
	}
}

// PruneItem drops every pair referencing item from all three sets.
func (h *ConnectionHandler) PruneItem(item *m.Item) {
	for _, set := range []connectionSet{h.base, h.extra, h.suppressed} {
		for _, c := range set.touching(item) {
			set.remove(c)
		}
	}
}

func (h *ConnectionHandler) effective() connectionSet {
	result := make(connectionSet, len(h.base)+len(h.extra))
	for k, c := range h.base {
		result[k] = c
	}

	for k, c := range h.extra {
		result[k] = c
	}

	for k := range h.suppressed {
		delete(result, k)
	}

	return result
}

// EffectiveConnections returns the effective pairs referencing item.
func (h *ConnectionHandler) EffectiveConnections(item *m.Item) []m.Connection {
	return h.effective().touching(item)
}

// IsConnected reports whether a and b are effectively paired.
func (h *ConnectionHandler) IsConnected(a, b *m.Item) bool {
	c := m.NewConnection(a, b)
	if h.suppressed.has(c) {
		return false
	}

	return h.base.has(c) || h.extra.has(c)
}

// IsDetected reports whether a and b are in the base set, whatever the
// overrides say.
func (h *ConnectionHandler) IsDetected(a, b *m.Item) bool {
	return h.base.has(m.NewConnection(a, b))
}

// ExtraConnections returns the user-added pairs referencing item.
func (h *ConnectionHandler) ExtraConnections(item *m.Item) []m.Connection {
	return h.extra.touching(item)
}

// SuppressedConnections returns the user-removed pairs referencing item.
func (h *ConnectionHandler) SuppressedConnections(item *m.Item) []m.Connection {
	return h.suppressed.touching(item)
}

// ClearBase empties the detected pairs. Overrides are kept.
func (h *ConnectionHandler) ClearBase() {
	h.base = connectionSet{}
}

// ClearOverrides empties the extra and suppressed pairs.
func (h *ConnectionHandler) ClearOverrides() {
	h.extra = connectionSet{}
	h.suppressed = connectionSet{}
}

// ClearAll empties every set.
func (h *ConnectionHandler) ClearAll() {
	h.ClearBase()
	h.ClearOverrides()
}
