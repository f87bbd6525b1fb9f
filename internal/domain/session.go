package domain

import (
	"fmt"
	"log/slog"
	"sort"

	m "github.com/nwave-fx/fxpipe/internal/model"
)

// Session is the pair connector model: the loaded items, their connections,
// the pairing settings and the item currently selected or edited. It is not
// safe for concurrent use.
type Session struct {
	items       *ItemHandler
	connections *ConnectionHandler
	config      m.PairingConfig
	selected    *m.Item
	edited      *m.Item
	canConnect  bool
	logger      *slog.Logger
}

// NewSession creates an empty session using cfg.
func NewSession(cfg m.PairingConfig, logger *slog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Session{
		items:       NewItemHandler(),
		connections: NewConnectionHandler(),
		config:      cfg,
		canConnect:  true,
		logger:      logger,
	}

	return s, nil
}

// Config returns a copy of the pairing settings.
func (s *Session) Config() m.PairingConfig {
	return s.config
}

// SetDetectionMode changes the comparator and rebuilds the detected pairs.
func (s *Session) SetDetectionMode(mode m.DetectionMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: detection mode %d", m.ErrUnknownMode, int(mode))
	}

	s.config.DetectionMode = mode
	s.Rebuild()

	return nil
}

// SetBBoxDistanceThreshold changes the DISTANCE threshold and rebuilds.
func (s *Session) SetBBoxDistanceThreshold(value float64) error {
	if !m.ValidThreshold(value) {
		return fmt.Errorf("bbox distance %g: %w", value, m.ErrInvalidThreshold)
	}

	s.config.BBoxDistanceThreshold = value
	s.Rebuild()

	return nil
}

// SetVertexDistanceThreshold changes the VERTEX threshold and rebuilds.
func (s *Session) SetVertexDistanceThreshold(value float64) error {
	if !m.ValidThreshold(value) {
		return fmt.Errorf("vertex distance %g: %w", value, m.ErrInvalidThreshold)
	}

	s.config.VertexDistanceThreshold = value
	s.Rebuild()

	return nil
}

// SetConnectionMode changes how pairs are realised.
func (s *Session) SetConnectionMode(mode m.ConnectionMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: connection mode %d", m.ErrUnknownMode, int(mode))
	}

	s.config.ConnectionMode = mode

	return nil
}

// SetInheritVisibility toggles visibility forwarding.
func (s *Session) SetInheritVisibility(value bool) {
	s.config.InheritVisibility = value
}

// SetInheritTransform toggles transform forwarding.
func (s *Session) SetInheritTransform(value bool) {
	s.config.InheritTransform = value
}

// SetAllowMultiPairs toggles the multi-pair gate.
func (s *Session) SetAllowMultiPairs(value bool) {
	s.config.AllowMultiPairs = value
	s.refreshGate()
}

// AddItems stores items whose display name is not already used in either
// role, then rebuilds. It returns the number of items added.
func (s *Session) AddItems(items ...*m.Item) int {
	added := 0

	for _, item := range items {
		if item == nil || s.HasItem(item, true) {
			continue
		}

		if err := s.items.AddItem(item.Role, item); err != nil {
			s.logger.Warn("item rejected", "item", item.DisplayName, "error", err)

			continue
		}

		added++
	}

	s.Rebuild()

	return added
}

// HasItem reports whether an item with the display name of item is loaded in
// its role, or in any role when anyRole is set.
func (s *Session) HasItem(item *m.Item, anyRole bool) bool {
	if s.items.HasItem(item.Role, item.DisplayName) {
		return true
	}

	return anyRole && s.items.HasItem(item.Role.Opposite(), item.DisplayName)
}

// Item returns the item of role named name.
func (s *Session) Item(role m.Role, name string) (*m.Item, bool) {
	item, err := s.items.Item(role, name)
	if err != nil {
		return nil, false
	}

	return item, true
}

// Items returns the items of role sorted by display name.
func (s *Session) Items(role m.Role) []*m.Item {
	items, err := s.items.Items(role)
	if err != nil {
		return nil
	}

	sort.Slice(items, func(i, j int) bool { return items[i].DisplayName < items[j].DisplayName })

	return items
}

// RemoveItem drops the item of role named name and every pair referencing
// it. It reports whether an item was removed.
func (s *Session) RemoveItem(role m.Role, name string) bool {
	item, ok := s.Item(role, name)
	if !ok {
		return false
	}

	if err := s.items.RemoveItem(role, name); err != nil {
		return false
	}

	s.forget(item)
	s.Rebuild()

	return true
}

// ClearItems drops every item of role.
func (s *Session) ClearItems(role m.Role) {
	for _, item := range s.Items(role) {
		s.forget(item)
	}

	if err := s.items.Clear(role); err != nil {
		s.logger.Warn("clear items", "role", role, "error", err)
	}

	s.Rebuild()
}

func (s *Session) forget(item *m.Item) {
	s.connections.PruneItem(item)

	if s.selected.Equal(item) {
		s.selected = nil
	}

	if s.edited.Equal(item) {
		s.edited = nil
	}
}

// Rebuild clears the detected pairs and runs detection over every item.
// Overrides are kept.
func (s *Session) Rebuild() {
	s.connections.ClearBase()

	added := DetectPairs(s.config, s.Items(m.RoleSource), s.Items(m.RoleDestination), s.connections)
	s.logger.Debug("pairs rebuilt", "mode", s.config.DetectionMode, "detected", added)

	s.refreshGate()
}

// Connections returns the effective pairs of item.
func (s *Session) Connections(item *m.Item) []m.Connection {
	if item == nil {
		return nil
	}

	return s.connections.EffectiveConnections(item)
}

// PairedItems returns the items effectively paired with item, sorted by
// display name.
func (s *Session) PairedItems(item *m.Item) []*m.Item {
	connections := s.Connections(item)
	result := make([]*m.Item, 0, len(connections))

	for _, c := range connections {
		other := c.Other(item)
		if current, ok := s.Item(other.Role, other.DisplayName); ok && current.Equal(other) {
			other = current
		}

		result = append(result, other)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].DisplayName < result[j].DisplayName })

	return result
}

func orderPair(a, b *m.Item) (*m.Item, *m.Item, error) {
	if a == nil || b == nil {
		return nil, nil, m.ErrItemNotFound
	}

	if a.Equal(b) {
		return nil, nil, fmt.Errorf("%w: %s", m.ErrSelfPair, a.DisplayName)
	}

	if a.Role == b.Role {
		return nil, nil, fmt.Errorf("%w: %s and %s are both %s", m.ErrSameRole, a.DisplayName, b.DisplayName, a.Role)
	}

	if a.Role == m.RoleDestination {
		a, b = b, a
	}

	return a, b, nil
}

// AddOverride forces a and b to be paired.
func (s *Session) AddOverride(a, b *m.Item) error {
	source, destination, err := orderPair(a, b)
	if err != nil {
		return err
	}

	s.connections.AddOverride(source, destination)
	s.refreshGate()

	return nil
}

// RemoveOverride forces a and b apart.
func (s *Session) RemoveOverride(a, b *m.Item) error {
	source, destination, err := orderPair(a, b)
	if err != nil {
		return err
	}

	s.connections.RemoveOverride(source, destination)
	s.refreshGate()

	return nil
}

// ToggleOverride pairs a and b when they are apart and separates them
// otherwise.
func (s *Session) ToggleOverride(a, b *m.Item) error {
	if a != nil && b != nil && s.connections.IsConnected(a, b) {
		return s.RemoveOverride(a, b)
	}

	return s.AddOverride(a, b)
}

// ClearItemOverrides drops every override referencing item.
func (s *Session) ClearItemOverrides(item *m.Item) {
	if item == nil {
		return
	}

	s.connections.ClearItemOverrides(item)
	s.refreshGate()
}

func (s *Session) refreshGate() {
	s.canConnect = true
	if s.config.AllowMultiPairs {
		return
	}

	for _, role := range m.Roles {
		for _, item := range s.Items(role) {
			if len(s.Connections(item)) > 1 {
				s.canConnect = false

				return
			}
		}
	}
}

// CanConnect reports whether the connect action is enabled.
func (s *Session) CanConnect() bool {
	return s.canConnect
}

// Select marks item as the selected one. A nil item clears the selection.
func (s *Session) Select(item *m.Item) {
	s.selected = item
}

// ClearSelection clears the selection when it belongs to role.
func (s *Session) ClearSelection(role m.Role) {
	if s.selected == nil || s.selected.Role != role {
		return
	}

	s.selected = nil
}

// Selected returns the selected item, or nil.
func (s *Session) Selected() *m.Item {
	return s.selected
}

// EditPair makes the item of role named name the edited item.
func (s *Session) EditPair(role m.Role, name string) (*m.Item, bool) {
	item, ok := s.Item(role, name)
	if !ok {
		return nil, false
	}

	s.edited = item

	return item, true
}

// Edited returns the edited item, or nil.
func (s *Session) Edited() *m.Item {
	return s.edited
}

// CloseEditor forgets the edited item.
func (s *Session) CloseEditor() {
	s.edited = nil
}

// refreshDisabled updates the Disabled flag of every item from the current
// selection: everything but the selected item and its partners is disabled.
func (s *Session) refreshDisabled() {
	var enabled map[string]struct{}

	if s.selected != nil {
		enabled = map[string]struct{}{s.selected.FullPath: {}}
		for _, item := range s.PairedItems(s.selected) {
			enabled[item.FullPath] = struct{}{}
		}
	}

	for _, role := range m.Roles {
		for _, item := range s.Items(role) {
			if enabled == nil {
				item.Disabled = false

				continue
			}

			_, ok := enabled[item.FullPath]
			item.Disabled = !ok
		}
	}
}

// DisplayRows returns the list content of role sorted by display name.
func (s *Session) DisplayRows(role m.Role) []m.DisplayRow {
	s.refreshDisabled()

	items := s.Items(role)
	rows := make([]m.DisplayRow, 0, len(items))

	for _, item := range items {
		rows = append(rows, m.DisplayRow{
			DisplayName:     item.DisplayName,
			ConnectionCount: len(s.connections.EffectiveConnections(item)),
			Disabled:        item.Disabled,
			OverrideAdded:   len(s.connections.ExtraConnections(item)) > 0,
			OverrideRemoved: len(s.connections.SuppressedConnections(item)) > 0,
			Selected:        s.selected.Equal(item),
		})
	}

	return rows
}

// Realizations returns one tuple per effective pair, ordered by source then
// destination display name.
func (s *Session) Realizations() []m.Realization {
	var result []m.Realization

	for _, source := range s.Items(m.RoleSource) {
		for _, destination := range s.PairedItems(source) {
			result = append(result, m.Realization{
				Source:            source,
				Destination:       destination,
				Mode:              s.config.ConnectionMode,
				InheritVisibility: s.config.InheritVisibility,
				InheritTransform:  s.config.InheritTransform,
			})
		}
	}

	return result
}
