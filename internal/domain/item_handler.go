package domain

import (
	"fmt"

	m "github.com/nwave-fx/fxpipe/internal/model"
)

// ItemHandler stores the items of both roles keyed by display name.
type ItemHandler struct {
	items map[m.Role]map[string]*m.Item
}

// NewItemHandler returns an empty ItemHandler.
func NewItemHandler() *ItemHandler {
	return &ItemHandler{
		items: map[m.Role]map[string]*m.Item{
			m.RoleSource:      {},
			m.RoleDestination: {},
		},
	}
}

func (h *ItemHandler) data(role m.Role) (map[string]*m.Item, error) {
	items, ok := h.items[role]
	if !ok {
		return nil, fmt.Errorf("%w: %v", m.ErrInvalidRole, role)
	}

	return items, nil
}

// AddItem inserts item in the role list, replacing any item with the same key.
func (h *ItemHandler) AddItem(role m.Role, item *m.Item) error {
	items, err := h.data(role)
	if err != nil {
		return err
	}

	items[item.DisplayName] = item

	return nil
}

// Items returns every item of role in no particular order.
func (h *ItemHandler) Items(role m.Role) ([]*m.Item, error) {
	items, err := h.data(role)
	if err != nil {
		return nil, err
	}

	result := make([]*m.Item, 0, len(items))
	for _, item := range items {
		result = append(result, item)
	}

	return result, nil
}

// HasItem reports whether role holds an item under key.
func (h *ItemHandler) HasItem(role m.Role, key string) bool {
	items, err := h.data(role)
	if err != nil {
		return false
	}

	_, ok := items[key]

	return ok
}

// Item returns the item stored under key.
func (h *ItemHandler) Item(role m.Role, key string) (*m.Item, error) {
	items, err := h.data(role)
	if err != nil {
		return nil, err
	}

	item, ok := items[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", m.ErrItemNotFound, role, key)
	}

	return item, nil
}

// RemoveItem deletes the item stored under key.
func (h *ItemHandler) RemoveItem(role m.Role, key string) error {
	items, err := h.data(role)
	if err != nil {
		return err
	}

	if _, ok := items[key]; !ok {
		return fmt.Errorf("%w: %s %q", m.ErrItemNotFound, role, key)
	}

	delete(items, key)

	return nil
}

// Clear empties the role list.
func (h *ItemHandler) Clear(role m.Role) error {
	if _, err := h.data(role); err != nil {
		return err
	}

	h.items[role] = map[string]*m.Item{}

	return nil
}
