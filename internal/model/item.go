// Package model defines the data structures shared by the pair connector and
// the review movie encoder.
package model

import (
	"fmt"
	"strings"
)

// Role tells which list of the pair connector an item belongs to.
type Role int

// Available Role values.
const (
	RoleSource Role = iota
	RoleDestination
)

// Roles lists every valid role in display order.
var Roles = []Role{RoleSource, RoleDestination}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	return r == RoleSource || r == RoleDestination
}

// Opposite returns the role an item of role r can be paired with.
func (r Role) Opposite() Role {
	if r == RoleSource {
		return RoleDestination
	}

	return RoleSource
}

func (r Role) String() string {
	switch r {
	case RoleSource:
		return "source"
	case RoleDestination:
		return "destination"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// ParseRole converts a user supplied role name ("source", "src", "destination",
// "dst") into a Role.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "source", "src", "s":
		return RoleSource, nil
	case "destination", "dest", "dst", "d":
		return RoleDestination, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

// Item is one mesh transform loaded into the pair connector.
type Item struct {
	// Name is the namespace-stripped path used by NAME detection.
	Name string
	// DisplayName is the shortest unique scene path and the collection key.
	DisplayName string
	// FullPath is the unique scene path and the item identity.
	FullPath       string
	Role           Role
	PointCount     int
	VertexPosition Vec3
	BoundingBox    BoundingBox
	WorldMatrix    Matrix4
	// Disabled is a display-only highlight flag.
	Disabled bool
}

// Equal compares items by identity.
func (i *Item) Equal(other *Item) bool {
	if i == nil || other == nil {
		return i == other
	}

	return i.FullPath == other.FullPath
}

func (i *Item) String() string {
	if i == nil {
		return "<nil>"
	}

	return i.DisplayName
}
