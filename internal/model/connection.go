package model

// ConnectionKey is the order independent identity of a Connection. Both paths
// are stored sorted so a pair and its mirror produce the same key.
type ConnectionKey struct {
	A string
	B string
}

// Connection is an unordered pair between a source and a destination item.
type Connection struct {
	Source      *Item
	Destination *Item
}

// NewConnection builds the connection between source and destination.
func NewConnection(source, destination *Item) Connection {
	return Connection{Source: source, Destination: destination}
}

// Key returns the canonical identity of the pair.
func (c Connection) Key() ConnectionKey {
	a, b := c.Source.FullPath, c.Destination.FullPath
	if b < a {
		a, b = b, a
	}

	return ConnectionKey{A: a, B: b}
}

// Equal reports whether c and o join the same two items, in any order.
func (c Connection) Equal(o Connection) bool {
	return c.Key() == o.Key()
}

// Has reports whether item is one side of the pair.
func (c Connection) Has(item *Item) bool {
	return c.Source.Equal(item) || c.Destination.Equal(item)
}

// Other returns the side of the pair that is not item.
func (c Connection) Other(item *Item) *Item {
	if c.Source.Equal(item) {
		return c.Destination
	}

	return c.Source
}

func (c Connection) String() string {
	return c.Source.String() + " to " + c.Destination.String()
}
