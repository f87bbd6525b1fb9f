package model

// PairState classifies an item by its number of effective connections.
type PairState int

// Available PairState values.
const (
	StateUnpaired PairState = iota
	StatePaired
	StateMultiPaired
)

// PairStateOf returns the state matching a connection count.
func PairStateOf(count int) PairState {
	switch {
	case count == 0:
		return StateUnpaired
	case count == 1:
		return StatePaired
	default:
		return StateMultiPaired
	}
}

// DisplayRow is what a UI list shows for one item.
type DisplayRow struct {
	DisplayName     string
	ConnectionCount int
	Disabled        bool
	OverrideAdded   bool
	OverrideRemoved bool
	Selected        bool
}

// State returns the pairing state of the row.
func (r DisplayRow) State() PairState {
	return PairStateOf(r.ConnectionCount)
}
