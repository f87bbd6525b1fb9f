package model

import "time"

// PlanPair is the serialisable form of a Realization.
type PlanPair struct {
	Source      string
	Destination string
}

// Plan is an exported set of realizations with the settings they were
// resolved with.
type Plan struct {
	ID        string
	CreatedAt time.Time
	Scene     Path
	Config    PairingConfig
	Pairs     []PlanPair
}
