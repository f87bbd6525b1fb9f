package model

import "errors"

// Sentinel errors shared across layers. Callers match them with errors.Is.
var (
	ErrInvalidRole      = errors.New("invalid item role")
	ErrItemNotFound     = errors.New("item not found")
	ErrSelfPair         = errors.New("an item cannot be paired with itself")
	ErrSameRole         = errors.New("paired items must have opposite roles")
	ErrInvalidThreshold = errors.New("threshold must be greater than zero")
	ErrUnknownMode      = errors.New("unknown mode")
	ErrMultiPairs       = errors.New("items with multiple pairs found while multi pairs are not allowed")
	ErrNodeNotFound     = errors.New("scene node not found")
	ErrLockedAttribute  = errors.New("attribute is referenced and locked")
	ErrParentCycle      = errors.New("cannot parent a node under its own descendant")
	ErrNotMesh          = errors.New("node is not a mesh transform")
	ErrBadSequenceName  = errors.New("wrong file name formatting, should be filename.frame_num.exr")
	ErrBadExtension     = errors.New("wrong input file type")
)
