package controller

import m "github.com/nwave-fx/fxpipe/internal/model"

// Message types.
type encodeStartMsg struct {
	seq     m.ImageSequence
	threads int
}

type encodeProgressMsg struct {
	progress m.EncodeProgress
}

type encodeDoneMsg struct {
	movie m.Path
	err   error
}

type connectDoneMsg struct {
	results []m.ConnectResult
	err     error
}

type loadDoneMsg struct {
	role  m.Role
	added int
	err   error
}

// List item types.
type rowItem struct {
	row m.DisplayRow
}

func (r rowItem) FilterValue() string {
	return r.row.DisplayName
}
