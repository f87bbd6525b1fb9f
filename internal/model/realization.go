package model

import "time"

// Realization is one resolved pair handed to the host for application.
type Realization struct {
	Source            *Item
	Destination       *Item
	Mode              ConnectionMode
	InheritVisibility bool
	InheritTransform  bool
}

// ConnectStatus is the outcome of applying one Realization.
type ConnectStatus string

const (
	// StatusApplied means the host changed the scene.
	StatusApplied ConnectStatus = "applied"
	// StatusSkipped means an identical connection already existed.
	StatusSkipped ConnectStatus = "skipped"
	// StatusConflict means a referenced or locked attribute blocked the change.
	StatusConflict ConnectStatus = "conflict"
	// StatusError means the host failed for another reason.
	StatusError ConnectStatus = "error"
)

// ConnectResult reports what happened to a single Realization.
type ConnectResult struct {
	Realization Realization
	Status      ConnectStatus
	Message     string
	Err         error
}

// Failed reports whether the result must be surfaced as a warning.
func (r ConnectResult) Failed() bool {
	return r.Status == StatusConflict || r.Status == StatusError
}

// ReportEntry is the serialisable outcome of one ConnectResult.
type ReportEntry struct {
	Source      string
	Destination string
	Mode        ConnectionMode
	Status      ConnectStatus
	Message     string
}

// ConnectReport records a connect run so it can be reviewed later.
type ConnectReport struct {
	Scene     Path
	CreatedAt time.Time
	Entries   []ReportEntry
}

// NewConnectReport builds a report from the results of a batch, in order.
func NewConnectReport(scene Path, createdAt time.Time, results []ConnectResult) ConnectReport {
	report := ConnectReport{
		Scene:     scene,
		CreatedAt: createdAt,
		Entries:   make([]ReportEntry, 0, len(results)),
	}

	for _, r := range results {
		entry := ReportEntry{
			Mode:    r.Realization.Mode,
			Status:  r.Status,
			Message: r.Message,
		}

		if r.Realization.Source != nil {
			entry.Source = r.Realization.Source.FullPath
		}

		if r.Realization.Destination != nil {
			entry.Destination = r.Realization.Destination.FullPath
		}

		report.Entries = append(report.Entries, entry)
	}

	return report
}

// Count returns the number of entries with the given status.
func (r ConnectReport) Count(status ConnectStatus) int {
	n := 0

	for _, e := range r.Entries {
		if e.Status == status {
			n++
		}
	}

	return n
}
