package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConnectReport(t *testing.T) {
	source := &Item{Role: RoleSource, FullPath: "|src|cube"}
	destination := &Item{Role: RoleDestination, FullPath: "|dst|cube"}
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	results := []ConnectResult{
		{Realization: Realization{Source: source, Destination: destination, Mode: ConnectWrap}, Status: StatusApplied},
		{Realization: Realization{Source: source, Mode: ConnectWrap}, Status: StatusError, Message: "no destination"},
	}

	report := NewConnectReport("shot.yaml", at, results)

	assert.Equal(t, Path("shot.yaml"), report.Scene)
	assert.Equal(t, at, report.CreatedAt)
	assert.Equal(t, []ReportEntry{
		{Source: "|src|cube", Destination: "|dst|cube", Mode: ConnectWrap, Status: StatusApplied},
		{Source: "|src|cube", Mode: ConnectWrap, Status: StatusError, Message: "no destination"},
	}, report.Entries)
	assert.Equal(t, 1, report.Count(StatusApplied))
	assert.Equal(t, 0, report.Count(StatusConflict))
}
