package controller

import (
	"testing"

	"github.com/nwave-fx/fxpipe/internal/domain"
	m "github.com/nwave-fx/fxpipe/internal/model"
)

func sessionItem(role m.Role, name string) *m.Item {
	return &m.Item{
		Name:        domain.CleanName(name),
		DisplayName: name,
		FullPath:    "|" + name,
		Role:        role,
		WorldMatrix: m.IdentityMatrix(),
	}
}

// newSession returns a session with two name-paired couples.
func newSession(t *testing.T) *domain.Session {
	t.Helper()

	session, err := domain.NewSession(m.DefaultPairingConfig(), nil)
	if err != nil {
		t.Fatalf("NewSession error = %v", err)
	}

	session.AddItems(
		sessionItem(m.RoleSource, "cube"),
		sessionItem(m.RoleSource, "sphere"),
		sessionItem(m.RoleSource, "torus"),
		sessionItem(m.RoleDestination, "grp|cube"),
		sessionItem(m.RoleDestination, "grp|sphere"),
	)

	return session
}

func connectResult(source, destination string, status m.ConnectStatus, msg string) m.ConnectResult {
	return m.ConnectResult{
		Realization: m.Realization{
			Source:      sessionItem(m.RoleSource, source),
			Destination: sessionItem(m.RoleDestination, destination),
			Mode:        m.ConnectBlendShape,
		},
		Status:  status,
		Message: msg,
	}
}
