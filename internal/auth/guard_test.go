package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Phin0508/eamts-sub003/internal/domain"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name         string
		session      *Session
		required     domain.Role
		wantAllowed  bool
		wantRedirect string
	}{
		{
			name:         "no session redirects to login",
			session:      nil,
			required:     domain.RoleManager,
			wantAllowed:  false,
			wantRedirect: LoginPath,
		},
		{
			name:        "manager allowed on manager page",
			session:     &Session{UserID: 1, Role: domain.RoleManager},
			required:    domain.RoleManager,
			wantAllowed: true,
		},
		{
			name:        "employee allowed on employee page",
			session:     &Session{UserID: 2, Role: domain.RoleEmployee},
			required:    domain.RoleEmployee,
			wantAllowed: true,
		},
		{
			name:         "employee denied on manager page lands on ticket list",
			session:      &Session{UserID: 2, Role: domain.RoleEmployee},
			required:     domain.RoleManager,
			wantAllowed:  false,
			wantRedirect: TicketListPath,
		},
		{
			name:         "manager denied on employee page lands on dashboard",
			session:      &Session{UserID: 1, Role: domain.RoleManager},
			required:     domain.RoleEmployee,
			wantAllowed:  false,
			wantRedirect: ManagerDashboardPath,
		},
		{
			name:         "admin is not implicitly a manager",
			session:      &Session{UserID: 3, Role: domain.RoleAdmin},
			required:     domain.RoleManager,
			wantAllowed:  false,
			wantRedirect: TicketListPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Authorize(tt.session, tt.required)
			assert.Equal(t, tt.wantAllowed, decision.Allowed)
			assert.Equal(t, tt.wantRedirect, decision.Redirect)
		})
	}
}

func TestLandingFor(t *testing.T) {
	assert.Equal(t, ManagerDashboardPath, LandingFor(domain.RoleManager))
	assert.Equal(t, TicketListPath, LandingFor(domain.RoleEmployee))
	assert.Equal(t, TicketListPath, LandingFor(domain.RoleAdmin))
}
