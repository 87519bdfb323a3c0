// Package session defines the authenticated principal bound to a request
// token and the narrow store contract the pipeline uses to read and refresh
// it. Session creation and expiry are owned by the login service and the
// store itself; this package only models what the pipeline touches.
package session

import (
	"slices"
	"time"
)

// PrincipalUser is the authenticated user attached to a session token.
type PrincipalUser struct {
	UserID        string    `json:"userName"`
	FirstName     string    `json:"firstName"`
	MiddleName    string    `json:"middleName"`
	LastName      string    `json:"lastName"`
	Roles         []string  `json:"roles"`
	Enabled       bool      `json:"enabled"`
	AccessExpired bool      `json:"accessExpired"`
	LastAccess    time.Time `json:"lastAccess"`
}

// HasAnyRole reports whether the principal holds at least one of the
// required roles. An empty required set never matches.
func (u *PrincipalUser) HasAnyRole(required ...string) bool {
	for _, r := range required {
		if slices.Contains(u.Roles, r) {
			return true
		}
	}
	return false
}
