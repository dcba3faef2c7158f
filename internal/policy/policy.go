// Package policy holds the authorization decision for idea mutation.
// The decision is a pure function of the actor and the idea owner; it is
// evaluated fresh on every mutating call so that admin status or ownership
// changes take effect on the next request.
package policy

import (
	"github.com/ideashelf/backend/internal/apperr"
)

// Actor is the authenticated user making a request. A nil *Actor means the
// request is anonymous.
type Actor struct {
	ID       int64
	Username string
	IsAdmin  bool
}

// CanMutate reports whether actor may update or delete an idea owned by
// ownerID. Unauthenticated callers get AuthenticationRequired; authenticated
// callers that are neither the owner nor an admin get AuthorizationDenied.
func CanMutate(actor *Actor, ownerID int64) error {
	if actor == nil {
		return apperr.AuthenticationRequired("login required")
	}
	if actor.ID == ownerID || actor.IsAdmin {
		return nil
	}
	return apperr.AuthorizationDenied("forbidden")
}
