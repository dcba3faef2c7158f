package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ideashelf/backend/internal/policy"
	"github.com/ideashelf/backend/internal/repository"
	"github.com/ideashelf/backend/internal/session"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "session_token"

const actorKey = "actor"

// Authenticate resolves the session cookie into an actor and attaches it to
// the request context. Requests without a live session continue as anonymous;
// RequireAuth decides whether that is acceptable for a route.
//
// The user row is loaded fresh on every request. Only the user id lives in
// the session store, so admin status and ownership are never served stale.
func Authenticate(sessions session.Store, userRepo *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		userID, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
				c.Abort()
				return
			}
			// Expired or revoked token: fall through as anonymous.
			c.Next()
			return
		}

		user, err := userRepo.GetUserByID(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
			c.Abort()
			return
		}
		if user == nil {
			// Session outlived the account (deleted elsewhere).
			c.Next()
			return
		}

		c.Set(actorKey, &policy.Actor{
			ID:       user.ID,
			Username: user.Username,
			IsAdmin:  user.IsAdmin,
		})
		c.Next()
	}
}

// RequireAuth aborts with 401 when the request carries no authenticated actor.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ActorFrom(c) == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the actor is an admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFrom(c)
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			c.Abort()
			return
		}
		if !actor.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// ActorFrom returns the authenticated actor for the request, or nil for
// anonymous requests.
func ActorFrom(c *gin.Context) *policy.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(*policy.Actor); ok {
			return actor
		}
	}
	return nil
}
