package middleware

import (
	"clue_quest_backend/internal/service"
	"clue_quest_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

const resolveMethodKey = "resolve_method"

// ResolveTeam resolves the acting team through the ordered strategies
// (session first, fallback identifier second) and aborts with the matching
// error kind when neither applies.
func ResolveTeam(resolver *service.TeamResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		team, method, err := resolver.Resolve(c)
		if err != nil {
			switch {
			case errors.Is(err, util.ErrNotAuthenticated):
				util.Unauthorized(c, "NotAuthenticated", "Authentication required")
			case errors.Is(err, util.ErrTeamNotFound):
				util.NotFound(c, "TeamNotFound", "Team not found")
			default:
				util.LogInternalError(c, err)
			}
			c.Abort()
			return
		}

		c.Set("team", team)
		c.Set(resolveMethodKey, method)
		c.Next()
	}
}

// RequireSession is the strict variant: only an authenticated session
// counts, the fallback identifier does not.
func RequireSession(resolver *service.TeamResolver) gin.HandlerFunc {
	resolve := ResolveTeam(resolver)
	return func(c *gin.Context) {
		resolve(c)
		if c.IsAborted() {
			return
		}

		if method, _ := c.Get(resolveMethodKey); method != service.ResolveBySession {
			util.Unauthorized(c, "NotAuthenticated", "Active session required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireStaff guards the catalog administration endpoints.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		team := util.GetTeamFromContext(c)
		if team == nil {
			util.Unauthorized(c, "NotAuthenticated", "Authentication required")
			c.Abort()
			return
		}
		if !team.IsStaff {
			util.Forbidden(c, "Staff access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
