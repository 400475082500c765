package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/karniella/revisions/core/session"
)

const sessionCookieName = "revisions_session"

var contextSessionKey = "session"

// sessionMiddleware resolves the session cookie into the request context.
// Requests without a live session proceed anonymously.
func sessionMiddleware(svc *session.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if cookie, err := ctx.Cookie(sessionCookieName); err == nil {
				if sess, err := svc.Get(ctx.Request().Context(), cookie.Value); err == nil {
					ctx.Set(contextSessionKey, sess)
				}
			}
			return next(ctx)
		}
	}
}

// requireAuth guards write endpoints: any request without an authenticated
// session is rejected before it reaches a repository.
func requireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if sess, ok := getContextSession(ctx); ok && sess.Authenticated {
				return next(ctx)
			}
			return errUnauthorized
		}
	}
}

func getContextSession(ctx echo.Context) (session.Session, bool) {
	sess, ok := ctx.Get(contextSessionKey).(session.Session)
	return sess, ok
}
