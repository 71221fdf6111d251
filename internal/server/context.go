package server

import (
	"context"
	"net/http"

	"github.com/wisp167/masar/internal/auth"
	"github.com/wisp167/masar/internal/data"
)

type contextKey string

const (
	userContextKey    = contextKey("user")
	sessionContextKey = contextKey("session")
)

func (app *Application) contextSetUser(r *http.Request, user *data.User, session *auth.Provider) *http.Request {
	ctx := context.WithValue(r.Context(), userContextKey, user)
	ctx = context.WithValue(ctx, sessionContextKey, session)
	return r.WithContext(ctx)
}

// contextGetUser is only called behind jwtMiddleware, so a missing value is
// a wiring bug.
func (app *Application) contextGetUser(r *http.Request) *data.User {
	user, ok := r.Context().Value(userContextKey).(*data.User)
	if !ok {
		panic("missing user value in request context")
	}
	return user
}

func (app *Application) contextGetSession(r *http.Request) *auth.Provider {
	session, ok := r.Context().Value(sessionContextKey).(*auth.Provider)
	if !ok {
		panic("missing session value in request context")
	}
	return session
}
