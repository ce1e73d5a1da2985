package main

import (
	"context"
	"net/http"

	"github.com/ayumukasuga/bloglist/internal/userservice"
)

type contextKey string

const userContextKey = contextKey("user")

// contextSetUser returns a copy of the request with the user stored in its
// context. Every request carries a user, either a verified account or
// AnonymousUser.
func (app *application) contextSetUser(r *http.Request, user *userservice.User) *http.Request {
	ctx := context.WithValue(r.Context(), userContextKey, user)
	return r.WithContext(ctx)
}

// contextGetUser retrieves the user from the request context. A missing value
// means a handler was registered outside the authenticate middleware, which
// is a programming error, so it panics.
func (app *application) contextGetUser(r *http.Request) *userservice.User {
	user, ok := r.Context().Value(userContextKey).(*userservice.User)
	if !ok {
		panic("missing user value in request context")
	}

	return user
}
