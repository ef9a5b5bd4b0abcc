package api

import (
	"context"

	"github.com/khaledev/inkwell/models"
)

type keyType string

const userKey keyType = "user"

// ctxWithUser adds the authenticated user to the context
func ctxWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// ctxUser retrieves the authenticated user from the context, or nil for an
// anonymous request.
func ctxUser(ctx context.Context) *models.User {
	if user, ok := ctx.Value(userKey).(*models.User); ok {
		return user
	}
	return nil
}
