package auth

import (
	"context"

	"github.com/gorillabuild/gorillabuild/internal/apierr"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID string
}

type principalCtxKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalCtxKey{}).(Principal)
	return p, ok && p.UserID != ""
}

// RequirePrincipal returns the principal or an unauthorized API error.
func RequirePrincipal(ctx context.Context) (Principal, error) {
	p, ok := PrincipalFromContext(ctx)
	if !ok {
		return Principal{}, apierr.Unauthorized()
	}
	return p, nil
}
