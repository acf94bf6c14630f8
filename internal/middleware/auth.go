package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorillabuild/gorillabuild/internal/apierr"
	"github.com/gorillabuild/gorillabuild/internal/auth"
	"github.com/gorillabuild/gorillabuild/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type principalResolver interface {
	Resolve(r *http.Request) (auth.Principal, bool)
}

// userEnsurer mirrors the caller into the local user table on first sight.
type userEnsurer interface {
	Ensure(ctx context.Context, userID string) error
}

type AuthMiddlewareHandler struct {
	resolver             principalResolver
	users                userEnsurer
	allowedPaths         map[string]bool
	allowedPathsPrefixes []string
}

func NewAuthMiddlewareHandler(resolver principalResolver, users userEnsurer) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		resolver: resolver,
		users:    users,
		allowedPaths: map[string]bool{
			"/api/health": true,
			// signed by svix, verified in the webhook handler
			"/api/webhooks/clerk": true,
		},
		allowedPathsPrefixes: []string{},
	}
}

func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(path string) bool {
	if h.allowedPaths[path] {
		return true
	}
	for _, prefix := range h.allowedPathsPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PATCH, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.pathIsAlwaysAllowed(r.URL.Path) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			principal, ok := h.resolver.Resolve(r)
			if !ok {
				log.Tracef("[auth middleware] unauthorized => %s", r.URL.Path)
				apierr.Write(w, apierr.Unauthorized())
				span.SetStatus(codes.Error, "no-principal")
				return
			}
			span.SetAttributes(attribute.String("user.id", principal.UserID))

			if err := h.users.Ensure(ctx, principal.UserID); err != nil {
				log.Errorf("[auth middleware] ensure user %s: %s", principal.UserID, err)
				apierr.Write(w, apierr.Internal())
				span.SetStatus(codes.Error, "ensure-user-err")
				span.RecordError(err)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
		})
	}
}
