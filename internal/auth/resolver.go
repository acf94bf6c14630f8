package auth

import (
	"net/http"
	"strings"

	"github.com/clerk/clerk-sdk-go/v2"
)

const DevUserIDHeader = "X-Dev-User-Id"

var (
	_ Resolver = ClerkResolver{}
	_ Resolver = DevResolver{}
)

// Resolver finds out who is calling.
type Resolver interface {
	Resolve(r *http.Request) (Principal, bool)
}

// ClerkResolver reads the session claims verified by the clerk http middleware
// (WithHeaderAuthorization), which must run before it.
type ClerkResolver struct{}

func (ClerkResolver) Resolve(r *http.Request) (Principal, bool) {
	claims, ok := clerk.SessionClaimsFromContext(r.Context())
	if !ok || claims == nil || claims.Subject == "" {
		return Principal{}, false
	}
	return Principal{UserID: claims.Subject}, true
}

// DevResolver trusts the X-Dev-User-Id header and falls back to Next.
// Only wired when dev auth is enabled in config.
type DevResolver struct {
	Next Resolver
}

func (d DevResolver) Resolve(r *http.Request) (Principal, bool) {
	if userID := strings.TrimSpace(r.Header.Get(DevUserIDHeader)); userID != "" {
		return Principal{UserID: userID}, true
	}
	if d.Next == nil {
		return Principal{}, false
	}
	return d.Next.Resolve(r)
}
