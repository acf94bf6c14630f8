package identity

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorillabuild/gorillabuild/internal/telemetry/tracing"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/clerk/clerk-sdk-go/v2/user"
)

var _ ProfileSource = (*ClerkSource)(nil)

// ClerkSource reads profiles from the Clerk backend API.
type ClerkSource struct {
	client *user.Client
}

// NewClerkSource builds a source using its own client config, so the traced http client
// and an optional base URL (tests) can be set without touching the clerk globals.
func NewClerkSource(secretKey, baseURL string, httpClient *http.Client) *ClerkSource {
	cfg := &clerk.ClientConfig{}
	cfg.Key = clerk.String(secretKey)
	cfg.HTTPClient = httpClient
	if baseURL != "" {
		cfg.URL = clerk.String(baseURL)
	}
	return &ClerkSource{
		client: user.NewClient(cfg),
	}
}

func (s *ClerkSource) Profile(ctx context.Context, userID string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "identity.clerk.profile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	u, err := s.client.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get clerk user: %w", err)
	}
	return profileFromClerk(u), nil
}

func profileFromClerk(u *clerk.User) *Profile {
	p := &Profile{
		Name:     FullName(u.FirstName, u.LastName),
		ImageURL: u.ImageURL,
	}

	var fallback *string
	for _, e := range u.EmailAddresses {
		if e == nil {
			continue
		}
		email := e.EmailAddress
		if fallback == nil {
			fallback = &email
		}
		if u.PrimaryEmailAddressID != nil && e.ID == *u.PrimaryEmailAddressID {
			p.Email = &email
			break
		}
	}
	if p.Email == nil {
		p.Email = fallback
	}
	return p
}
