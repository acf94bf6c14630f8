// Package identity reads user profile fields owned by the identity provider
// and merges them with the locally stored user row.
package identity

import (
	"context"
	"strings"
	"time"

	"github.com/gorillabuild/gorillabuild/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=identity_mocks_test.go -package=identity_test

const lookupConcurrency = 8

// Profile holds what the identity provider knows about a user.
// Every field is optional.
type Profile struct {
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	ImageURL *string `json:"imageUrl"`
}

// ProfileSource fetches a user's provider profile.
type ProfileSource interface {
	Profile(ctx context.Context, userID string) (*Profile, error)
}

// Local is the locally stored part of a user.
type Local struct {
	ID        string
	Username  *string
	Units     string
	CreatedAt time.Time
}

// Merged is a user as returned by the API: local row plus provider fields.
type Merged struct {
	ID        string    `json:"id"`
	Username  *string   `json:"username"`
	Units     string    `json:"units"`
	CreatedAt time.Time `json:"createdAt"`
	Email     *string   `json:"email"`
	Name      *string   `json:"name"`
	ImageURL  *string   `json:"imageUrl"`
}

// MergeProfile composes the local row with the provider profile. A nil profile leaves the
// provider fields absent.
func MergeProfile(local Local, remote *Profile) Merged {
	m := Merged{
		ID:        local.ID,
		Username:  local.Username,
		Units:     local.Units,
		CreatedAt: local.CreatedAt,
	}
	if remote != nil {
		m.Email = nonBlank(remote.Email)
		m.Name = nonBlank(remote.Name)
		m.ImageURL = nonBlank(remote.ImageURL)
	}
	return m
}

// Lookup asks src for the profile of userID. Failures are logged and yield nil.
func Lookup(ctx context.Context, src ProfileSource, userID string) *Profile {
	ctx, span := tracing.GlobalTracer.Start(ctx, "identity.lookup")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", userID))

	profile, err := src.Profile(ctx, userID)
	if err != nil {
		log.Warnf("profile lookup for [%s] failed: %s", userID, err)
		span.SetAttributes(attribute.Bool("profile.absent", true))
		return nil
	}
	return profile
}

// LookupMany fetches profiles for several users concurrently.
// Users whose lookup failed are missing from the result.
func LookupMany(ctx context.Context, src ProfileSource, userIDs []string) map[string]*Profile {
	ctx, span := tracing.GlobalTracer.Start(ctx, "identity.lookupMany")
	defer span.End()
	span.SetAttributes(attribute.Int("users.count", len(userIDs)))

	profiles := make([]*Profile, len(userIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(lookupConcurrency)
	for i, id := range userIDs {
		g.Go(func() error {
			profiles[i] = Lookup(gctx, src, id)
			return nil
		})
	}
	_ = g.Wait()

	byID := make(map[string]*Profile, len(userIDs))
	for i, id := range userIDs {
		if profiles[i] != nil {
			byID[id] = profiles[i]
		}
	}
	return byID
}

// FullName joins first and last name, or returns nil when both are blank.
func FullName(first, last *string) *string {
	parts := make([]string, 0, 2)
	for _, p := range []*string{first, last} {
		if p != nil && strings.TrimSpace(*p) != "" {
			parts = append(parts, strings.TrimSpace(*p))
		}
	}
	if len(parts) == 0 {
		return nil
	}
	name := strings.Join(parts, " ")
	return &name
}

func nonBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
