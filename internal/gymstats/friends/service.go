package friends

import (
	"context"

	"github.com/gorillabuild/gorillabuild/internal/gymstats/bodyweight"
	"github.com/gorillabuild/gorillabuild/internal/gymstats/exercises"
	"github.com/gorillabuild/gorillabuild/internal/gymstats/stats"
	"github.com/gorillabuild/gorillabuild/internal/identity"
	"github.com/gorillabuild/gorillabuild/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=friends_mocks_test.go -package=friends_test

type friendsRepo interface {
	ListAccepted(ctx context.Context, userID string) ([]Peer, error)
	PendingIncoming(ctx context.Context, userID string) ([]Peer, error)
	Create(ctx context.Context, fromUserID, handle string) (*Friendship, error)
	Accept(ctx context.Context, userID string, friendshipID int) error
	Accepted(ctx context.Context, userID string, friendshipID int) (*Pair, error)
	FinishedSetsOf(ctx context.Context, userIDs []string) ([]stats.OwnedSet, error)
}

type exerciseReader interface {
	Get(ctx context.Context, id int) (*exercises.Exercise, error)
	FinishedSets(ctx context.Context, userID string, exerciseID int) ([]stats.SetSample, error)
}

type bodyWeightLister interface {
	List(ctx context.Context, userID string) ([]bodyweight.Entry, error)
}

type Service struct {
	repo        friendsRepo
	exercises   exerciseReader
	bodyWeights bodyWeightLister
	profiles    identity.ProfileSource
}

func NewService(repo friendsRepo, exercises exerciseReader, bodyWeights bodyWeightLister, profiles identity.ProfileSource) *Service {
	return &Service{
		repo:        repo,
		exercises:   exercises,
		bodyWeights: bodyWeights,
		profiles:    profiles,
	}
}

func (s *Service) profilesOf(ctx context.Context, peers []Peer) map[string]*identity.Profile {
	ids := make([]string, 0, len(peers))
	for _, p := range peers {
		ids = append(ids, p.UserID)
	}
	return identity.LookupMany(ctx, s.profiles, ids)
}

func (s *Service) Friends(ctx context.Context, userID string) ([]Friend, error) {
	peers, err := s.repo.ListAccepted(ctx, userID)
	if err != nil {
		return nil, err
	}

	profiles := s.profilesOf(ctx, peers)
	friends := make([]Friend, 0, len(peers))
	for _, p := range peers {
		friends = append(friends, toFriend(p.FriendshipID, p.UserID, p.Username, profiles[p.UserID]))
	}
	return friends, nil
}

func (s *Service) IncomingRequests(ctx context.Context, userID string) ([]IncomingRequest, error) {
	peers, err := s.repo.PendingIncoming(ctx, userID)
	if err != nil {
		return nil, err
	}

	profiles := s.profilesOf(ctx, peers)
	requests := make([]IncomingRequest, 0, len(peers))
	for _, p := range peers {
		req := IncomingRequest{
			FriendshipID: p.FriendshipID,
			FromUserID:   p.UserID,
			Username:     p.Username,
			CreatedAt:    p.CreatedAt,
		}
		if profile := profiles[p.UserID]; profile != nil {
			req.Name = profile.Name
			req.ImageURL = profile.ImageURL
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func (s *Service) Request(ctx context.Context, fromUserID, handle string) (*Friendship, error) {
	return s.repo.Create(ctx, fromUserID, handle)
}

func (s *Service) Accept(ctx context.Context, userID string, friendshipID int) error {
	return s.repo.Accept(ctx, userID, friendshipID)
}

func (s *Service) Friend(ctx context.Context, userID string, friendshipID int) (*Friend, error) {
	pair, err := s.repo.Accepted(ctx, userID, friendshipID)
	if err != nil {
		return nil, err
	}

	profile := identity.Lookup(ctx, s.profiles, pair.Friend.UserID)
	friend := toFriend(pair.FriendshipID, pair.Friend.UserID, pair.Friend.Username, profile)
	return &friend, nil
}

// ExerciseSummary lists exercises where either side of the friendship has finished sets.
func (s *Service) ExerciseSummary(ctx context.Context, userID string, friendshipID int) ([]stats.ExerciseSummary, error) {
	pair, err := s.repo.Accepted(ctx, userID, friendshipID)
	if err != nil {
		return nil, err
	}

	sets, err := s.repo.FinishedSetsOf(ctx, []string{pair.Me.UserID, pair.Friend.UserID})
	if err != nil {
		return nil, err
	}
	return stats.SummarizeExercises(sets, pair.Me.UserID), nil
}

// Compare builds the "me vs friend" payload for one exercise.
func (s *Service) Compare(ctx context.Context, userID string, friendshipID, exerciseID int) (_ *Comparison, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.friends.compare")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("friendship.id", friendshipID), attribute.Int("exercise.id", exerciseID))

	pair, err := s.repo.Accepted(ctx, userID, friendshipID)
	if err != nil {
		return nil, err
	}
	ex, err := s.exercises.Get(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	var (
		mySets, friendSets               []stats.SetSample
		myBodyWeights, friendBodyWeights []bodyweight.Entry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		mySets, err = s.exercises.FinishedSets(gctx, pair.Me.UserID, exerciseID)
		return err
	})
	g.Go(func() (err error) {
		friendSets, err = s.exercises.FinishedSets(gctx, pair.Friend.UserID, exerciseID)
		return err
	})
	g.Go(func() (err error) {
		myBodyWeights, err = s.bodyWeights.List(gctx, pair.Me.UserID)
		return err
	})
	g.Go(func() (err error) {
		friendBodyWeights, err = s.bodyWeights.List(gctx, pair.Friend.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	comparison := Compare(
		*ex,
		BuildSide(pair.Me, mySets, myBodyWeights),
		BuildSide(pair.Friend, friendSets, friendBodyWeights),
	)
	return &comparison, nil
}

func toFriend(friendshipID int, userID string, username *string, profile *identity.Profile) Friend {
	f := Friend{
		FriendshipID: friendshipID,
		UserID:       userID,
		Username:     username,
	}
	if profile != nil {
		f.Name = profile.Name
		f.ImageURL = profile.ImageURL
	}
	return f
}
